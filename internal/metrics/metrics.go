package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "market"

var (
	// Emitter
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "emitter",
		Name:      "events_published_total",
		Help:      "Contract events published to JetStream",
	}, []string{"event_type", "result"})

	// Bridge
	BridgeMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "bridge",
		Name:      "messages_total",
		Help:      "JetStream messages handled by the bridge, by outcome",
	}, []string{"result"})

	// Worker
	EventsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "events_applied_total",
		Help:      "Chain events applied to the mirror; result is applied, duplicate or error",
	}, []string{"event_type", "result"})

	IntentsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "intents_reconciled_total",
		Help:      "Intents marked reconciled by a chain event",
	})

	ActivityDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "activity_duration_seconds",
		Help:      "Temporal activity execution time by activity and result",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"activity", "result"})

	// Workflows
	WorkflowPhases = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workflow",
		Name:      "phases_total",
		Help:      "Workflow phase transitions",
	}, []string{"workflow", "phase"})

	MirrorWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workflow",
		Name:      "mirror_write_failures_total",
		Help:      "Mirror writes that failed after a confirmed chain transaction",
	}, []string{"workflow"})

	// Sweeper
	SweeperRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "runs_total",
		Help:      "Drift sweeper passes",
	}, []string{"result"})

	SweeperDeactivated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "deactivated_total",
		Help:      "Mirror rows deactivated because the contract no longer considers them active",
	}, []string{"kind"})

	SweeperDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "run_duration_seconds",
		Help:      "Drift sweeper pass duration",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	// Feed
	FeedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "clients",
		Help:      "Connected websocket clients",
	})

	FeedDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "items_delivered_total",
		Help:      "Feed items fanned out to clients",
	})

	FeedDroppedClients = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "dropped_clients_total",
		Help:      "Clients disconnected because their send buffer was full",
	})

	FeedReconnects = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "listener_reconnects_total",
		Help:      "Postgres LISTEN reconnects",
	})

	// API
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "route"})

	RateLimitedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter",
	}, []string{"route", "backend"})
)
