package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues("sold", "ok"))
	EventsPublished.WithLabelValues("sold", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublished.WithLabelValues("sold", "ok")))

	assert.NotPanics(t, func() { BridgeMessages.WithLabelValues("forwarded").Inc() })
	assert.NotPanics(t, func() { EventsApplied.WithLabelValues("listed", "applied").Inc() })
	assert.NotPanics(t, func() { WorkflowPhases.WithLabelValues("buy", "submitted").Inc() })
	assert.NotPanics(t, func() { SweeperDeactivated.WithLabelValues("listing").Inc() })
	assert.NotPanics(t, func() { HTTPLatency.WithLabelValues("GET", "/health").Observe(0.01) })
	assert.NotPanics(t, func() { FeedClients.Inc(); FeedClients.Dec() })
}

func TestHandler(t *testing.T) {
	IntentsReconciled.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "market_worker_intents_reconciled_total")
}
