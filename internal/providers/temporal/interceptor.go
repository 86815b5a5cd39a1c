package temporal

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"

	"github.com/feral-file/ff-market/internal/metrics"
)

// NewActivityInterceptor returns a worker interceptor that gives every activity its own
// Sentry hub and records its duration
func NewActivityInterceptor() interceptor.WorkerInterceptor {
	return &activityInterceptor{}
}

type activityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (a *activityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	i := &activityInboundInterceptor{}
	i.Next = next
	return i
}

type activityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity runs the activity with a cloned hub tagged with the workflow it belongs to
func (a *activityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	info := activity.GetInfo(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activity", info.ActivityType.Name)
		scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		scope.SetTag("workflow_type", info.WorkflowType.Name)
		scope.SetContext("activity", map[string]interface{}{
			"attempt":    info.Attempt,
			"task_queue": info.TaskQueue,
		})
	})
	ctx = sentry.SetHubOnContext(ctx, hub)

	start := time.Now()
	result, err := a.Next.ExecuteActivity(ctx, in)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ActivityDuration.WithLabelValues(info.ActivityType.Name, outcome).Observe(time.Since(start).Seconds())

	return result, err
}
