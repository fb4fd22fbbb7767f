package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/usecases/shared"

	"github.com/robfig/cron/v3"
)

// StaleOrdersHandler reports orders whose latest event is old and non-terminal.
type StaleOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.GetStaleOrdersQueryResponse, error)
}

// StaleOrdersJob periodically logs stale orders and publishes their count.
type StaleOrdersJob struct {
	handler   StaleOrdersHandler
	schedule  string
	olderThan time.Duration
	limit     int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrdersJob creates the job. schedule is a six-field cron spec with
// seconds.
func NewStaleOrdersJob(
	handler StaleOrdersHandler,
	schedule string,
	olderThan time.Duration,
	limit int,
	logger *slog.Logger,
) *StaleOrdersJob {
	return &StaleOrdersJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		limit:     limit,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_orders_job"),
	}
}

// Start validates the parameters and schedules the report.
func (j *StaleOrdersJob) Start() error {
	if _, err := queries.NewGetStaleOrdersQuery(j.olderThan, j.limit); err != nil {
		return fmt.Errorf("stale orders parameters: %w", err)
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Run produces one report and returns the number of stale orders found.
func (j *StaleOrdersJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetStaleOrdersQuery(j.olderThan, j.limit)
	if err != nil {
		return 0, err
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, s := range stale {
		j.logger.WarnContext(ctx, "Order is stale",
			"order_id", s.OrderID.String(),
			"status", s.Status.String(),
			"age", s.AgeLabel,
		)
	}
	shared.SetStaleOrders(len(stale))

	return len(stale), nil
}

// Stop stops scheduling and waits for a running report to finish.
func (j *StaleOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}
