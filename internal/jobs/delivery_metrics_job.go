package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const (
	DeliveryMetricsJobName = "delivery_metrics"

	// DefaultDeliveryMetricsSchedule runs the backfill at the top of every minute.
	DefaultDeliveryMetricsSchedule = "0 * * * * *"
	DefaultDeliveryMetricsBatch    = 100
	DefaultDeliveryMetricsTimeout  = 30 * time.Second
)

// MissingDeliveryMetricsRecorder is satisfied by commands.RecordMissingDeliveryMetricsCommandHandler.
type MissingDeliveryMetricsRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordMissingDeliveryMetricsCommand) (int, error)
}

type DeliveryMetricsJobConfig struct {
	Schedule  string
	BatchSize int
	Timeout   time.Duration
}

func DefaultDeliveryMetricsJobConfig() DeliveryMetricsJobConfig {
	return DeliveryMetricsJobConfig{
		Schedule:  DefaultDeliveryMetricsSchedule,
		BatchSize: DefaultDeliveryMetricsBatch,
		Timeout:   DefaultDeliveryMetricsTimeout,
	}
}

// DeliveryMetricsJob periodically records delivery times for delivered shipments
// that do not have a metric yet.
type DeliveryMetricsJob struct {
	recorder MissingDeliveryMetricsRecorder
	config   DeliveryMetricsJobConfig
	cron     *cron.Cron
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewDeliveryMetricsJob creates the job. Zero config fields fall back to the defaults.
func NewDeliveryMetricsJob(
	recorder MissingDeliveryMetricsRecorder,
	config DeliveryMetricsJobConfig,
	logger *slog.Logger,
	m *metrics.Metrics,
) *DeliveryMetricsJob {
	defaults := DefaultDeliveryMetricsJobConfig()
	if config.Schedule == "" {
		config.Schedule = defaults.Schedule
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}

	return &DeliveryMetricsJob{
		recorder: recorder,
		config:   config,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "delivery_metrics_job"),
		metrics:  m,
	}
}

// Start schedules the job. It returns an error for an unparsable schedule.
func (j *DeliveryMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery metrics job started", "schedule", j.config.Schedule)
	return nil
}

// RunOnce records one batch and returns how many metrics were written.
func (j *DeliveryMetricsJob) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	cmd, err := commands.NewRecordMissingDeliveryMetricsCommand(j.config.BatchSize)
	if err != nil {
		return 0, err
	}

	recorded, err := j.recorder.Handle(ctx, cmd)
	if err != nil {
		j.metrics.RecordJobRun(DeliveryMetricsJobName, metrics.OutcomeFailure)
		j.logger.ErrorContext(ctx, "Delivery metrics job failed", "error", err)
		return 0, err
	}

	j.metrics.RecordJobRun(DeliveryMetricsJobName, metrics.OutcomeSuccess)
	if recorded > 0 {
		j.logger.InfoContext(ctx, "Delivery metrics recorded", "count", recorded)
	}
	return recorded, nil
}

// Stop unschedules the job and waits for a running batch to finish or ctx to expire.
func (j *DeliveryMetricsJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.InfoContext(ctx, "Delivery metrics job stopped")
}
