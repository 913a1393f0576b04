// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// DeliveryMetricsJob records the delivery time of every shipment whose history reached
// DELIVERED but that has no delivery metric yet. Each run handles at most one batch in a
// single transaction; overlapping runs are skipped.
//
// # Usage
//
//	job := jobs.NewDeliveryMetricsJob(handler, jobs.DefaultDeliveryMetricsJobConfig(), logger, m)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll(ctx)
package jobs
