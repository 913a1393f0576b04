package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/addressvalidation"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/notification"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/readthrough"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/background"
	"logistics/internal/pkg/metrics"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"gorm.io/gorm"
)

// eventPublisher is a ports.EventPublisher that owns a connection.
type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

// CompositionRoot builds every component once and hands out the wired use cases.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	metrics   *metrics.Metrics
	cache     *redis.Cache
	readCache *readthrough.Cache
	publisher eventPublisher
	runner    *background.Runner
	effects   *commands.LifecycleEffects
	validator ports.AddressValidator
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(metrics.DefaultConfig()),
		runner:     background.NewRunner(logger, config.BackgroundTaskTimeout),
	}

	c.cache = redis.NewCache(ctx, redis.Config{
		Host:     config.RedisHost,
		Port:     config.RedisPort,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	}, logger)

	var err error
	if c.readCache, err = readthrough.New(c.cache, logger, c.metrics); err != nil {
		_ = c.Close()
		return nil, err
	}

	if len(config.KafkaBrokers) == 0 {
		logger.WarnContext(ctx, "KAFKA_BROKERS is empty, lifecycle events will not be published")
		c.publisher = kafka.NopPublisher{}
	} else {
		c.publisher = kafka.NewPublisher(kafka.Config{
			Brokers: config.KafkaBrokers,
			Topic:   config.KafkaTopic,
		}, logger, c.metrics)
	}

	notifier, err := c.newNotifier(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.validator = addressvalidation.NewClient(addressvalidation.Config{
		Endpoint: config.AddressValidationEndpoint,
		APIKey:   config.AddressValidationAPIKey,
		Timeout:  config.AddressValidationTimeout,
	}, logger, c.metrics)

	c.effects = commands.NewLifecycleEffects(
		c.runner,
		userrepo.NewGormUserRepository(gormDB),
		notifier,
		c.publisher,
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) newNotifier(ctx context.Context) (*notification.Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.config.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	renderer, err := notification.NewRenderer()
	if err != nil {
		return nil, err
	}

	return notification.NewNotifier(sesv2.NewFromConfig(awsCfg), renderer, notification.Config{
		From:    c.config.EmailSender,
		Timeout: c.config.NotificationTimeout,
	}, c.logger, c.metrics), nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) Runner() *background.Runner {
	return c.runner
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.publisher != nil {
		errList = append(errList, c.publisher.Close())
	}
	if c.cache != nil {
		errList = append(errList, c.cache.Close())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.validator, c.effects)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateMarkShipmentDeliveredCommandHandler() commands.MarkShipmentDeliveredCommandHandler {
	return commands.NewMarkShipmentDeliveredCommandHandler(c.shipmentUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteAssignmentCommandHandler() commands.CreateRouteAssignmentCommandHandler {
	var f commands.RouteAssignmentUoWFactory = FuncRouteAssignmentUoWFactory(func() commands.RouteAssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendStatusHistoryCommandHandler() commands.AppendStatusHistoryCommandHandler {
	var f commands.HistoryUoWFactory = FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendStatusHistoryCommandHandler(f)
}

func (c *CompositionRoot) deliveryMetricUoWFactory() commands.DeliveryMetricUoWFactory {
	return FuncDeliveryMetricUoWFactory(func() commands.DeliveryMetricUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRecordDeliveryMetricCommandHandler() commands.RecordDeliveryMetricCommandHandler {
	return commands.NewRecordDeliveryMetricCommandHandler(c.deliveryMetricUoWFactory())
}

func (c *CompositionRoot) CreateRecordMissingDeliveryMetricsCommandHandler() commands.RecordMissingDeliveryMetricsCommandHandler {
	return commands.NewRecordMissingDeliveryMetricsCommandHandler(c.deliveryMetricUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateFindShipmentsQueryHandler() queries.FindShipmentsQueryHandler {
	return queries.NewFindShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentDetailsQueryHandler() queries.CachedGetShipmentDetailsQueryHandler {
	return queries.NewCachedGetShipmentDetailsQueryHandler(
		queries.NewGetShipmentDetailsQueryHandler(c.gormDB),
		c.readCache,
		c.config.ShipmentDetailsTTL,
	)
}

func (c *CompositionRoot) CreateGetShipmentIndicatorsQueryHandler() queries.GetShipmentIndicatorsQueryHandler {
	return queries.NewGetShipmentIndicatorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyShipmentCountsQueryHandler() queries.GetDailyShipmentCountsQueryHandler {
	return queries.NewGetDailyShipmentCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStatusHistoryQueryHandler() queries.ListStatusHistoryQueryHandler {
	return queries.NewListStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindUserByEmailQueryHandler() queries.CachedFindUserByEmailQueryHandler {
	return queries.NewCachedFindUserByEmailQueryHandler(
		queries.NewFindUserByEmailQueryHandler(userrepo.NewGormUserRepository(c.gormDB)),
		c.readCache,
		c.config.UserByEmailTTL,
	)
}

// HTTPHandlers wires every use case served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		UpdateShipmentStatus:  c.CreateUpdateShipmentStatusCommandHandler(),
		MarkShipmentDelivered: c.CreateMarkShipmentDeliveredCommandHandler(),
		DeleteShipment:        c.CreateDeleteShipmentCommandHandler(),
		CreateRouteAssignment: c.CreateCreateRouteAssignmentCommandHandler(),
		AppendStatusHistory:   c.CreateAppendStatusHistoryCommandHandler(),
		RecordDeliveryMetric:  c.CreateRecordDeliveryMetricCommandHandler(),

		FindShipments:          c.CreateFindShipmentsQueryHandler(),
		GetShipmentDetails:     c.CreateGetShipmentDetailsQueryHandler(),
		GetShipmentIndicators:  c.CreateGetShipmentIndicatorsQueryHandler(),
		GetDailyShipmentCounts: c.CreateGetDailyShipmentCountsQueryHandler(),
		ListStatusHistory:      c.CreateListStatusHistoryQueryHandler(),
		FindUserByEmail:        c.CreateFindUserByEmailQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewDeliveryMetricsJob(
		c.CreateRecordMissingDeliveryMetricsCommandHandler(),
		jobs.DeliveryMetricsJobConfig{
			Schedule:  c.config.DeliveryMetricsSchedule,
			BatchSize: c.config.DeliveryMetricsBatchSize,
		},
		c.logger,
		c.metrics,
	))
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}

type FuncDeliveryMetricUoWFactory func() commands.DeliveryMetricUoW

func (f FuncDeliveryMetricUoWFactory) Create() commands.DeliveryMetricUoW {
	return f()
}

type FuncRouteAssignmentUoWFactory func() commands.RouteAssignmentUoW

func (f FuncRouteAssignmentUoWFactory) Create() commands.RouteAssignmentUoW {
	return f()
}
