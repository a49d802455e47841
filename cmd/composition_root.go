package cmd

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	httpadapter "courierdispatch/internal/adapters/in/http"
	"courierdispatch/internal/adapters/out/events"
	"courierdispatch/internal/adapters/out/metrics"
	"courierdispatch/internal/adapters/out/postgres"
	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/services"
	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. It owns the long-lived resources
// (database handle, metrics registry, event publisher) and releases them in Close.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    ports.DispatchMetrics
	publisher  ports.EventPublisher
	closers    []func()
	rnd        *lockedSource
}

// NewCompositionRoot builds the shared infrastructure: a Prometheus registry with the
// Go and process collectors, the dispatch metrics, the unit of work factory and the
// event publisher. MQTT is used when cfg.MQTT.Broker is set, the log otherwise.
// Call Close on shutdown.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	dispatchMetrics, err := metrics.NewPromDispatchMetrics(registry)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    dispatchMetrics,
		rnd:        newLockedSource(),
	}

	if cfg.MQTT.Broker == "" {
		root.publisher = events.NewLogPublisher(logger)
		return root, nil
	}

	publisher, err := events.NewMQTTPublisher(publisherConfig(cfg.MQTT))
	if err != nil {
		return nil, err
	}
	root.publisher = events.NewLoggingPublisher(publisher, logger)
	root.closers = append(root.closers, publisher.Close)
	return root, nil
}

// Close releases resources in reverse order of acquisition.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// CreateCreateCourierCommandHandler returns a handler writing couriers.
func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	handler := commands.NewCreateCourierCommandHandler(FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	}))
	return &handler
}

// CreateCreateOrderCommandHandler returns a handler writing orders at random locations.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	handler := commands.NewCreateOrderCommandHandler(FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	}), c.rnd)
	return &handler
}

// CreateAssignCourierCommandHandler returns the dispatch handler with the configured
// retry budget.
func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(
		c.sharedUoWFactory(),
		services.NewDispatchService(),
		c.publisher,
		c.metrics,
		c.cfg.Dispatch.MaxAttempts,
	)
}

// CreateMoveCouriersCommandHandler returns the movement tick handler.
func (c *CompositionRoot) CreateMoveCouriersCommandHandler() *commands.MoveCouriersCommandHandler {
	handler := commands.NewMoveCouriersCommandHandler(c.sharedUoWFactory(), c.publisher, c.metrics)
	return &handler
}

func (c *CompositionRoot) sharedUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPServer wires every command and query handler into the API server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCourier:        c.CreateCreateCourierCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		GetAllCouriers:       queries.NewGetAllCouriersQueryHandler(c.gormDB),
		GetCourier:           queries.NewGetCourierQueryHandler(c.gormDB),
		GetUncompletedOrders: queries.NewGetUncompletedOrdersQueryHandler(c.gormDB),
		ListTransports:       queries.NewListTransportsQueryHandler(),
	}, c.rnd, c.logger)
}

// CreateRouterConfig returns the router settings: log level, metrics registry and a
// health check that pings the database.
func (c *CompositionRoot) CreateRouterConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{
		LogLevel: c.cfg.Log.Level,
		Registry: c.registry,
		Health:   c.ping,
	}
}

// CreateJobManager schedules the assignment and movement jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.Schedule{
			Spec: c.cfg.Jobs.AssignSchedule,
			Job:  jobs.NewCourierAssignmentJob(c.CreateAssignCourierCommandHandler(), c.logger),
		},
		jobs.Schedule{
			Spec: c.cfg.Jobs.MoveSchedule,
			Job:  jobs.NewCourierMovementJob(c.CreateMoveCouriersCommandHandler(), c.logger),
		},
	)
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// publisherConfig maps the mqtt config section onto the publisher settings.
func publisherConfig(cfg MQTTConfig) events.MQTTConfig {
	return events.MQTTConfig{
		Broker:      cfg.Broker,
		ClientID:    cfg.ClientID,
		TopicPrefix: cfg.TopicPrefix,
		QoS:         byte(cfg.QoS),
		Timeout:     cfg.Timeout,
	}
}

// FuncCourierUoWFactory adapts a function to commands.CourierUoWFactory.
type FuncCourierUoWFactory func() commands.CourierUoW

// Create calls f.
func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// lockedSource serialises access to a PCG generator shared by HTTP handlers.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedSource() *lockedSource {
	return &lockedSource{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN returns a value in [0, n) and is safe for concurrent use.
func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
