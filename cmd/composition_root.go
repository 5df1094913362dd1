package cmd

import (
	"log/slog"

	httpin "deliveryfee/internal/adapters/in/http"
	"deliveryfee/internal/adapters/out/metrics"
	"deliveryfee/internal/adapters/out/postgres"
	"deliveryfee/internal/core/application/usecases/commands"
	"deliveryfee/internal/core/application/usecases/queries"
	"deliveryfee/internal/core/domain/model/zone"
	"deliveryfee/internal/core/domain/services"
	"deliveryfee/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	feeService services.DeliveryFeeService
	metrics    *metrics.PrometheusFeeMetrics
	logger     *slog.Logger
}

// NewCompositionRoot fails only when tables cannot back the fee engine.
func NewCompositionRoot(config Config, gormDB *gorm.DB, tables *zone.Tables, logger *slog.Logger) (CompositionRoot, error) {
	feeService, err := services.NewDeliveryFeeService(tables)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		feeService: feeService,
		metrics:    metrics.NewPrometheusFeeMetrics(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.PrometheusFeeMetrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRefreshDeliveryFeesCommandHandler() commands.RefreshDeliveryFeesCommandHandler {
	return commands.NewRefreshDeliveryFeesCommandHandler(c.orderUoWFactory(), c.feeService, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderDeliveryFeesQueryHandler() queries.GetOrderDeliveryFeesQueryHandler {
	// Without Begin the repository reads through the plain connection.
	orders := c.uowFactory.Create().OrderRepository()
	return queries.NewGetOrderDeliveryFeesQueryHandler(orders, c.feeService, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateQuoteDeliveryFeesQueryHandler() queries.QuoteDeliveryFeesQueryHandler {
	return queries.NewQuoteDeliveryFeesQueryHandler(c.feeService, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateListOrdersAwaitingFeesQueryHandler() queries.ListOrdersAwaitingFeesQueryHandler {
	return queries.NewListOrdersAwaitingFeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateQuoteDeliveryFeesQueryHandler(),
		c.CreateGetOrderDeliveryFeesQueryHandler(),
		c.CreateListOrdersAwaitingFeesQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshDeliveryFeesCommandHandler(),
		c.config.FeeRefreshSchedule,
		c.config.FeeRefreshBatchSize,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
