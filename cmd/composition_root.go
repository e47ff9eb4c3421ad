package cmd

import (
	"errors"

	httpapi "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/agentrepo"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/restockrepo"
	"storefront/internal/adapters/out/postgres/stationrepo"
	"storefront/internal/adapters/out/redis"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	producer   *kafka.Producer
	cache      *redis.TrackingCache
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) *CompositionRoot {
	producer := kafka.NewProducer(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
	cache := redis.NewTrackingCache(cfg.RedisAddr, cfg.TrackingCacheTTL)

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		producer:   producer,
		cache:      cache,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger, producer, cache),
	}
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StageDTO{},
		&orderrepo.ReturnDTO{},
		&orderrepo.StatusEntryDTO{},
		&stationrepo.StationDTO{},
		&agentrepo.AgentDTO{},
		&restockrepo.TaskDTO{},
	)
}

// Close releases the messaging and cache clients.
func (c *CompositionRoot) Close() error {
	return errors.Join(c.producer.Close(), c.cache.Close())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	return commands.NewRequestReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveReturnCommandHandler() commands.ApproveReturnCommandHandler {
	return commands.NewApproveReturnCommandHandler(c.returnUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateReconcileRestocksCommandHandler() commands.ReconcileRestocksCommandHandler {
	return commands.NewReconcileRestocksCommandHandler(c.returnUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRegisterStationCommandHandler() commands.RegisterStationCommandHandler {
	return commands.NewRegisterStationCommandHandler(c.networkUoWFactory())
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	return commands.NewRegisterAgentCommandHandler(c.networkUoWFactory())
}

func (c *CompositionRoot) CreatePlanJourneyCommandHandler() commands.PlanJourneyCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanJourneyCommandHandler(f, services.NewJourneyPlanner(c.cfg.Journey))
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.deliveryUoWFactory(),
		services.NewAgentDispatcher(services.FirstAvailable{}))
}

func (c *CompositionRoot) CreateAssignWaitingOrdersCommandHandler() commands.AssignWaitingOrdersCommandHandler {
	return commands.NewAssignWaitingOrdersCommandHandler(c.orderUoWFactory(), c.CreateAssignAgentCommandHandler())
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgentLocationCommandHandler() commands.UpdateAgentLocationCommandHandler {
	return commands.NewUpdateAgentLocationCommandHandler(c.deliveryUoWFactory(), c.cfg.AgentSpeedKmh)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStationsQueryHandler() queries.ListStationsQueryHandler {
	return queries.NewListStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAnalyticsQueryHandler() queries.AnalyticsQueryHandler {
	return queries.NewAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	readers := c.uowFactory.Create()
	return queries.NewGetTrackingQueryHandler(
		readers.OrderRepository(),
		readers.StationRepository(),
		readers.AgentRepository(),
		c.cache,
		c.cfg.AgentSpeedKmh,
		c.logger,
	)
}

// HTTPHandlers wires every use case served by the API.
func (c *CompositionRoot) HTTPHandlers() httpapi.Handlers {
	analytics := c.CreateAnalyticsQueryHandler()

	return httpapi.Handlers{
		AddProduct:      c.CreateAddProductCommandHandler(),
		AddCartItem:     c.CreateAddCartItemCommandHandler(),
		PlaceOrder:      c.CreatePlaceOrderCommandHandler(),
		UpdateStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		RequestReturn:   c.CreateRequestReturnCommandHandler(),
		ApproveReturn:   c.CreateApproveReturnCommandHandler(),
		RegisterStation: c.CreateRegisterStationCommandHandler(),
		RegisterAgent:   c.CreateRegisterAgentCommandHandler(),
		PlanJourney:     c.CreatePlanJourneyCommandHandler(),
		AdvanceStage:    c.CreateAdvanceStageCommandHandler(),
		AssignAgent:     c.CreateAssignAgentCommandHandler(),
		PickUp:          c.CreatePickUpOrderCommandHandler(),
		StartDelivery:   c.CreateStartDeliveryCommandHandler(),
		Complete:        c.CreateCompleteDeliveryCommandHandler(),
		UpdateLocation:  c.CreateUpdateAgentLocationCommandHandler(),

		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		ListStations: c.CreateListStationsQueryHandler(),
		GetTracking:  c.CreateGetTrackingQueryHandler(),
		Analytics:    httpapi.ResultFunc[queries.GetAnalyticsQuery, queries.Analytics](analytics.Totals),
		Revenue:      httpapi.ResultFunc[queries.GetRevenueQuery, []queries.DailyRevenue](analytics.Revenue),
	}
}

// Jobs builds the background schedulers.
func (c *CompositionRoot) Jobs() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewAgentAssignmentJob(c.CreateAssignWaitingOrdersCommandHandler(),
			c.cfg.AgentAssignmentSchedule, jobs.DefaultAssignmentBatch, c.logger),
		jobs.NewRestockReconciliationJob(c.CreateReconcileRestocksCommandHandler(),
			c.cfg.RestockReconcileSchedule, jobs.DefaultRestockBatch, c.logger),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) networkUoWFactory() commands.NetworkUoWFactory {
	return FuncNetworkUoWFactory(func() commands.NetworkUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) returnUoWFactory() commands.ReturnUoWFactory {
	return FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncNetworkUoWFactory func() commands.NetworkUoW

func (f FuncNetworkUoWFactory) Create() commands.NetworkUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}
