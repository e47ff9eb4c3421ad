// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The unit of work keeps the aggregates touched by a business transaction, commits
// their changes together and, once the commit succeeded, publishes the domain events
// they recorded.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, logger, kafkaProducer)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.AgentRepository().Update(ctx, a); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Order writes are guarded by a version column, so two transactions that read the
//     same order cannot both commit a change to it
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/agentrepo"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/restockrepo"
	"storefront/internal/adapters/out/postgres/stationrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record order status events.
type eventSource interface {
	DomainEvents() []order.StatusChanged
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	publishers []ports.EventPublisher
	logger     *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// Every publisher receives the events of each committed unit of work, in order.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    logger.Fatal("failed to connect database", zap.Error(err))
//	}
//	factory := NewGormUnitOfWorkFactory(db, logger, producer, trackingCache)
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger, publishers ...ports.EventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:         db,
		publishers: publishers,
		logger:     logger.With(zap.String("component", "unit_of_work")),
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publishers:        f.publishers,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publishers        []ports.EventPublisher
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and then hands
// the recorded domain events to the publishers. A failed publish is logged and does
// not fail the commit, which already happened.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards all changes made within the current transaction and forgets the
// tracked aggregates. After Commit it returns gorm.ErrInvalidTransaction, which the
// usual deferred call ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductRepository provides access to the catalog within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

// InventoryLedger provides the atomic stock primitives within the unit of work.
func (uow *GormUnitOfWork) InventoryLedger() ports.InventoryLedger {
	return productrepo.NewGormInventoryLedger(uow.conn())
}

// StationRepository provides access to the delivery network within the unit of work.
func (uow *GormUnitOfWork) StationRepository() ports.StationRepository {
	return stationrepo.NewGormStationRepository(uow.conn())
}

// AgentRepository provides access to delivery agents within the unit of work.
func (uow *GormUnitOfWork) AgentRepository() ports.AgentRepository {
	return agentrepo.NewGormAgentRepository(uow.conn(), uow)
}

// CartRepository provides access to carts within the unit of work.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// RestockRepository provides access to restock tasks within the unit of work.
func (uow *GormUnitOfWork) RestockRepository() ports.RestockRepository {
	return restockrepo.NewGormRestockRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the active transaction, or the plain connection outside Begin/Commit.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	var events []order.StatusChanged
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[source]; dup {
			continue
		}
		seen[source] = struct{}{}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if len(events) == 0 {
		return
	}
	for _, p := range uow.publishers {
		if err := p.Publish(ctx, events); err != nil {
			uow.logger.Error("failed to publish order events",
				zap.Int("events", len(events)),
				zap.Error(err))
		}
	}
}
