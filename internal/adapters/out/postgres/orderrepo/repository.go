package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its children.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("orders.add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order row guarded by its version and replaces the children.
// All statements share one transaction (a savepoint when already inside one).
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(&dto)
		if result.Error != nil {
			return errs.NewStorageError("orders.update", result.Error)
		}
		if result.RowsAffected == 0 {
			return r.missOrConflict(tx, aggregate.ID(), expected)
		}

		return replaceChildren(tx, dto)
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with all of its children.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("Stages", byPosition).
		Preload("Returns", func(db *gorm.DB) *gorm.DB { return db.Order("requested_at") }).
		Preload("History", byPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("orders.get", err)
	}

	return toDomain(dto)
}

// ListIDsByStatus returns up to limit order ids in the given status, oldest first.
func (r *GormOrderRepository) ListIDsByStatus(ctx context.Context, status order.Status, limit int) ([]kernel.UUID, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Select("id").
		Where("status = ?", status.String()).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("orders.list_ids_by_status", err)
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *GormOrderRepository) missOrConflict(tx *gorm.DB, id kernel.UUID, expected int64) error {
	var stored OrderDTO
	err := tx.Select("id", "version").Take(&stored, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return errs.NewStorageError("orders.update", err)
	}

	return errs.NewVersionIsInvalidErrorWithCause("order",
		fmt.Errorf("order %s was modified concurrently: stored version %d, expected %d", id, stored.Version, expected))
}

func replaceChildren(tx *gorm.DB, dto OrderDTO) error {
	for _, model := range []any{&ItemDTO{}, &StageDTO{}, &ReturnDTO{}, &StatusEntryDTO{}} {
		if err := tx.Where("order_id = ?", dto.ID).Delete(model).Error; err != nil {
			return errs.NewStorageError("orders.update", err)
		}
	}

	inserts := []struct {
		n     int
		value any
	}{
		{len(dto.Items), &dto.Items},
		{len(dto.Stages), &dto.Stages},
		{len(dto.Returns), &dto.Returns},
		{len(dto.History), &dto.History},
	}
	for _, ins := range inserts {
		if ins.n == 0 {
			continue
		}
		if err := tx.Create(ins.value).Error; err != nil {
			return errs.NewStorageError("orders.update", err)
		}
	}
	return nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
