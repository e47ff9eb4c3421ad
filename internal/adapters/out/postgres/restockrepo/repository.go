// Package restockrepo persists the restock tasks of approved returns.
package restockrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/restock"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskDTO represents the database structure for restock tasks.
type TaskDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
	Attempts  int       `gorm:"not null;default:0"`
	LastError string
	CreatedAt time.Time `gorm:"not null;index"`
	AppliedAt *time.Time
}

// TableName specifies the database table name for restock tasks.
func (TaskDTO) TableName() string {
	return "restock_tasks"
}

// GormRestockRepository implements RestockRepository using GORM.
type GormRestockRepository struct {
	db *gorm.DB
}

// NewGormRestockRepository creates a new GORM restock repository.
func NewGormRestockRepository(db *gorm.DB) *GormRestockRepository {
	return &GormRestockRepository{db: db}
}

// Add saves a new task.
func (r *GormRestockRepository) Add(ctx context.Context, task *restock.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := TaskDTO{
		ID:        task.ID().Bytes(),
		OrderID:   task.OrderID().Bytes(),
		ProductID: task.ProductID().Bytes(),
		Quantity:  task.Quantity(),
		Status:    string(task.Status()),
		Attempts:  task.Attempts(),
		LastError: task.LastError(),
		CreatedAt: task.CreatedAt(),
		AppliedAt: task.AppliedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("restock.add", err)
	}
	return nil
}

// MarkApplied flips a pending task to applied. It reports false, without error, when
// the task exists but was applied before; a missing task is ObjectNotFound.
func (r *GormRestockRepository) MarkApplied(ctx context.Context, id kernel.UUID, at time.Time) (bool, error) {
	db := r.db.WithContext(ctx)
	result := db.Model(&TaskDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), string(restock.Pending)).
		Updates(map[string]any{
			"status":     string(restock.Applied),
			"applied_at": at,
		})
	if result.Error != nil {
		return false, errs.NewStorageError("restock.mark_applied", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var dto TaskDTO
	err := db.Select("id").Take(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, errs.NewObjectNotFoundError("restock task", id.String())
	}
	if err != nil {
		return false, errs.NewStorageError("restock.mark_applied", err)
	}
	return false, nil
}

// RecordFailure bumps the attempt counter and keeps the last error.
func (r *GormRestockRepository) RecordFailure(ctx context.Context, id kernel.UUID, reason string) error {
	err := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
	if err != nil {
		return errs.NewStorageError("restock.record_failure", err)
	}
	return nil
}

// ListPending returns up to limit pending tasks, oldest first.
func (r *GormRestockRepository) ListPending(ctx context.Context, limit int) ([]*restock.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(restock.Pending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("restock.list_pending", err)
	}

	tasks := make([]*restock.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func toDomain(dto TaskDTO) (*restock.Task, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	productID, productErr := kernel.UUIDFromBytes(dto.ProductID[:])
	if err := errors.Join(idErr, orderErr, productErr); err != nil {
		return nil, err
	}
	return restock.RestoreTask(id, orderID, productID, dto.Quantity, restock.Status(dto.Status),
		dto.Attempts, dto.LastError, dto.CreatedAt, dto.AppliedAt)
}
