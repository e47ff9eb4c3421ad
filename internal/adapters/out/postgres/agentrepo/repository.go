package agentrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent.
func (r *GormAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("agents.add", err)
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Update writes every column of an existing agent if nobody changed it since it was
// read. A stale agent fails with errs.ErrVersionIsInvalid.
func (r *GormAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	expected := dto.Version
	dto.Version = expected + 1

	db := r.db.WithContext(ctx)
	result := db.Model(&AgentDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("agents.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return missOrConflict(db, a.ID(), expected)
	}

	a.IncrementVersion()
	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

func missOrConflict(db *gorm.DB, id kernel.UUID, expected int64) error {
	var stored AgentDTO
	err := db.Select("id", "version").Take(&stored, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("agent", id.String())
	}
	if err != nil {
		return errs.NewStorageError("agents.update", err)
	}

	return errs.NewVersionIsInvalidErrorWithCause("agent",
		fmt.Errorf("agent %s was modified concurrently: stored version %d, expected %d", id, stored.Version, expected))
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, errs.NewStorageError("agents.get", err)
	}

	return toDomain(dto)
}

// ListAvailableAtStation returns the available agents of stationID, oldest first.
func (r *GormAgentRepository) ListAvailableAtStation(ctx context.Context, stationID kernel.UUID) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	err := r.db.WithContext(ctx).
		Where("station_id = ? AND status = ?", stationID.Bytes(), string(agent.Available)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("agents.list_available", err)
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		agents = append(agents, a)
	}
	return agents, nil
}
