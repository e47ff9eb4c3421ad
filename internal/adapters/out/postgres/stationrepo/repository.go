package stationrepo

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Add saves a new station.
func (r *GormStationRepository) Add(ctx context.Context, s *station.Station) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("stations.add", err)
	}
	return nil
}

// Get retrieves a station by ID.
func (r *GormStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, errs.NewStorageError("stations.get", err)
	}

	return toDomain(dto)
}

// FindFirst returns the oldest station of stationType, restricted to city when given.
func (r *GormStationRepository) FindFirst(ctx context.Context, stationType station.Type, city string) (*station.Station, error) {
	query := r.db.WithContext(ctx).Where("type = ?", string(stationType))
	if city = strings.ToLower(strings.TrimSpace(city)); city != "" {
		query = query.Where("city = ?", city)
	}

	var dto StationDTO
	err := query.Order("created_at").Order("id").Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", string(stationType)+"/"+city)
		}
		return nil, errs.NewStorageError("stations.find_first", err)
	}

	return toDomain(dto)
}
