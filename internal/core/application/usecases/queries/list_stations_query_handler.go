package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStationsQueryHandler struct {
	db *gorm.DB
}

func NewListStationsQueryHandler(db *gorm.DB) ListStationsQueryHandler {
	return ListStationsQueryHandler{db: db}
}

func (h ListStationsQueryHandler) Handle(ctx context.Context, query ListStationsQuery) ([]StationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			city,
			type,
			latitude,
			longitude,
			capacity,
			current_load,
			created_at
		FROM stations
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]StationView, 0)
	for rows.Next() {
		var (
			view StationView
			id   uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&view.Name,
			&view.Address,
			&view.City,
			&view.Type,
			&view.Location.Latitude,
			&view.Location.Longitude,
			&view.Capacity,
			&view.CurrentLoad,
			&view.CreatedAt,
		); err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = stationID.String()
		stations = append(stations, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
