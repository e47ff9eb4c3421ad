package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/station"
)

// StationRepository stores the delivery network.
type StationRepository interface {
	Add(ctx context.Context, s *station.Station) error
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// FindFirst returns the oldest registered station of the given type. An empty city
	// matches any city; otherwise it is compared with the stored lower-cased city.
	// Returns errs.ErrObjectNotFound when nothing matches.
	FindFirst(ctx context.Context, stationType station.Type, city string) (*station.Station, error)
}
