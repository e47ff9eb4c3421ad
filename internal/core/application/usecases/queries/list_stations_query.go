package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrListStationsQueryIsNotConstructed = errors.New("ListStationsQuery must be created via NewListStationsQuery constructor")

// ListStationsQuery lists the delivery network in registration order.
type ListStationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListStationsQuery() ListStationsQuery {
	return ListStationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStationsQuery) Validate() error {
	return q.guard.Validate(ErrListStationsQueryIsNotConstructed)
}
