package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery loads one order on behalf of a requester. Buyers only see their own
// orders; admins see every order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, principal.UserID, principal.IsAdmin)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID
	admin       bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, requesterID kernel.UUID, admin bool) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		admin:       admin,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID     { return q.orderID }
func (q GetOrderQuery) RequesterID() kernel.UUID { return q.requesterID }
func (q GetOrderQuery) Admin() bool              { return q.admin }
