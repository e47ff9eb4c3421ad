package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery or NewListAllOrdersQuery constructor")

// ListOrdersQuery lists order summaries, newest first. It is either scoped to one buyer
// or covers every order for admins.
type ListOrdersQuery struct {
	owner *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery lists the orders of one buyer.
func NewListOrdersQuery(owner kernel.UUID) (ListOrdersQuery, error) {
	if err := owner.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{owner: &owner, guard: guard.NewConstructorGuard()}, nil
}

// NewListAllOrdersQuery lists every order.
func NewListAllOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Owner is nil for the admin listing.
func (q ListOrdersQuery) Owner() *kernel.UUID { return q.owner }

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	UserID        string    `json:"userId"`
	Status        string    `json:"status"`
	TotalAmount   int64     `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
