package queries

import (
	"context"

	"storefront/internal/pkg/errs"
)

// GetOrderQueryHandler renders an order aggregate into an OrderView.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order. An order of another buyer is reported as not found, so its
// existence is not revealed.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if !query.Admin() && !o.UserID().IsEqual(query.RequesterID()) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return newOrderView(o), nil
}
