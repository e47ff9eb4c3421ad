package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderSummary describes a freshly placed order.
type OrderSummary struct {
	ID          kernel.UUID
	OrderNumber string
	Status      order.Status
	TotalAmount kernel.Money
	CreatedAt   time.Time
}

// PlaceOrderCommandHandler places orders atomically.
//
// Within one transaction it, for every line in request order:
//  1. loads the product to freeze its name, price and image on the item
//  2. reserves the stock with a conditional decrement
//
// then inserts the order and clears the buyer's cart. Any failure rolls back every
// reservation made so far, so a rejected order never consumes stock.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	summary, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, product.ErrInsufficientStock):
//	    // tell the buyer which product ran out
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown product
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (OrderSummary, error) {
	if err := command.Validate(); err != nil {
		return OrderSummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderSummary{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	ledger := uow.InventoryLedger()

	lines := command.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, err := products.Get(ctx, line.ProductID)
		if err != nil {
			return OrderSummary{}, err
		}
		if err = ledger.ReserveStock(ctx, line.ProductID, line.Quantity); err != nil {
			return OrderSummary{}, err
		}
		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), line.Quantity, p.Image())
		if err != nil {
			return OrderSummary{}, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(
		command.OrderID(),
		command.UserID(),
		items,
		command.ShippingAddress(),
		command.PaymentMethod(),
		time.Now(),
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return OrderSummary{}, err
	}
	if err = uow.CartRepository().Clear(ctx, command.UserID()); err != nil {
		return OrderSummary{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		Status:      o.Status(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
	}, nil
}
