package commands

import (
	"context"
)

// AddCartItemCommandHandler adds catalog products to carts. The product must exist;
// stock is only checked when the order is placed.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown product.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, command.ProductID()); err != nil {
		return err
	}

	if err := uow.CartRepository().AddItem(ctx, command.UserID(), command.ProductID(), command.Quantity()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
