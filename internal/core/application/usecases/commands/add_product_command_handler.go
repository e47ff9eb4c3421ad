package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/product"
)

// AddProductCommandHandler stores a new catalog product.
type AddProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddProductCommandHandler(uowFactory CatalogUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{uowFactory: uowFactory}
}

// Handle creates the product and persists it.
func (h AddProductCommandHandler) Handle(ctx context.Context, command AddProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(
		command.ProductID(),
		command.Name(),
		command.Price(),
		command.Image(),
		command.Stock(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
