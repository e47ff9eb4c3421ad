package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AddProduct handles POST /api/products.
func (s *Server) AddProduct(c echo.Context) error {
	var req addProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	if req.ID != "" {
		var err error
		if id, err = parseID("id", req.ID); err != nil {
			return err
		}
	}

	cmd, err := commands.NewAddProductCommand(id, req.Name, kernel.Money(req.Price), req.Image, req.Stock)
	if err != nil {
		return err
	}
	if err = s.h.AddProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

// AddCartItem handles POST /api/cart.
func (s *Server) AddCartItem(c echo.Context) error {
	var req addCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	productID, err := parseID("productId", req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(principal(c).UserID, productID, req.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := parseID("productId", item.ProductID)
		if err != nil {
			return err
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	var coordinates *kernel.GeoPoint
	if req.ShippingAddress.Coordinates != nil {
		point, err := req.ShippingAddress.Coordinates.toDomain()
		if err != nil {
			return err
		}
		coordinates = &point
	}
	address, err := order.NewShippingAddress(
		req.ShippingAddress.FullName,
		req.ShippingAddress.Address,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.ZipCode,
		coordinates,
	)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, principal(c).UserID, lines, address, req.PaymentMethod)
	if err != nil {
		return err
	}
	summary, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, placeOrderResponse{
		ID:          summary.ID.String(),
		OrderNumber: summary.OrderNumber,
		Status:      summary.Status.String(),
		TotalAmount: int64(summary.TotalAmount),
		CreatedAt:   summary.CreatedAt,
	})
}

// ListOwnOrders handles GET /api/orders.
func (s *Server) ListOwnOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(principal(c).UserID)
	if err != nil {
		return err
	}
	return s.listOrders(c, query)
}

// ListAllOrders handles GET /api/admin/orders.
func (s *Server) ListAllOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListAllOrdersQuery())
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	summaries, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	p := principal(c)
	query, err := queries.NewGetOrderQuery(orderID, p.UserID, p.Admin)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateOrderStatus handles PUT /api/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status, req.Description)
	if err != nil {
		return err
	}
	if err = s.h.UpdateStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/orders/:orderId/returns.
func (s *Server) RequestReturn(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	var req requestReturnRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	productID, err := parseID("productId", req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, principal(c).UserID, productID)
	if err != nil {
		return err
	}
	if err = s.h.RequestReturn.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}
