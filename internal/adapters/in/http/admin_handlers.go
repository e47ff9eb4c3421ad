package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ApproveReturn handles PUT /api/admin/orders/:orderId/returns/:productId/approve.
func (s *Server) ApproveReturn(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	productID, err := parseID("productId", c.Param("productId"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveReturnCommand(orderID, productID)
	if err != nil {
		return err
	}
	outcome, err := s.h.ApproveReturn.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, returnOutcomeResponse{
		ProductID:    outcome.ProductID.String(),
		ItemName:     outcome.ItemName,
		Quantity:     outcome.Quantity,
		RefundAmount: outcome.RefundAmount.Cents(),
	})
}

// GetAnalytics handles GET /api/admin/analytics.
func (s *Server) GetAnalytics(c echo.Context) error {
	totals, err := s.h.Analytics.Handle(c.Request().Context(), queries.NewGetAnalyticsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}

// GetRevenue handles GET /api/admin/analytics/revenue?period=week|month|year.
func (s *Server) GetRevenue(c echo.Context) error {
	query, err := queries.NewGetRevenueQuery(c.QueryParam("period"), time.Now())
	if err != nil {
		return err
	}
	points, err := s.h.Revenue.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[queries.DailyRevenue]{Data: points})
}
