// Package http exposes the storefront use cases over a JSON API built on echo.
package http

import (
	"context"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// CommandHandler runs a state-changing use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// ResultHandler runs a use case that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, command C) (R, error)
}

// CommandFunc adapts a function to CommandHandler.
type CommandFunc[C any] func(ctx context.Context, command C) error

func (f CommandFunc[C]) Handle(ctx context.Context, command C) error {
	return f(ctx, command)
}

// ResultFunc adapts a function to ResultHandler.
type ResultFunc[C, R any] func(ctx context.Context, command C) (R, error)

func (f ResultFunc[C, R]) Handle(ctx context.Context, command C) (R, error) {
	return f(ctx, command)
}

// Handlers are the use cases served by the API.
type Handlers struct {
	AddProduct      CommandHandler[commands.AddProductCommand]
	AddCartItem     CommandHandler[commands.AddCartItemCommand]
	PlaceOrder      ResultHandler[commands.PlaceOrderCommand, commands.OrderSummary]
	UpdateStatus    CommandHandler[commands.UpdateOrderStatusCommand]
	RequestReturn   CommandHandler[commands.RequestReturnCommand]
	ApproveReturn   ResultHandler[commands.ApproveReturnCommand, order.ReturnOutcome]
	RegisterStation CommandHandler[commands.RegisterStationCommand]
	RegisterAgent   CommandHandler[commands.RegisterAgentCommand]
	PlanJourney     ResultHandler[commands.PlanJourneyCommand, order.Journey]
	AdvanceStage    ResultHandler[commands.AdvanceStageCommand, order.StageTransition]
	AssignAgent     ResultHandler[commands.AssignAgentCommand, order.AgentContact]
	PickUp          CommandHandler[commands.PickUpOrderCommand]
	StartDelivery   CommandHandler[commands.StartDeliveryCommand]
	Complete        CommandHandler[commands.CompleteDeliveryCommand]
	UpdateLocation  CommandHandler[commands.UpdateAgentLocationCommand]

	GetOrder     ResultHandler[queries.GetOrderQuery, queries.OrderView]
	ListOrders   ResultHandler[queries.ListOrdersQuery, []queries.OrderSummary]
	ListStations ResultHandler[queries.ListStationsQuery, []queries.StationView]
	GetTracking  ResultHandler[queries.GetTrackingQuery, queries.TrackingView]
	Analytics    ResultHandler[queries.GetAnalyticsQuery, queries.Analytics]
	Revenue      ResultHandler[queries.GetRevenueQuery, []queries.DailyRevenue]
}

// Server binds Handlers to routes.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With(zap.String("component", "http")),
	}
}

// NewEcho builds an echo instance with recovery, request logging and the error
// mapping installed, and registers every route of s.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			s.logger.Info("request", fields...)
			return nil
		},
	}))

	s.Register(e)
	return e
}

// Register adds the routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.POST("/products", s.AddProduct, requireUser, requireAdmin)
	api.POST("/cart", s.AddCartItem, requireUser)

	orders := api.Group("/orders", requireUser)
	orders.POST("", s.PlaceOrder)
	orders.GET("", s.ListOwnOrders)
	orders.GET("/:orderId", s.GetOrder)
	orders.PUT("/:orderId/status", s.UpdateOrderStatus, requireAdmin)
	orders.POST("/:orderId/returns", s.RequestReturn)

	admin := api.Group("/admin", requireUser, requireAdmin)
	admin.GET("/orders", s.ListAllOrders)
	admin.GET("/analytics", s.GetAnalytics)
	admin.GET("/analytics/revenue", s.GetRevenue)
	admin.PUT("/orders/:orderId/returns/:productId/approve", s.ApproveReturn)

	delivery := api.Group("/delivery")
	delivery.GET("/stations", s.ListStations)
	delivery.GET("/track/:orderId", s.GetTracking)
	delivery.POST("/stations", s.RegisterStation, requireUser, requireAdmin)
	delivery.POST("/agents", s.RegisterAgent, requireUser, requireAdmin)
	delivery.POST("/orders/:orderId/plan", s.PlanJourney, requireUser, requireAdmin)
	delivery.PUT("/orders/:orderId/advance", s.AdvanceStage, requireUser, requireAdmin)
	delivery.POST("/orders/:orderId/assign", s.AssignAgent, requireUser, requireAdmin)
	delivery.PUT("/orders/:orderId/pickup", s.PickUp, requireAgent)
	delivery.PUT("/orders/:orderId/start", s.StartDelivery, requireAgent)
	delivery.PUT("/orders/:orderId/complete", s.CompleteDelivery, requireAgent)
	delivery.PUT("/agent/location", s.UpdateAgentLocation, requireAgent)
}

// parseID reads a UUID path parameter or body field.
func parseID(field, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func bind(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}
