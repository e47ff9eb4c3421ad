package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEcho(h httpapi.Handlers) *echo.Echo {
	return httpapi.NewEcho(httpapi.NewServer(h, zap.NewNop()))
}

type request struct {
	method  string
	path    string
	body    string
	userID  string
	admin   bool
	agentID string
}

func serve(t *testing.T, e *echo.Echo, r request) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.userID != "" {
		req.Header.Set(httpapi.HeaderUserID, r.userID)
	}
	if r.admin {
		req.Header.Set(httpapi.HeaderUserRole, "admin")
	}
	if r.agentID != "" {
		req.Header.Set(httpapi.HeaderAgentID, r.agentID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpapi.ErrorResponse {
	t.Helper()
	var body httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestEcho(httpapi.Handlers{})

	rec := serve(t, e, request{method: http.MethodGet, path: "/health"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	userID := kernel.NewUUID().String()

	testCases := []struct {
		name     string
		req      request
		expected int
	}{
		{
			name:     "orders without user",
			req:      request{method: http.MethodGet, path: "/api/orders"},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "malformed user id",
			req:      request{method: http.MethodGet, path: "/api/orders", userID: "nope"},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "admin route as customer",
			req:      request{method: http.MethodGet, path: "/api/admin/orders", userID: userID},
			expected: http.StatusForbidden,
		},
		{
			name:     "catalog seeding as customer",
			req:      request{method: http.MethodPost, path: "/api/products", body: `{}`, userID: userID},
			expected: http.StatusForbidden,
		},
		{
			name:     "pickup without agent",
			req:      request{method: http.MethodPut, path: "/api/delivery/orders/" + kernel.NewUUID().String() + "/pickup", userID: userID},
			expected: http.StatusUnauthorized,
		},
	}

	e := newTestEcho(httpapi.Handlers{})
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, e, tc.req)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: errs.NewObjectNotFoundError("order", kernel.NewUUID()), expected: http.StatusNotFound},
		{name: "invalid value", err: errs.NewValueIsInvalidError("status"), expected: http.StatusBadRequest},
		{name: "not ready", err: order.ErrNotReady, expected: http.StatusConflict},
		{name: "stale version", err: errs.NewVersionIsInvalidError("order"), expected: http.StatusConflict},
		{name: "no agent", err: services.ErrNoAvailableAgent, expected: http.StatusConflict},
		{name: "no local station", err: order.ErrNoLocalStation, expected: http.StatusUnprocessableEntity},
		{name: "missing city inside required value", err: errs.NewValueIsRequiredErrorWithCause("city", order.ErrMissingCity), expected: http.StatusUnprocessableEntity},
		{name: "no local station inside required value", err: errs.NewValueIsRequiredErrorWithCause("local station", order.ErrNoLocalStation), expected: http.StatusUnprocessableEntity},
		{name: "stale version with cause", err: errs.NewVersionIsInvalidErrorWithCause("agent", errors.New("version 3")), expected: http.StatusConflict},
		{name: "order held by another agent", err: errs.NewObjectNotFoundErrorWithCause("order", kernel.NewUUID(), fmt.Errorf("%w: want picked_up", order.ErrAgentMismatch)), expected: http.StatusNotFound},
		{name: "storage", err: errs.NewStorageError("commit", errors.New("connection reset")), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(httpapi.Handlers{
				AssignAgent: httpapi.ResultFunc[commands.AssignAgentCommand, order.AgentContact](
					func(context.Context, commands.AssignAgentCommand) (order.AgentContact, error) {
						return order.AgentContact{}, tc.err
					}),
			})

			rec := serve(t, e, request{
				method: http.MethodPost,
				path:   "/api/delivery/orders/" + kernel.NewUUID().String() + "/assign",
				userID: kernel.NewUUID().String(),
				admin:  true,
			})

			assert.Equal(t, tc.expected, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.expected, body.Code)
			if tc.expected == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection reset")
			}
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()

	var captured commands.PlaceOrderCommand
	e := newTestEcho(httpapi.Handlers{
		PlaceOrder: httpapi.ResultFunc[commands.PlaceOrderCommand, commands.OrderSummary](
			func(_ context.Context, cmd commands.PlaceOrderCommand) (commands.OrderSummary, error) {
				captured = cmd
				return commands.OrderSummary{
					ID:          cmd.OrderID(),
					OrderNumber: cmd.OrderID().ShortCode(),
					Status:      order.OrderPlaced,
					TotalAmount: 2500,
				}, nil
			}),
	})

	rec := serve(t, e, request{
		method: http.MethodPost,
		path:   "/api/orders",
		userID: userID.String(),
		body: `{
			"items": [{"productId": "` + productID.String() + `", "quantity": 2}],
			"shippingAddress": {
				"fullName": "Ada Lovelace", "address": "12 Baker St", "city": "London",
				"state": "LDN", "zipCode": "NW1", "coordinates": {"latitude": 51.52, "longitude": -0.15}
			},
			"paymentMethod": "card"
		}`,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		ID          string `json:"id"`
		OrderNumber string `json:"orderNumber"`
		Status      string `json:"status"`
		TotalAmount int64  `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order_placed", body.Status)
	assert.Equal(t, int64(2500), body.TotalAmount)

	assert.Equal(t, captured.OrderID().String(), body.ID)
	assert.Equal(t, captured.OrderID().ShortCode(), body.OrderNumber)
	assert.Equal(t, userID, captured.UserID())
	assert.Equal(t, "card", captured.PaymentMethod())
	require.Len(t, captured.Lines(), 1)
	assert.Equal(t, productID, captured.Lines()[0].ProductID)
	assert.Equal(t, "london", captured.ShippingAddress().NormalizedCity())
	assert.NotNil(t, captured.ShippingAddress().Coordinates())
}

func TestPlaceOrder_InvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"items":`},
		{name: "bad product id", body: `{"items":[{"productId":"x","quantity":1}],"paymentMethod":"card"}`},
		{name: "missing address", body: `{"items":[{"productId":"` + kernel.NewUUID().String() + `","quantity":1}],"paymentMethod":"card"}`},
	}

	e := newTestEcho(httpapi.Handlers{
		PlaceOrder: httpapi.ResultFunc[commands.PlaceOrderCommand, commands.OrderSummary](
			func(context.Context, commands.PlaceOrderCommand) (commands.OrderSummary, error) {
				t.Fatal("handler must not run")
				return commands.OrderSummary{}, nil
			}),
	})
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, e, request{
				method: http.MethodPost,
				path:   "/api/orders",
				userID: kernel.NewUUID().String(),
				body:   tc.body,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetOrder_PassesRequester(t *testing.T) {
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	var captured queries.GetOrderQuery
	e := newTestEcho(httpapi.Handlers{
		GetOrder: httpapi.ResultFunc[queries.GetOrderQuery, queries.OrderView](
			func(_ context.Context, q queries.GetOrderQuery) (queries.OrderView, error) {
				captured = q
				return queries.OrderView{ID: q.OrderID().String()}, nil
			}),
	})

	rec := serve(t, e, request{
		method: http.MethodGet,
		path:   "/api/orders/" + orderID.String(),
		userID: userID.String(),
		admin:  true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orderID, captured.OrderID())
	assert.Equal(t, userID, captured.RequesterID())
	assert.True(t, captured.Admin())
}

func TestGetOrder_InvalidID(t *testing.T) {
	e := newTestEcho(httpapi.Handlers{})

	rec := serve(t, e, request{method: http.MethodGet, path: "/api/orders/123", userID: kernel.NewUUID().String()})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "orderId")
}

func TestPickUp_UsesAgentHeader(t *testing.T) {
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	var captured commands.PickUpOrderCommand
	e := newTestEcho(httpapi.Handlers{
		PickUp: httpapi.CommandFunc[commands.PickUpOrderCommand](
			func(_ context.Context, cmd commands.PickUpOrderCommand) error {
				captured = cmd
				return nil
			}),
	})

	rec := serve(t, e, request{
		method:  http.MethodPut,
		path:    "/api/delivery/orders/" + orderID.String() + "/pickup",
		agentID: agentID.String(),
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, orderID, captured.OrderID())
	assert.Equal(t, agentID, captured.AgentID())
}

func TestGetRevenue(t *testing.T) {
	e := newTestEcho(httpapi.Handlers{
		Revenue: httpapi.ResultFunc[queries.GetRevenueQuery, []queries.DailyRevenue](
			func(_ context.Context, q queries.GetRevenueQuery) ([]queries.DailyRevenue, error) {
				assert.Equal(t, queries.Week, q.Period())
				return []queries.DailyRevenue{{Date: "2025-03-01", Revenue: 4200, Orders: 2}}, nil
			}),
	})
	admin := kernel.NewUUID().String()

	rec := serve(t, e, request{method: http.MethodGet, path: "/api/admin/analytics/revenue?period=week", userID: admin, admin: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"date":"2025-03-01","revenue":4200,"orders":2}]}`, rec.Body.String())

	rec = serve(t, e, request{method: http.MethodGet, path: "/api/admin/analytics/revenue?period=decade", userID: admin, admin: true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTracking_IsPublic(t *testing.T) {
	orderID := kernel.NewUUID()
	e := newTestEcho(httpapi.Handlers{
		GetTracking: httpapi.ResultFunc[queries.GetTrackingQuery, queries.TrackingView](
			func(_ context.Context, q queries.GetTrackingQuery) (queries.TrackingView, error) {
				return queries.TrackingView{OrderID: q.OrderID().String(), Status: "in_transit"}, nil
			}),
	})

	rec := serve(t, e, request{method: http.MethodGet, path: "/api/delivery/track/" + orderID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	var view queries.TrackingView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, orderID.String(), view.OrderID)
}
