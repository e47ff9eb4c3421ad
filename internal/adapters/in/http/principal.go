package http

import (
	"net/http"
	"strings"

	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers. Authentication happens in front of this service; the gateway
// forwards the verified identity in these headers.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderAgentID  = "X-Agent-ID"

	roleAdmin = "admin"

	principalKey = "principal"
	agentKey     = "agent"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID kernel.UUID
	Admin  bool
}

// requireUser rejects requests without a valid user identity.
func requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := kernel.UUIDFromString(strings.TrimSpace(c.Request().Header.Get(HeaderUserID)))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+HeaderUserID)
		}
		role := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderUserRole)))
		c.Set(principalKey, Principal{UserID: id, Admin: role == roleAdmin})
		return next(c)
	}
}

// requireAdmin must run after requireUser.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !principal(c).Admin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

// requireAgent rejects requests without a valid agent identity.
func requireAgent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := kernel.UUIDFromString(strings.TrimSpace(c.Request().Header.Get(HeaderAgentID)))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+HeaderAgentID)
		}
		c.Set(agentKey, id)
		return next(c)
	}
}

func principal(c echo.Context) Principal {
	p, _ := c.Get(principalKey).(Principal)
	return p
}

func agentID(c echo.Context) kernel.UUID {
	id, _ := c.Get(agentKey).(kernel.UUID)
	return id
}
