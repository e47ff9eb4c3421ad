package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterStation handles POST /api/delivery/stations.
func (s *Server) RegisterStation(c echo.Context) error {
	var req registerStationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	point, err := req.Coordinates.toDomain()
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterStationCommand(id, req.Name, req.Address, req.City, req.Type, point)
	if err != nil {
		return err
	}
	if err = s.h.RegisterStation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

// ListStations handles GET /api/delivery/stations.
func (s *Server) ListStations(c echo.Context) error {
	stations, err := s.h.ListStations.Handle(c.Request().Context(), queries.NewListStationsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stations)
}

// RegisterAgent handles POST /api/delivery/agents.
func (s *Server) RegisterAgent(c echo.Context) error {
	var req registerAgentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	var stationID *kernel.UUID
	if req.StationID != "" {
		id, err := parseID("stationId", req.StationID)
		if err != nil {
			return err
		}
		stationID = &id
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(id, req.Name, req.Phone, req.VehicleType, req.LicenseNumber, stationID)
	if err != nil {
		return err
	}
	if err = s.h.RegisterAgent.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

// PlanJourney handles POST /api/delivery/orders/:orderId/plan.
func (s *Server) PlanJourney(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	cmd, err := commands.NewPlanJourneyCommand(orderID)
	if err != nil {
		return err
	}

	journey, err := s.h.PlanJourney.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newJourneyResponse(journey))
}

// AdvanceStage handles PUT /api/delivery/orders/:orderId/advance.
func (s *Server) AdvanceStage(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceStageCommand(orderID)
	if err != nil {
		return err
	}

	transition, err := s.h.AdvanceStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transitionResponse{
		From:         newStageDTO(transition.From),
		To:           newStageDTO(transition.To),
		CurrentIndex: transition.Index,
		Status:       transition.NewStatus.String(),
	})
}

// AssignAgent handles POST /api/delivery/orders/:orderId/assign.
func (s *Server) AssignAgent(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignAgentCommand(orderID)
	if err != nil {
		return err
	}

	contact, err := s.h.AssignAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agentContactResponse{
		ID:    contact.ID().String(),
		Name:  contact.Name(),
		Phone: contact.Phone(),
	})
}

// PickUp handles PUT /api/delivery/orders/:orderId/pickup.
func (s *Server) PickUp(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	cmd, err := commands.NewPickUpOrderCommand(orderID, agentID(c))
	if err != nil {
		return err
	}
	if err = s.h.PickUp.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// StartDelivery handles PUT /api/delivery/orders/:orderId/start.
func (s *Server) StartDelivery(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	cmd, err := commands.NewStartDeliveryCommand(orderID, agentID(c))
	if err != nil {
		return err
	}
	if err = s.h.StartDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles PUT /api/delivery/orders/:orderId/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	var req completeRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, agentID(c), req.DeliveryProof)
	if err != nil {
		return err
	}
	if err = s.h.Complete.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateAgentLocation handles PUT /api/delivery/agent/location.
func (s *Server) UpdateAgentLocation(c echo.Context) error {
	var req pointDTO
	if err := bind(c, &req); err != nil {
		return err
	}
	point, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAgentLocationCommand(agentID(c), point)
	if err != nil {
		return err
	}
	if err = s.h.UpdateLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTracking handles GET /api/delivery/track/:orderId.
func (s *Server) GetTracking(c echo.Context) error {
	orderID, err := parseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
