// Package http exposes the booking, routing and tracking operations over a
// REST API. Handlers translate between resource representations and the
// application's commands and queries; no domain logic lives here.
package http

import (
	"errors"
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	bookCargoHandler             commands.BookCargoCommandHandler
	assignCargoToRouteHandler    commands.AssignCargoToRouteCommandHandler
	changeDestinationHandler     commands.ChangeDestinationCommandHandler
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler

	// Query handlers
	trackCargoHandler queries.TrackCargoQueryHandler
	listCargosHandler queries.ListCargosQueryHandler

	// Route candidates are served straight from the domain services
	cargoRepository    ports.CargoRepository
	locationRepository ports.LocationRepository
	voyageRepository   ports.VoyageRepository
	routingService     services.RoutingService
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	assignCargoToRouteHandler commands.AssignCargoToRouteCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	listCargosHandler queries.ListCargosQueryHandler,
	cargoRepository ports.CargoRepository,
	locationRepository ports.LocationRepository,
	voyageRepository ports.VoyageRepository,
	routingService services.RoutingService,
) *Server {
	return &Server{
		bookCargoHandler:             bookCargoHandler,
		assignCargoToRouteHandler:    assignCargoToRouteHandler,
		changeDestinationHandler:     changeDestinationHandler,
		registerHandlingEventHandler: registerHandlingEventHandler,
		trackCargoHandler:            trackCargoHandler,
		listCargosHandler:            listCargosHandler,
		cargoRepository:              cargoRepository,
		locationRepository:           locationRepository,
		voyageRepository:             voyageRepository,
		routingService:               routingService,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/cargos", s.BookCargo)
	api.GET("/cargos", s.ListCargos)
	api.GET("/cargos/:trackingId", s.TrackCargo)
	api.GET("/cargos/:trackingId/route-candidates", s.RouteCandidates)
	api.POST("/cargos/:trackingId/itinerary", s.AssignItinerary)
	api.POST("/cargos/:trackingId/destination", s.ChangeDestination)
	api.POST("/cargos/:trackingId/handling-events", s.RegisterHandlingEvent)
	e.GET("/health", s.Health)
}

// BookCargo handles POST /api/v1/cargos - books a new cargo.
func (s *Server) BookCargo(ctx echo.Context) error {
	var newCargo NewCargo
	if err := ctx.Bind(&newCargo); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewUnLocode(newCargo.Origin)
	if err != nil {
		return badRequest(ctx, "Invalid origin: "+err.Error())
	}

	destination, err := kernel.NewUnLocode(newCargo.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, newCargo.ArrivalDeadline)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	if err = s.bookCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Unknown location")
		}
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return badRequest(ctx, "Invalid booking data: "+err.Error())
		}
		return internalError(ctx, "Failed to book cargo")
	}

	return ctx.JSON(http.StatusCreated, CargoBooked{TrackingId: trackingID.String()})
}

// ListCargos handles GET /api/v1/cargos - retrieves the booking overview.
func (s *Server) ListCargos(ctx echo.Context) error {
	cargos, err := s.listCargosHandler.Handle(ctx.Request().Context(), queries.NewListCargosQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve cargos")
	}

	response := make([]CargoSummary, len(cargos))
	for i, c := range cargos {
		response[i] = CargoSummary{
			TrackingId:      c.TrackingID,
			Origin:          c.Origin,
			Destination:     c.Destination,
			ArrivalDeadline: c.ArrivalDeadline,
			TransportStatus: c.TransportStatus,
			RoutingStatus:   c.RoutingStatus,
			Misdirected:     c.Misdirected,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackCargo handles GET /api/v1/cargos/:trackingId - retrieves the tracking view.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	query, err := queries.NewTrackCargoQuery(trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Unknown cargo")
		}
		return internalError(ctx, "Failed to track cargo")
	}

	response := CargoTracking{
		TrackingId:            view.TrackingID,
		Origin:                view.Origin,
		Destination:           view.Destination,
		ArrivalDeadline:       view.ArrivalDeadline,
		TransportStatus:       view.TransportStatus,
		RoutingStatus:         view.RoutingStatus,
		Misdirected:           view.Misdirected,
		UnloadedAtDestination: view.UnloadedAtDestination,
		LastKnownLocation:     view.LastKnownLocation,
		CurrentVoyage:         view.CurrentVoyageNumber,
		Eta:                   view.ETA,
		HandlingEvents:        make([]HandlingActivity, len(view.HandlingEvents)),
	}

	if activity := view.NextExpectedActivity; activity != nil {
		response.NextExpectedActivity = &ExpectedActivity{
			EventType:    activity.EventType,
			Location:     activity.Location,
			VoyageNumber: activity.VoyageNumber,
		}
	}

	for i, event := range view.HandlingEvents {
		response.HandlingEvents[i] = HandlingActivity{
			EventType:      event.EventType,
			Location:       event.Location,
			VoyageNumber:   event.VoyageNumber,
			CompletionTime: event.CompletionTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RouteCandidates handles GET /api/v1/cargos/:trackingId/route-candidates -
// retrieves itineraries satisfying the cargo's route specification.
func (s *Server) RouteCandidates(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	trackedCargo, err := s.cargoRepository.Get(ctx.Request().Context(), trackingID)
	if err != nil {
		// Route inquiry for a nonexistent cargo yields an empty result set.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusOK, []RouteCandidate{})
		}
		return internalError(ctx, "Failed to load cargo")
	}

	itineraries, err := s.routingService.FetchRoutesForSpecification(
		ctx.Request().Context(), trackedCargo.RouteSpecification())
	if err != nil {
		return internalError(ctx, "Failed to fetch route candidates")
	}

	response := make([]RouteCandidate, len(itineraries))
	for i, itinerary := range itineraries {
		legs := itinerary.Legs()
		candidate := RouteCandidate{Legs: make([]Leg, len(legs))}
		for j, leg := range legs {
			candidate.Legs[j] = Leg{
				VoyageNumber:   leg.Voyage().Number().String(),
				LoadLocation:   leg.LoadLocation().UnLocode().String(),
				UnloadLocation: leg.UnloadLocation().UnLocode().String(),
				LoadTime:       leg.LoadTime(),
				UnloadTime:     leg.UnloadTime(),
			}
		}
		response[i] = candidate
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignItinerary handles POST /api/v1/cargos/:trackingId/itinerary -
// assigns a chosen itinerary to the cargo.
func (s *Server) AssignItinerary(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	var candidate RouteCandidate
	if err = ctx.Bind(&candidate); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itinerary, err := s.toItinerary(ctx, candidate)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return badRequest(ctx, "Itinerary references unknown location or voyage")
		}
		return badRequest(ctx, "Invalid itinerary: "+err.Error())
	}

	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, itinerary)
	if err != nil {
		return badRequest(ctx, "Invalid itinerary: "+err.Error())
	}

	if err = s.assignCargoToRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrNoCargoFound) {
			return notFound(ctx, "Unknown cargo")
		}
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return badRequest(ctx, "Invalid itinerary: "+err.Error())
		}
		return internalError(ctx, "Failed to assign itinerary")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDestination handles POST /api/v1/cargos/:trackingId/destination -
// redirects the cargo to a new destination.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	var newDestination NewDestination
	if err = ctx.Bind(&newDestination); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewUnLocode(newDestination.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination change: "+err.Error())
	}

	if err = s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrNoCargoFound) {
			return notFound(ctx, "Unknown cargo")
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Unknown location")
		}
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return badRequest(ctx, "Invalid destination change: "+err.Error())
		}
		return internalError(ctx, "Failed to change destination")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterHandlingEvent handles POST /api/v1/cargos/:trackingId/handling-events -
// records a handling report for the cargo.
func (s *Server) RegisterHandlingEvent(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID")
	}

	var report NewHandlingEvent
	if err = ctx.Bind(&report); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	eventType, err := handling.EventTypeFromString(report.EventType)
	if err != nil {
		return badRequest(ctx, "Invalid event type: "+report.EventType)
	}

	unLocode, err := kernel.NewUnLocode(report.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	var voyageNumber *voyage.Number
	if report.VoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*report.VoyageNumber)
		if numberErr != nil {
			return badRequest(ctx, "Invalid voyage number: "+numberErr.Error())
		}
		voyageNumber = &number
	}

	cmd, err := commands.NewRegisterHandlingEventCommand(
		trackingID, eventType, unLocode, voyageNumber, report.CompletionTime)
	if err != nil {
		return badRequest(ctx, "Invalid handling report: "+err.Error())
	}

	if err = s.registerHandlingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrNoCargoFound) {
			return notFound(ctx, "Unknown cargo")
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return badRequest(ctx, "Report references unknown location or voyage")
		}
		if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
			return badRequest(ctx, "Invalid handling report: "+err.Error())
		}
		return internalError(ctx, "Failed to register handling event")
	}

	return ctx.NoContent(http.StatusCreated)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// toItinerary resolves the resource representation of an itinerary into the
// domain model, looking up voyages and locations by their codes.
func (s *Server) toItinerary(ctx echo.Context, candidate RouteCandidate) (cargo.Itinerary, error) {
	reqCtx := ctx.Request().Context()

	legs := make([]cargo.Leg, 0, len(candidate.Legs))
	for _, legResource := range candidate.Legs {
		number, err := voyage.NewNumber(legResource.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		voy, err := s.voyageRepository.Get(reqCtx, number)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		loadUnLocode, err := kernel.NewUnLocode(legResource.LoadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		loadLocation, err := s.locationRepository.Get(reqCtx, loadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		unloadUnLocode, err := kernel.NewUnLocode(legResource.UnloadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		unloadLocation, err := s.locationRepository.Get(reqCtx, unloadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		leg, err := cargo.NewLeg(voy, loadLocation, unloadLocation, legResource.LoadTime, legResource.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
