// Package http exposes the dispatch use cases over the REST API described by
// internal/generated/servers/openapi.yaml.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateCourierHandler is satisfied by *commands.CreateCourierCommandHandler.
type CreateCourierHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCourierCommand) (kernel.UUID, error)
}

// CreateOrderHandler is satisfied by *commands.CreateOrderCommandHandler.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

// GetAllCouriersHandler is satisfied by queries.GetAllCouriersQueryHandler.
type GetAllCouriersHandler interface {
	Handle(ctx context.Context, query queries.GetAllCouriersQuery) ([]queries.CourierView, error)
}

// GetCourierHandler is satisfied by queries.GetCourierQueryHandler.
type GetCourierHandler interface {
	Handle(ctx context.Context, query queries.GetCourierQuery) (queries.CourierView, error)
}

// GetUncompletedOrdersHandler is satisfied by queries.GetUncompletedOrdersQueryHandler.
type GetUncompletedOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetUncompletedOrdersQuery) ([]queries.OrderView, error)
}

// ListTransportsHandler is satisfied by queries.ListTransportsQueryHandler.
type ListTransportsHandler interface {
	Handle(query queries.ListTransportsQuery) ([]queries.TransportView, error)
}

// Handlers groups the use cases the API serves.
type Handlers struct {
	CreateCourier        CreateCourierHandler
	CreateOrder          CreateOrderHandler
	GetAllCouriers       GetAllCouriersHandler
	GetCourier           GetCourierHandler
	GetUncompletedOrders GetUncompletedOrdersHandler
	ListTransports       ListTransportsHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	handlers Handlers
	rnd      kernel.RandomSource
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer builds the API. rnd places couriers registered without a location.
func NewServer(handlers Handlers, rnd kernel.RandomSource, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		rnd:      rnd,
		logger:   logger.With("component", "http_server"),
	}
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Courier, 0, len(couriers))
	for _, c := range couriers {
		response = append(response, courierResponse(c))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers. The courier starts at the requested
// location, or at a random one when the body has none.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	location, err := s.courierLocation(body.Location)
	if err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, string(body.Transport), location)
	if err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	id, err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Value()})
}

// GetCourier handles GET /api/v1/couriers/{courierId}.
func (s *Server) GetCourier(ctx echo.Context, courierId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(courierId)
	if err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetCourierQuery(id)
	if err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := s.handlers.GetCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierResponse(view))
}

// CreateOrder handles POST /api/v1/orders. The body is optional; without an orderId
// the server generates one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return s.respondMessage(ctx, http.StatusBadRequest, "invalid request body")
		}
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		parsed, err := kernel.UUIDFrom(*body.OrderId)
		if err != nil {
			return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
		}
		orderID = parsed
	}

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return s.respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Value()})
}

// GetOrders handles GET /api/v1/orders/active.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetUncompletedOrders.Handle(ctx.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		item := servers.Order{
			Id:       o.ID.Value(),
			Location: locationResponse(o.Location),
			Status:   servers.OrderStatus(o.Status),
		}
		if o.CourierID != nil {
			courierID := o.CourierID.Value()
			item.CourierId = &courierID
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransports handles GET /api/v1/transports.
func (s *Server) GetTransports(ctx echo.Context) error {
	transports, err := s.handlers.ListTransports.Handle(queries.NewListTransportsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Transport, 0, len(transports))
	for _, t := range transports {
		response = append(response, servers.Transport{Id: t.ID, Name: t.Name, Speed: t.Speed})
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) courierLocation(requested *servers.Location) (kernel.Location, error) {
	if requested == nil {
		return kernel.NewRandomLocation(s.rnd)
	}
	return kernel.NewLocation(kernel.Coordinate(requested.X), kernel.Coordinate(requested.Y))
}

func courierResponse(view queries.CourierView) servers.Courier {
	return servers.Courier{
		Id:        view.ID.Value(),
		Name:      view.Name,
		Transport: view.Transport,
		Speed:     view.Speed,
		Location:  locationResponse(view.Location),
		Status:    servers.CourierStatus(view.Status),
	}
}

func locationResponse(location kernel.Location) servers.Location {
	return servers.Location{X: int(location.X()), Y: int(location.Y())}
}
