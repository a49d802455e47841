// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and echo bindings follow the layout of oapi-codegen's echo server
// output for openapi.yaml but are maintained by hand: edit them together with the
// document. openapi_test.go checks that routes and schemas stay in step.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for CourierStatus.
const (
	CourierStatusBusy CourierStatus = "busy"
	CourierStatusFree CourierStatus = "free"
)

// Defines values for NewCourierTransport.
const (
	Bicycle    NewCourierTransport = "bicycle"
	Car        NewCourierTransport = "car"
	Pedestrian NewCourierTransport = "pedestrian"
)

// Defines values for OrderStatus.
const (
	OrderStatusAssigned OrderStatus = "assigned"
	OrderStatusCreated  OrderStatus = "created"
)

// Courier defines model for Courier.
type Courier struct {
	Id        openapi_types.UUID `json:"id"`
	Location  Location           `json:"location"`
	Name      string             `json:"name"`
	Speed     int                `json:"speed"`
	Status    CourierStatus      `json:"status"`
	Transport string             `json:"transport"`
}

// CourierStatus defines model for Courier.Status.
type CourierStatus string

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location defines model for Location.
type Location struct {
	X int `json:"x" validate:"required,min=1,max=10"`
	Y int `json:"y" validate:"required,min=1,max=10"`
}

// NewCourier defines model for NewCourier.
type NewCourier struct {
	Location  *Location           `json:"location,omitempty"`
	Name      string              `json:"name" validate:"required,max=100"`
	Transport NewCourierTransport `json:"transport" validate:"required"`
}

// NewCourierTransport defines model for NewCourier.Transport.
type NewCourierTransport string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	OrderId *openapi_types.UUID `json:"orderId,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CourierId *openapi_types.UUID `json:"courierId"`
	Id        openapi_types.UUID  `json:"id"`
	Location  Location            `json:"location"`
	Status    OrderStatus         `json:"status"`
}

// OrderStatus defines model for Order.Status.
type OrderStatus string

// Transport defines model for Transport.
type Transport struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Speed int    `json:"speed"`
}

// CreateCourierJSONRequestBody defines body for CreateCourier for application/json ContentType.
type CreateCourierJSONRequestBody = NewCourier

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all couriers
	// (GET /couriers)
	GetCouriers(ctx echo.Context) error
	// Register a courier
	// (POST /couriers)
	CreateCourier(ctx echo.Context) error
	// Get a courier by id
	// (GET /couriers/{courierId})
	GetCourier(ctx echo.Context, courierId openapi_types.UUID) error
	// Create an order at a random location
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// List created and assigned orders
	// (GET /orders/active)
	GetOrders(ctx echo.Context) error
	// List the transport catalog
	// (GET /transports)
	GetTransports(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCouriers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCouriers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCouriers(ctx)
	return err
}

// CreateCourier converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCourier(ctx)
	return err
}

// GetCourier converts echo context to params.
func (w *ServerInterfaceWrapper) GetCourier(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCourier(ctx, courierId)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx)
	return err
}

// GetTransports converts echo context to params.
func (w *ServerInterfaceWrapper) GetTransports(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTransports(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/couriers", wrapper.GetCouriers)
	router.POST(baseURL+"/couriers", wrapper.CreateCourier)
	router.GET(baseURL+"/couriers/:courierId", wrapper.GetCourier)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/active", wrapper.GetOrders)
	router.GET(baseURL+"/transports", wrapper.GetTransports)

}
