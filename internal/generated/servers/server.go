// Package servers provides the HTTP types, the echo server interface and its
// parameter binding for the planner API described in api/openapi.yml.
//
// server.go is regenerated from the contract with go generate ./api; spec.go
// is maintained by hand.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for NewShapeShape.
const (
	Rect   NewShapeShape = "rect"
	Square NewShapeShape = "square"
)

// Capacity defines model for Capacity.
type Capacity struct {
	Max        int `json:"max"`
	StartIndex int `json:"startIndex"`
}

// Coordinate defines model for Coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreatedResource defines model for CreatedResource.
type CreatedResource struct {
	Id openapi_types.UUID `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Eviction defines model for Eviction.
type Eviction struct {
	OrderId   openapi_types.UUID `json:"orderId"`
	Persisted bool               `json:"persisted"`
	Unplanned bool               `json:"unplanned"`
}

// ImportResult defines model for ImportResult.
type ImportResult struct {
	OrderIds []openapi_types.UUID `json:"orderIds"`
}

// Mutation defines model for Mutation.
type Mutation struct {
	Persisted bool `json:"persisted"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Code     string             `json:"code"`
	Customer *string            `json:"customer,omitempty"`
	Location *Coordinate        `json:"location,omitempty"`
	Pallets  int                `json:"pallets"`
	TruckId  openapi_types.UUID `json:"truckId"`
}

// NewPlacement defines model for NewPlacement.
type NewPlacement struct {
	// Count Pallets to place. Zero or absent places the order's requested count.
	Count      *int               `json:"count,omitempty"`
	OrderId    openapi_types.UUID `json:"orderId"`
	StartIndex int                `json:"startIndex"`
}

// NewShape defines model for NewShape.
type NewShape struct {
	Shape NewShapeShape `json:"shape"`
}

// NewShapeShape defines model for NewShape.Shape.
type NewShapeShape string

// NewTruck defines model for NewTruck.
type NewTruck struct {
	Date openapi_types.Date `json:"date"`
	Name string             `json:"name"`
}

// Placement defines model for Placement.
type Placement struct {
	Persisted bool  `json:"persisted"`
	Slots     []int `json:"slots"`
}

// Trip defines model for Trip.
type Trip struct {
	Id       openapi_types.UUID `json:"id"`
	Sequence int                `json:"sequence"`
}

// TripRoute defines model for TripRoute.
type TripRoute struct {
	Sequence int                `json:"sequence"`
	Stops    []TripRouteStop    `json:"stops"`
	TripId   openapi_types.UUID `json:"tripId"`
}

// TripRouteStop defines model for TripRouteStop.
type TripRouteStop struct {
	Code        string             `json:"code"`
	Customer    string             `json:"customer"`
	DeepestSlot int                `json:"deepestSlot"`
	OrderId     openapi_types.UUID `json:"orderId"`
	Sequence    int                `json:"sequence"`
	Slots       []int              `json:"slots"`
}

// Truck defines model for Truck.
type Truck struct {
	Date          openapi_types.Date `json:"date"`
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	Orders        int                `json:"orders"`
	PlannedOrders int                `json:"plannedOrders"`
	Trips         int                `json:"trips"`
	UsedSlots     int                `json:"usedSlots"`
}

// TruckRoute defines model for TruckRoute.
type TruckRoute struct {
	Cached         bool                 `json:"cached"`
	ConstructionKm float64              `json:"constructionKm"`
	Origin         Coordinate           `json:"origin"`
	Passes         int                  `json:"passes"`
	Skipped        []openapi_types.UUID `json:"skipped"`
	Stops          []TruckRouteStop     `json:"stops"`
	TotalKm        float64              `json:"totalKm"`
	TruckId        openapi_types.UUID   `json:"truckId"`
}

// TruckRouteStop defines model for TruckRouteStop.
type TruckRouteStop struct {
	Code     string             `json:"code"`
	Customer string             `json:"customer"`
	LegKm    float64            `json:"legKm"`
	Location Coordinate         `json:"location"`
	OrderId  openapi_types.UUID `json:"orderId"`
	Sequence int                `json:"sequence"`
}

// SlotIndex defines model for SlotIndex.
type SlotIndex = int

// TripId defines model for TripId.
type TripId = openapi_types.UUID

// TruckId defines model for TruckId.
type TruckId = openapi_types.UUID

// GetTrucksParams defines parameters for GetTrucks.
type GetTrucksParams struct {
	Date openapi_types.Date `form:"date" json:"date"`
}

// GetCapacityParams defines parameters for GetCapacity.
type GetCapacityParams struct {
	Start int `form:"start" json:"start"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CreateTruckJSONRequestBody defines body for CreateTruck for application/json ContentType.
type CreateTruckJSONRequestBody = NewTruck

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewPlacement

// SetSlotShapeJSONRequestBody defines body for SetSlotShape for application/json ContentType.
type SetSlotShapeJSONRequestBody = NewShape

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register an order on a truck
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Planning board for one delivery date
	// (GET /api/v1/trucks)
	GetTrucks(ctx echo.Context, params GetTrucksParams) error
	// Create a truck with its first trip
	// (POST /api/v1/trucks)
	CreateTruck(ctx echo.Context) error
	// Printable loading sheet
	// (GET /api/v1/trucks/{truckId}/loading-sheet)
	GetLoadingSheet(ctx echo.Context, truckId TruckId) error
	// Import orders from an XLSX export
	// (POST /api/v1/trucks/{truckId}/orders/import)
	ImportOrders(ctx echo.Context, truckId TruckId) error
	// Optimized delivery route over all of a truck's orders
	// (GET /api/v1/trucks/{truckId}/route)
	GetTruckRoute(ctx echo.Context, truckId TruckId) error
	// Append a trip to a truck
	// (POST /api/v1/trucks/{truckId}/trips)
	AddTrip(ctx echo.Context, truckId TruckId) error
	// Remove an empty trip and renumber the trips after it
	// (DELETE /api/v1/trucks/{truckId}/trips/{tripId})
	RemoveTrip(ctx echo.Context, truckId TruckId, tripId TripId) error
	// Largest pallet count placeable from a start slot
	// (GET /api/v1/trucks/{truckId}/trips/{tripId}/capacity)
	GetCapacity(ctx echo.Context, truckId TruckId, tripId TripId, params GetCapacityParams) error
	// Place an order's pallets from a start slot
	// (POST /api/v1/trucks/{truckId}/trips/{tripId}/placements)
	PlaceOrder(ctx echo.Context, truckId TruckId, tripId TripId) error
	// Unload sequence of one trip, deepest pallets first
	// (GET /api/v1/trucks/{truckId}/trips/{tripId}/route)
	GetTripRoute(ctx echo.Context, truckId TruckId, tripId TripId) error
	// Remove the pallet in a slot
	// (DELETE /api/v1/trucks/{truckId}/trips/{tripId}/slots/{slotIndex})
	EvictSlot(ctx echo.Context, truckId TruckId, tripId TripId, slotIndex SlotIndex) error
	// Change the footprint of a slot
	// (PUT /api/v1/trucks/{truckId}/trips/{tripId}/slots/{slotIndex}/shape)
	SetSlotShape(ctx echo.Context, truckId TruckId, tripId TripId, slotIndex SlotIndex) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetTrucks converts echo context to params.
func (w *ServerInterfaceWrapper) GetTrucks(ctx echo.Context) error {
	var err error

	var params GetTrucksParams

	err = runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	return w.Handler.GetTrucks(ctx, params)
}

// CreateTruck converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTruck(ctx echo.Context) error {
	return w.Handler.CreateTruck(ctx)
}

// GetLoadingSheet converts echo context to params.
func (w *ServerInterfaceWrapper) GetLoadingSheet(ctx echo.Context) error {
	truckId, err := bindTruckId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetLoadingSheet(ctx, truckId)
}

// ImportOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ImportOrders(ctx echo.Context) error {
	truckId, err := bindTruckId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ImportOrders(ctx, truckId)
}

// GetTruckRoute converts echo context to params.
func (w *ServerInterfaceWrapper) GetTruckRoute(ctx echo.Context) error {
	truckId, err := bindTruckId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTruckRoute(ctx, truckId)
}

// AddTrip converts echo context to params.
func (w *ServerInterfaceWrapper) AddTrip(ctx echo.Context) error {
	truckId, err := bindTruckId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddTrip(ctx, truckId)
}

// RemoveTrip converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveTrip(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveTrip(ctx, truckId, tripId)
}

// GetCapacity converts echo context to params.
func (w *ServerInterfaceWrapper) GetCapacity(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}

	var params GetCapacityParams

	err = runtime.BindQueryParameter("form", true, true, "start", ctx.QueryParams(), &params.Start)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter start: %s", err))
	}

	return w.Handler.GetCapacity(ctx, truckId, tripId, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, truckId, tripId)
}

// GetTripRoute converts echo context to params.
func (w *ServerInterfaceWrapper) GetTripRoute(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTripRoute(ctx, truckId, tripId)
}

// EvictSlot converts echo context to params.
func (w *ServerInterfaceWrapper) EvictSlot(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}
	slotIndex, err := bindSlotIndex(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EvictSlot(ctx, truckId, tripId, slotIndex)
}

// SetSlotShape converts echo context to params.
func (w *ServerInterfaceWrapper) SetSlotShape(ctx echo.Context) error {
	truckId, tripId, err := bindTripPath(ctx)
	if err != nil {
		return err
	}
	slotIndex, err := bindSlotIndex(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetSlotShape(ctx, truckId, tripId, slotIndex)
}

func bindTruckId(ctx echo.Context) (TruckId, error) {
	var truckId TruckId
	err := runtime.BindStyledParameterWithOptions("simple", "truckId", ctx.Param("truckId"), &truckId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return truckId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter truckId: %s", err))
	}
	return truckId, nil
}

func bindTripPath(ctx echo.Context) (TruckId, TripId, error) {
	truckId, err := bindTruckId(ctx)
	if err != nil {
		return truckId, TripId{}, err
	}

	var tripId TripId
	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return truckId, tripId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}
	return truckId, tripId, nil
}

func bindSlotIndex(ctx echo.Context) (SlotIndex, error) {
	var slotIndex SlotIndex
	err := runtime.BindStyledParameterWithOptions("simple", "slotIndex", ctx.Param("slotIndex"), &slotIndex,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return slotIndex, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter slotIndex: %s", err))
	}
	return slotIndex, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
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

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/trucks", wrapper.GetTrucks)
	router.POST(baseURL+"/api/v1/trucks", wrapper.CreateTruck)
	router.GET(baseURL+"/api/v1/trucks/:truckId/loading-sheet", wrapper.GetLoadingSheet)
	router.POST(baseURL+"/api/v1/trucks/:truckId/orders/import", wrapper.ImportOrders)
	router.GET(baseURL+"/api/v1/trucks/:truckId/route", wrapper.GetTruckRoute)
	router.POST(baseURL+"/api/v1/trucks/:truckId/trips", wrapper.AddTrip)
	router.DELETE(baseURL+"/api/v1/trucks/:truckId/trips/:tripId", wrapper.RemoveTrip)
	router.GET(baseURL+"/api/v1/trucks/:truckId/trips/:tripId/capacity", wrapper.GetCapacity)
	router.POST(baseURL+"/api/v1/trucks/:truckId/trips/:tripId/placements", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/trucks/:truckId/trips/:tripId/route", wrapper.GetTripRoute)
	router.DELETE(baseURL+"/api/v1/trucks/:truckId/trips/:tripId/slots/:slotIndex", wrapper.EvictSlot)
	router.PUT(baseURL+"/api/v1/trucks/:truckId/trips/:tripId/slots/:slotIndex/shape", wrapper.SetSlotShape)
}
