package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"planner/internal/adapters/in/xlsx"
	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxImportSize bounds an uploaded order workbook.
const maxImportSize = 10 << 20

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// GetTrucks handles GET /api/v1/trucks - the planning board of one date.
func (s *Server) GetTrucks(ctx echo.Context, params servers.GetTrucksParams) error {
	query, err := queries.NewGetTrucksForDateQuery(params.Date.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	trucks, err := s.handlers.TrucksForDate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Truck, len(trucks))
	for i, t := range trucks {
		response[i] = servers.Truck{
			Id:            t.ID.Google(),
			Name:          t.Name,
			Date:          openapi_types.Date{Time: t.Date},
			Trips:         t.Trips,
			Orders:        t.Orders,
			PlannedOrders: t.PlannedOrders,
			UsedSlots:     t.UsedSlots,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTruck handles POST /api/v1/trucks - creates a truck with its first trip.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var body servers.NewTruck
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	truckID := kernel.NewUUID()
	cmd, err := commands.NewCreateTruckCommand(truckID, body.Name, body.Date.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateTruck.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: truckID.Google()})
}

// AddTrip handles POST /api/v1/trucks/{truckId}/trips - appends a trip.
func (s *Server) AddTrip(ctx echo.Context, truckId servers.TruckId) error {
	truckID, err := kernel.UUIDFromGoogle(truckId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddTripCommand(truckID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.AddTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Trip{Id: res.TripID.Google(), Sequence: res.Sequence})
}

// CreateOrder handles POST /api/v1/orders - registers an order on a truck.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	truckID, err := kernel.UUIDFromGoogle(body.TruckId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var coordinate *kernel.Coordinate
	if body.Location != nil {
		c, err := kernel.NewCoordinate(body.Location.Lat, body.Location.Lng)
		if err != nil {
			return s.fail(ctx, err)
		}
		coordinate = &c
	}

	customer := ""
	if body.Customer != nil {
		customer = *body.Customer
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, truckID, body.Code, customer, body.Pallets, coordinate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: orderID.Google()})
}

// ImportOrders handles POST /api/v1/trucks/{truckId}/orders/import - reads an XLSX
// order export and registers every row on the truck.
func (s *Server) ImportOrders(ctx echo.Context, truckId servers.TruckId) error {
	truckID, err := kernel.UUIDFromGoogle(truckId)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := xlsx.ReadOrders(io.LimitReader(ctx.Request().Body, maxImportSize))
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid order workbook: %s", err))
	}

	cmd, err := commands.NewImportOrdersCommand(truckID, rows)
	if err != nil {
		return s.fail(ctx, err)
	}

	ids, err := s.handlers.ImportOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ImportResult{OrderIds: googleIDs(ids)})
}

// PlaceOrder handles POST /api/v1/trucks/{truckId}/trips/{tripId}/placements.
func (s *Server) PlaceOrder(ctx echo.Context, truckId servers.TruckId, tripId servers.TripId) error {
	var body servers.NewPlacement
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := parseIDs(truckId, tripId, body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	count := 0
	if body.Count != nil {
		count = *body.Count
	}

	cmd, err := commands.NewPlaceOrderCommand(ids[0], ids[1], ids[2], body.StartIndex, count)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Placement{Slots: res.Slots, Persisted: res.Persisted})
}

// GetCapacity handles GET /api/v1/trucks/{truckId}/trips/{tripId}/capacity.
func (s *Server) GetCapacity(
	ctx echo.Context,
	truckId servers.TruckId,
	tripId servers.TripId,
	params servers.GetCapacityParams,
) error {
	ids, err := parseIDs(truckId, tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetMaxPlaceableQuery(ids[0], ids[1], params.Start)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.MaxPlaceable.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Capacity{StartIndex: res.StartIndex, Max: res.Max})
}

// SetSlotShape handles PUT /api/v1/trucks/{truckId}/trips/{tripId}/slots/{slotIndex}/shape.
func (s *Server) SetSlotShape(
	ctx echo.Context,
	truckId servers.TruckId,
	tripId servers.TripId,
	slotIndex servers.SlotIndex,
) error {
	var body servers.NewShape
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := parseIDs(truckId, tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	shape, err := truck.ParseShape(string(body.Shape))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetSlotShapeCommand(ids[0], ids[1], slotIndex, shape)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.SetSlotShape.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Mutation{Persisted: res.Persisted})
}

// RemoveTrip handles DELETE /api/v1/trucks/{truckId}/trips/{tripId}.
func (s *Server) RemoveTrip(ctx echo.Context, truckId servers.TruckId, tripId servers.TripId) error {
	ids, err := parseIDs(truckId, tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveTripCommand(ids[0], ids[1])
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err := s.handlers.RemoveTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EvictSlot handles DELETE /api/v1/trucks/{truckId}/trips/{tripId}/slots/{slotIndex}.
func (s *Server) EvictSlot(
	ctx echo.Context,
	truckId servers.TruckId,
	tripId servers.TripId,
	slotIndex servers.SlotIndex,
) error {
	ids, err := parseIDs(truckId, tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEvictSlotCommand(ids[0], ids[1], slotIndex)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.EvictSlot.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Eviction{
		OrderId:   res.OrderID.Google(),
		Unplanned: res.Unplanned,
		Persisted: res.Persisted,
	})
}

// GetTripRoute handles GET /api/v1/trucks/{truckId}/trips/{tripId}/route.
func (s *Server) GetTripRoute(ctx echo.Context, truckId servers.TruckId, tripId servers.TripId) error {
	ids, err := parseIDs(truckId, tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetTripRouteQuery(ids[0], ids[1])
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.TripRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	stops := make([]servers.TripRouteStop, len(res.Stops))
	for i, stop := range res.Stops {
		stops[i] = servers.TripRouteStop{
			Sequence:    stop.Sequence,
			OrderId:     stop.OrderID.Google(),
			Code:        stop.Code,
			Customer:    stop.Customer,
			Slots:       stop.Slots,
			DeepestSlot: stop.DeepestSlot,
		}
	}

	return ctx.JSON(http.StatusOK, servers.TripRoute{
		TripId:   res.TripID.Google(),
		Sequence: res.Sequence,
		Stops:    stops,
	})
}

// GetTruckRoute handles GET /api/v1/trucks/{truckId}/route - the optimized delivery route.
func (s *Server) GetTruckRoute(ctx echo.Context, truckId servers.TruckId) error {
	truckID, err := kernel.UUIDFromGoogle(truckId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetTruckRouteQuery(truckID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.TruckRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	stops := make([]servers.TruckRouteStop, len(res.Stops))
	for i, stop := range res.Stops {
		stops[i] = servers.TruckRouteStop{
			Sequence: stop.Sequence,
			OrderId:  stop.OrderID.Google(),
			Code:     stop.Code,
			Customer: stop.Customer,
			Location: coordinate(stop.Coordinate),
			LegKm:    stop.LegKm,
		}
	}

	return ctx.JSON(http.StatusOK, servers.TruckRoute{
		TruckId:        res.TruckID.Google(),
		Origin:         coordinate(res.Origin),
		Stops:          stops,
		Skipped:        googleIDs(res.Skipped),
		ConstructionKm: res.ConstructionKm,
		TotalKm:        res.TotalKm,
		Passes:         res.Passes,
		Cached:         res.Cached,
	})
}

// GetLoadingSheet handles GET /api/v1/trucks/{truckId}/loading-sheet - a PDF download.
func (s *Server) GetLoadingSheet(ctx echo.Context, truckId servers.TruckId) error {
	truckID, err := kernel.UUIDFromGoogle(truckId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetLoadingSheetQuery(truckID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.LoadingSheet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))
	return ctx.Blob(http.StatusOK, "application/pdf", res.Content)
}

func parseIDs(ids ...uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		u, err := kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

func googleIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		out[i] = id.Google()
	}
	return out
}

func coordinate(c kernel.Coordinate) servers.Coordinate {
	return servers.Coordinate{Lat: c.Lat(), Lng: c.Lng()}
}
