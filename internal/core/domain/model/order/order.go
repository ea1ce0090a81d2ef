package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPlaced is returned when placing an order that already occupies slots.
	ErrOrderAlreadyPlaced = errors.New("order is already placed")

	// ErrSlotNotHeld is returned when releasing a slot the order does not occupy.
	ErrSlotNotHeld = errors.New("order does not occupy the slot")
)

// Order is a customer delivery of one or more pallets on a given truck.
//
// Invariants:
//   - id and truckID are valid; code is not blank; pallets is positive
//   - coordinate is either absent or valid; orders without one are not routable
//   - slots is empty if and only if tripID is nil and status is Unplanned
//   - slots is sorted ascending and holds no duplicates
type Order struct {
	id         kernel.UUID
	truckID    kernel.UUID
	code       string
	customer   string
	pallets    int
	coordinate *kernel.Coordinate
	status     Status
	tripID     *kernel.UUID
	slots      []int

	isConstructed bool
}

// NewOrder creates an Unplanned order.
//
// Parameters:
//   - id: order identifier
//   - truckID: truck the order is scheduled on
//   - code: ERP order code, e.g. "SO-10042"
//   - customer: customer name shown on the loading sheet
//   - pallets: number of pallets requested, used as the default placement count
//   - coordinate: delivery position, or nil when the address is not geocoded
//
// Returns:
//   - *Order: the new order
//   - error: every validation failure, joined
//
// Example:
//
//	loc := kernel.MustNewCoordinate(52.09, 5.12)
//	o, err := order.NewOrder(kernel.NewUUID(), truckID, "SO-10042", "Bakkerij Jansen", 3, &loc)
func NewOrder(
	id kernel.UUID,
	truckID kernel.UUID,
	code string,
	customer string,
	pallets int,
	coordinate *kernel.Coordinate,
) (*Order, error) {
	o := &Order{
		status:        Unplanned,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTruckID(truckID),
		o.setCode(code),
		o.setPallets(pallets),
		o.setCoordinate(coordinate),
	); err != nil {
		return nil, err
	}
	o.customer = strings.TrimSpace(customer)

	return o, nil
}

// RestoreOrder rebuilds an order from persistence and re-checks the placement invariant.
func RestoreOrder(
	id kernel.UUID,
	truckID kernel.UUID,
	code string,
	customer string,
	pallets int,
	coordinate *kernel.Coordinate,
	status Status,
	tripID *kernel.UUID,
	slots []int,
) (*Order, error) {
	o, err := NewOrder(id, truckID, code, customer, pallets, coordinate)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), status.ValidateCanHaveTrip(tripID != nil)); err != nil {
		return nil, err
	}
	if tripID != nil {
		if err = tripID.Validate(); err != nil {
			return nil, err
		}
		if err = validateSlots(slots); err != nil {
			return nil, err
		}
		t := *tripID
		o.tripID = &t
		o.slots = slices.Clone(slots)
	} else if len(slots) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("slots", errors.New("unplanned order cannot hold slots"))
	}

	o.status = status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TruckID() kernel.UUID {
	return o.truckID
}

func (o *Order) Code() string {
	return o.code
}

func (o *Order) Customer() string {
	return o.customer
}

// Pallets is the requested pallet count.
func (o *Order) Pallets() int {
	return o.pallets
}

// Coordinate returns the delivery position and whether the order has one.
func (o *Order) Coordinate() (kernel.Coordinate, bool) {
	if o.coordinate == nil {
		return kernel.Coordinate{}, false
	}
	return *o.coordinate, true
}

func (o *Order) Status() Status {
	return o.status
}

// TripID returns nil for unplanned orders.
func (o *Order) TripID() *kernel.UUID {
	if o.tripID == nil {
		return nil
	}
	id := *o.tripID
	return &id
}

// Slots returns a copy of the occupied slot indices in ascending order.
func (o *Order) Slots() []int {
	return slices.Clone(o.slots)
}

func (o *Order) IsPlaced() bool {
	return len(o.slots) > 0
}

// IsPlacedIn reports whether the order occupies slots of the given trip.
func (o *Order) IsPlacedIn(tripID kernel.UUID) bool {
	return o.tripID != nil && o.tripID.IsEqual(tripID)
}

// DeepestSlot returns the highest occupied index. ok is false for unplanned orders.
func (o *Order) DeepestSlot() (index int, ok bool) {
	if len(o.slots) == 0 {
		return 0, false
	}
	return o.slots[len(o.slots)-1], true
}

// Place records a completed placement. The caller is responsible for slot geometry;
// the order only checks that it was unplanned and that the run is well formed.
//
// Parameters:
//   - tripID: trip that now holds the pallets
//   - indices: accepted slot indices in scan order, non-empty and strictly ascending
//
// Returns:
//   - error: ErrOrderAlreadyPlaced, or a validation error for tripID/indices
func (o *Order) Place(tripID kernel.UUID, indices []int) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if err := validateSlots(indices); err != nil {
		return err
	}

	newStatus, err := o.status.Plan()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = &tripID
	o.slots = slices.Clone(indices)
	return nil
}

// ReleaseSlot removes one index. Releasing the last one clears the trip and
// returns the order to Unplanned.
func (o *Order) ReleaseSlot(index int) error {
	pos := slices.Index(o.slots, index)
	if pos < 0 {
		return fmt.Errorf("%w: %d", ErrSlotNotHeld, index)
	}

	o.slots = slices.Delete(o.slots, pos, pos+1)
	if len(o.slots) > 0 {
		return nil
	}

	newStatus, err := o.status.Unplan()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.tripID = nil
	o.slots = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckID", err)
	}
	o.truckID = id
	return nil
}

func (o *Order) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setPallets(pallets int) error {
	if pallets <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pallets", fmt.Errorf("%d is not greater than 0", pallets))
	}
	o.pallets = pallets
	return nil
}

func (o *Order) setCoordinate(c *kernel.Coordinate) error {
	if c == nil {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	v := *c
	o.coordinate = &v
	return nil
}

func validateSlots(indices []int) error {
	if len(indices) == 0 {
		return errs.NewValueIsRequiredError("slots")
	}
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return errs.NewValueIsInvalidErrorWithCause(
				"slots", fmt.Errorf("%v is not strictly ascending", indices))
		}
	}
	if indices[0] < 0 {
		return errs.NewValueIsInvalidErrorWithCause("slots", fmt.Errorf("%d is negative", indices[0]))
	}
	return nil
}
