package order

import (
	"fmt"

	"planner/internal/pkg/errs"
)

// Status is the planning state of an order.
//
//	Unplanned ──Plan──> Planned
//	    ^                  │
//	    └──────Unplan──────┘
//	 (last slot evicted)
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	// Unplanned orders hold no slots.
	Unplanned
	// Planned orders occupy at least one slot of exactly one trip.
	Planned
)

var statusNames = map[Status]string{
	Unknown:   "Unknown",
	Unplanned: "Unplanned",
	Planned:   "Planned",
}

// ParseStatus is the inverse of String for the valid statuses.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s != Unplanned && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateCanHaveTrip checks that Planned goes together with a trip and Unplanned without one.
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status for an order with a trip", s))
	}
	if !hasTrip && s == Planned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status for an order without a trip", s))
	}
	return nil
}

// Plan transitions Unplanned to Planned.
func (s Status) Plan() (Status, error) {
	if s != Unplanned {
		return Unknown, ErrOrderAlreadyPlaced
	}
	return Planned, nil
}

// Unplan transitions Planned back to Unplanned.
func (s Status) Unplan() (Status, error) {
	if s != Planned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to unplan", s))
	}
	return Unplanned, nil
}
