package truck

import (
	"fmt"
	"strings"

	"planner/internal/pkg/errs"
)

// Shape is the footprint of a slot.
type Shape int

const (
	UnknownShape Shape = iota
	// Square holds a pallet placed crosswise. Default for new trips.
	Square
	// Rect holds a pallet placed lengthwise and is only allowed on row edges.
	Rect
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Rect:
		return "rect"
	default:
		return "unknown"
	}
}

func (s Shape) Validate() error {
	if s != Square && s != Rect {
		return errs.NewValueIsInvalidErrorWithCause("shape", fmt.Errorf("%d is not a valid shape", s))
	}
	return nil
}

// ParseShape accepts "square" and "rect" in any case.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return Square, nil
	case "rect":
		return Rect, nil
	default:
		return UnknownShape, errs.NewValueIsInvalidErrorWithCause("shape", fmt.Errorf("%q is not a valid shape", s))
	}
}
