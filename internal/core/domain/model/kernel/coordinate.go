package kernel

import (
	"errors"
	"fmt"
	"math"

	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

// ErrCoordinateIsNotConstructed is returned when a zero Coordinate is used.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate")

// Coordinate is a WGS84 position of a delivery address or a depot.
//
// A zero Coordinate is invalid. Orders that have not been geocoded carry no
// Coordinate at all rather than (0,0), which is a real point in the Gulf of Guinea.
//
// Example:
//
//	depot, err := kernel.NewCoordinate(52.1, 5.3)
//	if err != nil {
//	    return err
//	}
//	km := depot.DistanceKm(customer)
type Coordinate struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinate validates lat in [-90, 90] and lng in [-180, 180].
//
// Parameters:
//   - lat: latitude in decimal degrees
//   - lng: longitude in decimal degrees
//
// Returns:
//   - Coordinate: the validated position
//   - error: every out-of-range or NaN component, joined
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// MustNewCoordinate panics on invalid input. Intended for constants and tests.
func MustNewCoordinate(lat, lng float64) Coordinate {
	c, err := NewCoordinate(lat, lng)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lng() float64 {
	return c.lng
}

func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.lat == other.lat && c.lng == other.lng
}

// DistanceKm returns the great-circle distance to other using the haversine formula.
// The result is symmetric and zero for identical points.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1 := c.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - c.lat) * math.Pi / 180
	dLng := (other.lng - c.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push a just past 1 for antipodal points, making sqrt(1-a) NaN
	a = math.Min(1, math.Max(0, a))
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%.6f,%.6f)", c.lat, c.lng)
}

func (c *Coordinate) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	c.lat = lat
	return nil
}

func (c *Coordinate) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}
	c.lng = lng
	return nil
}
