package services

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

const (
	// DefaultMaxPasses bounds the 2-opt loop when no limit is configured.
	DefaultMaxPasses = 10000

	// improvementEpsilonKm is the smallest gain a 2-opt move must achieve.
	improvementEpsilonKm = 1e-6
)

// RouteOptimizer builds the default delivery route for all of a truck's orders,
// independent of trips and slots.
//
// The route is an open path starting at a fixed origin (the depot). It is
// constructed nearest-neighbour first, then improved with 2-opt until a full scan
// finds no reversal that shortens the path by more than 1e-6 km, or until
// MaxPasses scans have run. Results are deterministic for a given input order.
type RouteOptimizer struct {
	maxPasses int
}

// NewRouteOptimizer returns an optimizer that runs at most maxPasses 2-opt scans.
// Values below 1 select DefaultMaxPasses.
func NewRouteOptimizer(maxPasses int) RouteOptimizer {
	if maxPasses < 1 {
		maxPasses = DefaultMaxPasses
	}
	return RouteOptimizer{maxPasses: maxPasses}
}

func (r RouteOptimizer) MaxPasses() int {
	return r.maxPasses
}

// Optimize routes every order that has a coordinate; the rest are skipped.
//
// Parameters:
//   - origin: depot the truck leaves from
//   - orders: candidate orders in a stable input order, which breaks distance ties
//
// Returns:
//   - Route: stops with leg distances, the nearest-neighbour length, the final
//     length (never longer) and the number of 2-opt passes
func (r RouteOptimizer) Optimize(origin kernel.Coordinate, orders []*order.Order) Route {
	var (
		stops  []*order.Order
		points = []kernel.Coordinate{origin}
	)
	for _, o := range orders {
		if o == nil {
			continue
		}
		if c, ok := o.Coordinate(); ok {
			stops = append(stops, o)
			points = append(points, c)
		}
	}
	if len(stops) == 0 {
		return Route{}
	}

	dist := distanceMatrix(points)
	path := nearestNeighbour(dist, len(stops))
	construction := pathLength(dist, path)
	passes := r.twoOpt(dist, path)

	route := Route{
		Stops:          make([]Stop, 0, len(path)),
		ConstructionKm: construction,
		TotalKm:        pathLength(dist, path),
		Passes:         passes,
	}
	prev := 0
	for i, p := range path {
		route.Stops = append(route.Stops, Stop{Sequence: i, Order: stops[p-1], LegKm: dist[prev][p]})
		prev = p
	}
	return route
}

// distanceMatrix holds haversine distances; index 0 is the origin.
func distanceMatrix(points []kernel.Coordinate) [][]float64 {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			km := points[i].DistanceKm(points[j])
			d[i][j], d[j][i] = km, km
		}
	}
	return d
}

// nearestNeighbour returns point indices 1..n in visiting order. Ties go to the
// lower index, which is the earlier input order.
func nearestNeighbour(dist [][]float64, n int) []int {
	visited := make([]bool, n+1)
	path := make([]int, 0, n)
	current := 0

	for range n {
		best := -1
		for p := 1; p <= n; p++ {
			if visited[p] {
				continue
			}
			if best == -1 || dist[current][p] < dist[current][best] {
				best = p
			}
		}
		visited[best] = true
		path = append(path, best)
		current = best
	}
	return path
}

// twoOpt improves path in place and returns the number of scans performed.
// A scan stops at the first improving reversal and the next scan starts over.
func (r RouteOptimizer) twoOpt(dist [][]float64, path []int) int {
	n := len(path)
	if n < 2 {
		return 0
	}

	passes := 0
	for passes < r.maxPasses {
		passes++
		if !improveOnce(dist, path) {
			break
		}
	}
	return passes
}

func improveOnce(dist [][]float64, path []int) bool {
	n := len(path)
	for i := 0; i < n-1; i++ {
		pred := 0
		if i > 0 {
			pred = path[i-1]
		}
		for k := i + 1; k < n; k++ {
			before := dist[pred][path[i]]
			after := dist[pred][path[k]]
			if k < n-1 {
				succ := path[k+1]
				before += dist[path[k]][succ]
				after += dist[path[i]][succ]
			}
			if after-before < -improvementEpsilonKm {
				reverse(path, i, k)
				return true
			}
		}
	}
	return false
}

func reverse(path []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		path[i], path[k] = path[k], path[i]
	}
}

// pathLength is the open path length from the origin through path.
func pathLength(dist [][]float64, path []int) float64 {
	total := 0.0
	prev := 0
	for _, p := range path {
		total += dist[prev][p]
		prev = p
	}
	return total
}
