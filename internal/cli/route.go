package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// routeFile is the input of the route command.
type routeFile struct {
	Depot     *point       `yaml:"depot"`
	MaxPasses int          `yaml:"max_passes"`
	Orders    []routeOrder `yaml:"orders"`
}

type point struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type routeOrder struct {
	Code     string   `yaml:"code"`
	Customer string   `yaml:"customer"`
	Pallets  int      `yaml:"pallets"`
	Lat      *float64 `yaml:"lat"`
	Lng      *float64 `yaml:"lng"`
}

// routeResult is the yaml output of the route command.
type routeResult struct {
	TotalKm        float64     `yaml:"total_km"`
	ConstructionKm float64     `yaml:"construction_km"`
	Passes         int         `yaml:"passes"`
	Stops          []routeStop `yaml:"stops"`
	Skipped        []string    `yaml:"skipped,omitempty"`
}

type routeStop struct {
	Sequence int     `yaml:"sequence"`
	Code     string  `yaml:"code"`
	Customer string  `yaml:"customer,omitempty"`
	Pallets  int     `yaml:"pallets"`
	LegKm    float64 `yaml:"leg_km"`
}

func (c *CLI) routeCommand() *cobra.Command {
	var (
		file      string
		format    string
		depotLat  float64
		depotLng  float64
		maxPasses int
	)

	cmd := &cobra.Command{
		Use:   "route -f orders.yaml",
		Short: "Sequence orders into the shortest delivery route from the depot",
		Long: `Sequence orders offline with nearest neighbour construction followed by 2-opt.

Orders without a location are listed as skipped. The depot comes from the file,
or from --depot-lat/--depot-lng when the file has none.`,
		Example: `  planctl route -f orders.yaml
  planctl route -f orders.yaml -o yaml --max-passes 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatTable && format != formatYAML {
				return fmt.Errorf("unknown output format %q", format)
			}

			in, err := readRouteFile(file)
			if err != nil {
				return err
			}

			origin, err := in.origin(depotLat, depotLng)
			if err != nil {
				return err
			}
			orders, err := in.domainOrders()
			if err != nil {
				return err
			}

			passes := in.MaxPasses
			if cmd.Flags().Changed("max-passes") {
				passes = maxPasses
			}
			optimizer := services.NewRouteOptimizer(passes)
			route := optimizer.Optimize(origin, orders)
			c.Logger.Debug("route optimized",
				"orders", len(orders), "stops", len(route.Stops), "passes", route.Passes)

			result := newRouteResult(route, orders)
			if format == formatYAML {
				return writeRouteYAML(c.out, result)
			}
			return writeRouteTable(c.out, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "orders file (yaml)")
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "output format: table or yaml")
	cmd.Flags().Float64Var(&depotLat, "depot-lat", 52.1, "depot latitude when the file has no depot")
	cmd.Flags().Float64Var(&depotLng, "depot-lng", 5.3, "depot longitude when the file has no depot")
	cmd.Flags().IntVar(&maxPasses, "max-passes", 0, "2-opt pass limit, overrides the file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readRouteFile(path string) (routeFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return routeFile{}, err
	}
	defer f.Close()
	return decodeRouteFile(f)
}

func decodeRouteFile(r io.Reader) (routeFile, error) {
	var in routeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return routeFile{}, errs.NewValueIsRequiredError("orders")
		}
		return routeFile{}, fmt.Errorf("parse orders file: %w", err)
	}
	if len(in.Orders) == 0 {
		return routeFile{}, errs.NewValueIsRequiredError("orders")
	}
	return in, nil
}

func (f routeFile) origin(defaultLat, defaultLng float64) (kernel.Coordinate, error) {
	if f.Depot != nil {
		return kernel.NewCoordinate(f.Depot.Lat, f.Depot.Lng)
	}
	return kernel.NewCoordinate(defaultLat, defaultLng)
}

// domainOrders builds the orders on a throwaway truck id; the optimizer only
// reads codes and coordinates.
func (f routeFile) domainOrders() ([]*order.Order, error) {
	truckID := kernel.NewUUID()
	orders := make([]*order.Order, 0, len(f.Orders))
	var rowErrs []error

	for i, row := range f.Orders {
		var loc *kernel.Coordinate
		switch {
		case row.Lat != nil && row.Lng != nil:
			c, err := kernel.NewCoordinate(*row.Lat, *row.Lng)
			if err != nil {
				rowErrs = append(rowErrs, fmt.Errorf("order %d: %w", i+1, err))
				continue
			}
			loc = &c
		case row.Lat != nil || row.Lng != nil:
			rowErrs = append(rowErrs, fmt.Errorf("order %d: lat and lng must be given together: %w", i+1, errs.ErrValueIsInvalid))
			continue
		}

		pallets := row.Pallets
		if pallets == 0 {
			pallets = 1
		}
		o, err := order.NewOrder(kernel.NewUUID(), truckID, row.Code, row.Customer, pallets, loc)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("order %d: %w", i+1, err))
			continue
		}
		orders = append(orders, o)
	}

	if err := errors.Join(rowErrs...); err != nil {
		return nil, err
	}
	return orders, nil
}

func newRouteResult(route services.Route, orders []*order.Order) routeResult {
	result := routeResult{
		TotalKm:        route.TotalKm,
		ConstructionKm: route.ConstructionKm,
		Passes:         route.Passes,
		Stops:          make([]routeStop, 0, len(route.Stops)),
	}
	for _, s := range route.Stops {
		result.Stops = append(result.Stops, routeStop{
			Sequence: s.Sequence + 1,
			Code:     s.Order.Code(),
			Customer: s.Order.Customer(),
			Pallets:  s.Order.Pallets(),
			LegKm:    s.LegKm,
		})
	}
	for _, o := range orders {
		if _, ok := o.Coordinate(); !ok {
			result.Skipped = append(result.Skipped, o.Code())
		}
	}
	return result
}

func writeRouteYAML(w io.Writer, result routeResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

// Columns holding numbers are right aligned.
var numericColumns = map[int]bool{0: true, 3: true, 4: true}

func writeRouteTable(w io.Writer, result routeResult) error {
	// Styles come from a renderer bound to w so redirected output carries no escape codes.
	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := re.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(result.Stops))
	for _, s := range result.Stops {
		rows = append(rows, []string{
			strconv.Itoa(s.Sequence),
			s.Code,
			s.Customer,
			strconv.Itoa(s.Pallets),
			strconv.FormatFloat(s.LegKm, 'f', 2, 64),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(re.NewStyle().Faint(true)).
		Headers("#", "CODE", "CUSTOMER", "PALLETS", "LEG KM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if numericColumns[col] {
				return style.Align(lipgloss.Right)
			}
			return style
		})
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ntotal %.2f km (construction %.2f km, %d passes)\n",
		result.TotalKm, result.ConstructionKm, result.Passes)
	for _, code := range result.Skipped {
		fmt.Fprintf(w, "skipped %s: no location\n", code)
	}
	return nil
}
