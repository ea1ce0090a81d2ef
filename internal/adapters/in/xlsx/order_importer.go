// Package xlsx reads order exports from Excel workbooks into import rows.
//
// The first sheet must start with a header row. Columns are matched by name,
// case-insensitively, against a list of aliases so that both the ERP export
// ("order_code", "customer_name", "total_pallets") and hand-made sheets
// ("Code", "Customer", "Pallets") are accepted. Latitude and longitude are optional.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

var ErrMissingColumn = errors.New("required column is missing")

type column int

const (
	colCode column = iota
	colCustomer
	colPallets
	colLat
	colLng
	numColumns
)

var headerAliases = map[column][]string{
	colCode:     {"order_code", "order code", "code", "order", "ordernummer"},
	colCustomer: {"customer_name", "customer name", "customer", "klant"},
	colPallets:  {"total_pallets", "total pallets", "pallets", "qty", "quantity"},
	colLat:      {"lat", "latitude"},
	colLng:      {"lng", "lon", "long", "longitude"},
}

var columnNames = map[column]string{
	colCode:     "code",
	colCustomer: "customer",
	colPallets:  "pallets",
	colLat:      "lat",
	colLng:      "lng",
}

// ReadOrders parses the first sheet of the workbook in r. Blank rows are skipped.
// All row errors are returned together, each prefixed with its sheet row number.
func ReadOrders(r io.Reader) ([]commands.ImportedOrder, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errs.NewValueIsRequiredError("sheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errs.NewValueIsRequiredError("header")
	}

	mapping, err := detectColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var (
		orders  []commands.ImportedOrder
		rowErrs []error
	)
	for i := 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		o, err := parseRow(rows[i], mapping)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		orders = append(orders, o)
	}

	if err = errors.Join(rowErrs...); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewValueIsRequiredError("rows")
	}
	return orders, nil
}

func detectColumns(header []string) ([numColumns]int, error) {
	var mapping [numColumns]int
	for c := range mapping {
		mapping[c] = -1
	}

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for c, aliases := range headerAliases {
			if mapping[c] == -1 && slices.Contains(aliases, name) {
				mapping[c] = i
			}
		}
	}

	var missing []error
	for _, c := range []column{colCode, colPallets} {
		if mapping[c] == -1 {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingColumn, columnNames[c]))
		}
	}
	if (mapping[colLat] == -1) != (mapping[colLng] == -1) {
		missing = append(missing, fmt.Errorf("%w: lat and lng must both be present", ErrMissingColumn))
	}
	return mapping, errors.Join(missing...)
}

func parseRow(row []string, mapping [numColumns]int) (commands.ImportedOrder, error) {
	o := commands.ImportedOrder{
		Code:     cell(row, mapping[colCode]),
		Customer: cell(row, mapping[colCustomer]),
	}

	pallets, err := parsePallets(cell(row, mapping[colPallets]))
	if err != nil {
		return commands.ImportedOrder{}, err
	}
	o.Pallets = pallets

	lat, err := parseOptionalFloat("lat", cell(row, mapping[colLat]))
	if err != nil {
		return commands.ImportedOrder{}, err
	}
	lng, err := parseOptionalFloat("lng", cell(row, mapping[colLng]))
	if err != nil {
		return commands.ImportedOrder{}, err
	}
	o.Lat, o.Lng = lat, lng

	return o, nil
}

// parsePallets accepts whole numbers written as integers or as floats ("3", "3.0").
func parsePallets(s string) (int, error) {
	if s == "" {
		return 0, errs.NewValueIsRequiredError("pallets")
	}
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil || v != math.Trunc(v) {
		return 0, errs.NewValueIsInvalidErrorWithCause("pallets", fmt.Errorf("%q is not a whole number", s))
	}
	return int(v), nil
}

func parseOptionalFloat(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &v, nil
}

// normalizeDecimal turns a decimal comma into a point: "52,09" is read as 52.09.
func normalizeDecimal(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return strings.Replace(s, ",", ".", 1)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
