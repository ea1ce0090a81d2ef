// Package pdf renders truck loading sheets for the warehouse floor.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/domain/services"

	"github.com/go-pdf/fpdf"
)

type rgb struct {
	R, G, B int
}

var orderColors = []rgb{
	{R: 129, G: 199, B: 132},
	{R: 100, G: 181, B: 246},
	{R: 255, G: 183, B: 77},
	{R: 186, G: 104, B: 200},
	{R: 77, G: 208, B: 225},
	{R: 229, G: 115, B: 115},
	{R: 255, G: 241, B: 118},
	{R: 161, G: 136, B: 127},
}

// A4 portrait, mm.
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 10.0

	cellWidth  = 40.0
	cellHeight = 14.0
	rowLabelW  = 12.0
	gridTop    = marginTop + headerHeight + 10.0

	tableLineHeight = 6.0
)

// LoadingSheet draws one page per trip: the 3-wide slot grid with the occupying
// order codes, followed by the unload sequence of that trip.
type LoadingSheet struct {
	routes services.DepthRouteBuilder
}

func NewLoadingSheet() LoadingSheet {
	return LoadingSheet{routes: services.NewDepthRouteBuilder()}
}

// Render writes the PDF for tr to w. orders may contain orders of other trips or
// unplanned orders; only those occupying a trip's slots are drawn on its page.
func (s LoadingSheet) Render(w io.Writer, tr *truck.Truck, orders []*order.Order) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	trips := tr.Trips()

	byID := make(map[string]*order.Order, len(orders))
	colors := make(map[string]rgb, len(orders))
	for i, o := range orders {
		byID[o.ID().String()] = o
		colors[o.ID().String()] = orderColors[i%len(orderColors)]
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Loading sheet %s", tr.Name()), true)
	doc.SetAutoPageBreak(true, marginBottom)
	tx := doc.UnicodeTranslatorFromDescriptor("")

	for _, trip := range trips {
		doc.AddPage()
		s.renderHeader(doc, tx, tr, trip)
		s.renderGrid(doc, tx, trip, byID, colors)
		s.renderSequence(doc, tx, trip, orders)
	}

	return doc.Output(w)
}

func (s LoadingSheet) renderHeader(doc *fpdf.Fpdf, tx func(string) string, tr *truck.Truck, trip *truck.Trip) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s  %s  trip %d", tr.Name(), tr.Date().Format("2006-01-02"), trip.Sequence()+1)
	doc.CellFormat(pageWidth-2*marginLeft, headerHeight, tx(title), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Occupied slots: %d / %d", len(trip.OccupiedIndices()), truck.NumSlots)
	doc.CellFormat(pageWidth-2*marginLeft, 5, stats, "", 0, "L", false, 0, "")
}

func (s LoadingSheet) renderGrid(
	doc *fpdf.Fpdf,
	tx func(string) string,
	trip *truck.Trip,
	byID map[string]*order.Order,
	colors map[string]rgb,
) {
	gridLeft := (pageWidth - truck.SlotsPerRow*cellWidth) / 2
	doc.SetLineWidth(0.3)

	for row := range truck.NumRows {
		y := gridTop + float64(row)*cellHeight

		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(90, 90, 90)
		doc.SetXY(gridLeft-rowLabelW, y)
		doc.CellFormat(rowLabelW-2, cellHeight, fmt.Sprintf("%d", row+1), "", 0, "R", false, 0, "")

		for _, idx := range truck.SlotsInRow(row) {
			x := gridLeft + float64(truck.PositionInRow(idx))*cellWidth
			slot, _ := trip.Slot(idx)
			s.renderSlot(doc, tx, trip, slot, x, y, byID, colors)
		}
	}
}

func (s LoadingSheet) renderSlot(
	doc *fpdf.Fpdf,
	tx func(string) string,
	trip *truck.Trip,
	slot truck.Slot,
	x, y float64,
	byID map[string]*order.Order,
	colors map[string]rgb,
) {
	doc.SetDrawColor(60, 60, 60)

	if trip.IsDisabled(slot.Index()) {
		doc.SetFillColor(200, 200, 200)
		doc.Rect(x, y, cellWidth, cellHeight, "FD")
		doc.Line(x, y, x+cellWidth, y+cellHeight)
		doc.Line(x, y+cellHeight, x+cellWidth, y)
		return
	}

	label := ""
	occupant, ok := slot.Occupant()
	if ok {
		c, known := colors[occupant.String()]
		if !known {
			c = rgb{R: 224, G: 224, B: 224}
		}
		doc.SetFillColor(c.R, c.G, c.B)
		if o, found := byID[occupant.String()]; found {
			label = o.Code()
		} else {
			label = occupant.String()[:8]
		}
	} else {
		doc.SetFillColor(255, 255, 255)
	}
	doc.Rect(x, y, cellWidth, cellHeight, "FD")

	doc.SetTextColor(0, 0, 0)
	if label != "" {
		doc.SetFont("Helvetica", "B", 9)
		doc.SetXY(x, y+2)
		doc.CellFormat(cellWidth, 5, tx(label), "", 0, "C", false, 0, "")
	}

	doc.SetFont("Helvetica", "", 6)
	doc.SetXY(x+1, y+cellHeight-4)
	doc.CellFormat(cellWidth-2, 3, fmt.Sprintf("#%d %s", slot.Index(), slot.Shape()), "", 0, "L", false, 0, "")
}

func (s LoadingSheet) renderSequence(doc *fpdf.Fpdf, tx func(string) string, trip *truck.Trip, orders []*order.Order) {
	route := s.routes.Build(trip, orders)

	y := gridTop + float64(truck.NumRows)*cellHeight + 8
	doc.SetXY(marginLeft, y)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, tableLineHeight+1, "Unload sequence", "", 1, "L", false, 0, "")

	if route.IsDegenerate() {
		doc.SetFont("Helvetica", "I", 9)
		doc.SetX(marginLeft)
		doc.CellFormat(0, tableLineHeight, "No orders on this trip", "", 1, "L", false, 0, "")
		return
	}

	widths := []float64{12, 35, 85, 48}
	headers := []string{"#", "Order", "Customer", "Slots"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(235, 235, 235)
	doc.SetX(marginLeft)
	for i, h := range headers {
		doc.CellFormat(widths[i], tableLineHeight, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(tableLineHeight)

	doc.SetFont("Helvetica", "", 9)
	for _, stop := range route.Stops {
		doc.SetX(marginLeft)
		cells := []string{
			fmt.Sprintf("%d", stop.Sequence+1),
			stop.Order.Code(),
			stop.Order.Customer(),
			joinInts(stop.Order.Slots()),
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], tableLineHeight, tx(c), "1", 0, "L", false, 0, "")
		}
		doc.Ln(tableLineHeight)
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
