package queries

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"planner/internal/core/ports"
)

type GetLoadingSheetQueryHandler struct {
	repos    RepositoriesFactory
	renderer ports.LoadingSheetRenderer
}

func NewGetLoadingSheetQueryHandler(repos RepositoriesFactory, renderer ports.LoadingSheetRenderer) GetLoadingSheetQueryHandler {
	return GetLoadingSheetQueryHandler{repos: repos, renderer: renderer}
}

func (h GetLoadingSheetQueryHandler) Handle(
	ctx context.Context,
	query GetLoadingSheetQuery,
) (GetLoadingSheetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadingSheetQueryResponse{}, err
	}

	repos := h.repos.Create()

	tr, err := repos.TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return GetLoadingSheetQueryResponse{}, err
	}

	orders, err := repos.OrderRepository().GetAllByTruck(ctx, tr.ID())
	if err != nil {
		return GetLoadingSheetQueryResponse{}, err
	}

	var buf bytes.Buffer
	if err = h.renderer.Render(&buf, tr, orders); err != nil {
		return GetLoadingSheetQueryResponse{}, fmt.Errorf("render loading sheet: %w", err)
	}

	return GetLoadingSheetQueryResponse{
		FileName: fileName(tr.Name(), tr.Date().Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}

// fileName keeps letters, digits and dashes so the name is safe in a
// Content-Disposition header.
func fileName(truckName, date string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(truckName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteRune('-')
		}
	}
	return fmt.Sprintf("loading-sheet-%s-%s.pdf", b.String(), date)
}
