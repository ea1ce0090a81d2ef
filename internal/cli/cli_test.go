package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

type fakeBackend struct {
	migrated bool
	imported []commands.ImportOrdersCommand
	importFn func(commands.ImportOrdersCommand) ([]kernel.UUID, error)
	closed   bool
}

func (b *fakeBackend) Migrate(context.Context) error {
	b.migrated = true
	return nil
}

func (b *fakeBackend) ImportOrders(_ context.Context, cmd commands.ImportOrdersCommand) ([]kernel.UUID, error) {
	b.imported = append(b.imported, cmd)
	if b.importFn != nil {
		return b.importFn(cmd)
	}
	return []kernel.UUID{kernel.NewUUID()}, nil
}

func (b *fakeBackend) open(context.Context, *slog.Logger) (Backend, func() error, error) {
	return b, func() error {
		b.closed = true
		return nil
	}, nil
}

func run(t *testing.T, backend BackendFunc, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c := New(&out, &errOut, LogInfo, backend)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&errOut)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const ordersYAML = `
depot:
  lat: 52.0
  lng: 5.0
orders:
  - code: FAR
    pallets: 2
    lat: 52.3
    lng: 5.0
  - code: NEAR
    customer: Bakkerij Jansen
    lat: 52.1
    lng: 5.0
  - code: NOWHERE
    pallets: 1
`

func TestRoute_YAMLOutput(t *testing.T) {
	path := writeFile(t, "orders.yaml", ordersYAML)

	out, err := run(t, nil, "route", "-f", path, "-o", "yaml")
	require.NoError(t, err)

	var result routeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Len(t, result.Stops, 2)
	assert.Equal(t, "NEAR", result.Stops[0].Code)
	assert.Equal(t, 1, result.Stops[0].Sequence)
	assert.Equal(t, 1, result.Stops[0].Pallets)
	assert.Equal(t, "FAR", result.Stops[1].Code)
	assert.Equal(t, []string{"NOWHERE"}, result.Skipped)
	assert.InDelta(t, 33.4, result.TotalKm, 0.2)
	assert.GreaterOrEqual(t, result.ConstructionKm, result.TotalKm)
}

func TestRoute_TableOutput(t *testing.T) {
	path := writeFile(t, "orders.yaml", ordersYAML)

	out, err := run(t, nil, "route", "-f", path)
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[", "redirected output must be plain text")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	row := func(code string) int {
		for i, line := range lines {
			if strings.Contains(line, " "+code+" ") {
				return i
			}
		}
		return -1
	}
	header, near, far := row("CODE"), row("NEAR"), row("FAR")
	require.NotEqual(t, -1, header)
	require.NotEqual(t, -1, near)
	require.NotEqual(t, -1, far)
	assert.Less(t, header, near)
	assert.Less(t, near, far)
	assert.Contains(t, lines[near], "Bakkerij Jansen")
	assert.NotContains(t, out, " NOWHERE ")
	assert.Contains(t, out, "skipped NOWHERE: no location")
}

func TestRoute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "no orders",
			content: "orders: []\n",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "unknown field",
			content: "orders:\n  - code: A\n    weight: 3\n",
			wantMsg: "parse orders file",
		},
		{
			name:    "half a location",
			content: "orders:\n  - code: A\n    lat: 52.1\n",
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "depot out of range",
			content: "depot: {lat: 95, lng: 5}\norders:\n  - code: A\n",
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name:    "unknown format",
			content: ordersYAML,
			args:    []string{"-o", "json"},
			wantMsg: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "orders.yaml", tt.content)

			_, err := run(t, nil, append([]string{"route", "-f", path}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRoute_MissingFileFlag(t *testing.T) {
	_, err := run(t, nil, "route")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func xlsxFile(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, value))
		}
	}

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImport_PassesParsedRowsToBackend(t *testing.T) {
	path := xlsxFile(t, [][]any{
		{"code", "pallets"},
		{"SO-1", 2},
		{"SO-2", 1},
	})
	truckID := kernel.NewUUID()
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	backend := &fakeBackend{importFn: func(commands.ImportOrdersCommand) ([]kernel.UUID, error) {
		return ids, nil
	}}

	out, err := run(t, backend.open, "import", "--truck", truckID.String(), path)
	require.NoError(t, err)

	require.Len(t, backend.imported, 1)
	assert.True(t, backend.imported[0].TruckID().IsEqual(truckID))
	assert.Equal(t, ids[0].String()+"\n"+ids[1].String()+"\n", out)
	assert.True(t, backend.closed)
}

func TestImport_InvalidTruckNeverOpensBackend(t *testing.T) {
	path := xlsxFile(t, [][]any{{"code", "pallets"}, {"SO-1", 2}})
	opened := false
	backend := func(context.Context, *slog.Logger) (Backend, func() error, error) {
		opened = true
		return nil, nil, errors.New("unexpected")
	}

	_, err := run(t, backend, "import", "--truck", "not-a-uuid", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid truck id")
	assert.False(t, opened)
}

func TestImport_BackendError(t *testing.T) {
	path := xlsxFile(t, [][]any{{"code", "pallets"}, {"SO-1", 2}})
	conflict := errors.New("duplicate order code")
	backend := &fakeBackend{importFn: func(commands.ImportOrdersCommand) ([]kernel.UUID, error) {
		return nil, conflict
	}}

	_, err := run(t, backend.open, "import", "--truck", kernel.NewUUID().String(), path)
	require.ErrorIs(t, err, conflict)
	assert.True(t, backend.closed)
}

func TestMigrate(t *testing.T) {
	backend := &fakeBackend{}

	_, err := run(t, backend.open, "migrate")
	require.NoError(t, err)
	assert.True(t, backend.migrated)
	assert.True(t, backend.closed)
}

func TestMigrate_BackendUnavailable(t *testing.T) {
	down := errors.New("connection refused")
	backend := func(context.Context, *slog.Logger) (Backend, func() error, error) {
		return nil, nil, down
	}

	_, err := run(t, backend, "migrate")
	require.ErrorIs(t, err, down)
}
