package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
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

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadOrders_ErpExport(t *testing.T) {
	buf := workbook(t, [][]any{
		{"order_code", "customer_name", "total_pallets", "lat", "lng"},
		{"SO-1", "Bakkerij Jansen", 3, 52.09, 5.12},
		{"SO-2", "Slagerij de Vries", "2", "", ""},
	})

	orders, err := ReadOrders(buf)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "SO-1", orders[0].Code)
	assert.Equal(t, "Bakkerij Jansen", orders[0].Customer)
	assert.Equal(t, 3, orders[0].Pallets)
	require.NotNil(t, orders[0].Lat)
	require.NotNil(t, orders[0].Lng)
	assert.InDelta(t, 52.09, *orders[0].Lat, 1e-9)
	assert.InDelta(t, 5.12, *orders[0].Lng, 1e-9)

	assert.Equal(t, 2, orders[1].Pallets)
	assert.Nil(t, orders[1].Lat)
	assert.Nil(t, orders[1].Lng)
}

func TestReadOrders_HeaderAliasesAndColumnOrder(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Pallets", "Klant", "Code"},
		{"4", "Café Centraal", "A-7"},
	})

	orders, err := ReadOrders(buf)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "A-7", orders[0].Code)
	assert.Equal(t, "Café Centraal", orders[0].Customer)
	assert.Equal(t, 4, orders[0].Pallets)
	assert.Nil(t, orders[0].Lat)
}

func TestReadOrders_DecimalComma(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "pallets", "latitude", "longitude"},
		{"SO-9", "1", "52,37", "4,89"},
	})

	orders, err := ReadOrders(buf)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 52.37, *orders[0].Lat, 1e-9)
	assert.InDelta(t, 4.89, *orders[0].Lng, 1e-9)
}

func TestReadOrders_SkipsBlankRows(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "pallets"},
		{"SO-1", 1},
		{"", ""},
		{"SO-2", 2},
	})

	orders, err := ReadOrders(buf)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestReadOrders_MissingRequiredColumn(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "customer"},
		{"SO-1", "x"},
	})

	_, err := ReadOrders(buf)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "pallets")
}

func TestReadOrders_LatWithoutLngColumn(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "pallets", "lat"},
		{"SO-1", 1, 52.0},
	})

	_, err := ReadOrders(buf)
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadOrders_RowErrorsAreCollected(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "pallets", "lat", "lng"},
		{"SO-1", "2.5", "", ""},
		{"SO-2", "", "", ""},
		{"SO-3", "1", "north", "5"},
		{"SO-4", "1", "", ""},
	})

	_, err := ReadOrders(buf)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	msg := err.Error()
	assert.Contains(t, msg, "row 2:")
	assert.Contains(t, msg, "row 3:")
	assert.Contains(t, msg, "row 4:")
	assert.NotContains(t, msg, "row 5:")
}

func TestReadOrders_HeaderOnly(t *testing.T) {
	buf := workbook(t, [][]any{
		{"code", "pallets"},
	})

	_, err := ReadOrders(buf)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReadOrders_NotAWorkbook(t *testing.T) {
	_, err := ReadOrders(strings.NewReader("code,pallets\nSO-1,1\n"))
	require.Error(t, err)
}
