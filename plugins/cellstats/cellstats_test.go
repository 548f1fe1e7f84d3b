package cellstats

import (
	"testing"

	"github.com/bethropolis/tabula/internal/plugin/plugintest"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *plugintest.API {
	t.Helper()
	api := plugintest.New()
	api.Set(1, 1, "name")
	api.Set(1, 2, "amount")
	api.Set(2, 1, "pens")
	api.Set(2, 2, "4")
	api.Set(3, 1, "ink")
	api.Set(3, 2, "2.5")
	api.Set(4, 2, " -1 ")

	require.NoError(t, New().Initialize(api))
	return api
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	for _, v := range []string{"", "x", "3", "-2", "10"} {
		s.Add(v)
	}
	assert.Equal(t, Stats{NonEmpty: 4, Numeric: 3, Sum: 11, Min: -2, Max: 10}, s)
	assert.Equal(t, "4 values, 3 numeric, sum 11, avg 3.6666666666666665, min -2, max 10", s.String())
	assert.Equal(t, "0 values, 0 numeric", Stats{}.String())
}

func TestCursorColumn(t *testing.T) {
	api := newTestAPI(t)
	api.Cursor = types.CellPosition{Row: 1, Col: 2}

	require.NoError(t, api.Run("stats"))
	assert.Equal(t, "Column B: 4 values, 3 numeric, sum 5.5, avg 1.8333333333333333, min -1, max 4", api.LastMessage())
}

func TestNamedColumn(t *testing.T) {
	api := newTestAPI(t)

	require.NoError(t, api.Run("stats", "A"))
	assert.Equal(t, "Column A: 3 values, 0 numeric", api.LastMessage())

	require.NoError(t, api.Run("stats", "2"))
	assert.Contains(t, api.LastMessage(), "Column B:")

	assert.EqualError(t, api.Run("stats", "#"), "Invalid column: #")
}

func TestWholeSheet(t *testing.T) {
	api := newTestAPI(t)

	require.NoError(t, api.Run("stats", "all"))
	assert.Equal(t, "Sheet1: 7 values, 3 numeric, sum 5.5, avg 1.8333333333333333, min -1, max 4", api.LastMessage())
}
