// Package cellstats adds the :stats command, which summarizes the numeric
// content of a column or of the whole sheet.
package cellstats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/utils"
)

var _ plugin.Plugin = (*CellStats)(nil)

// CellStats counts cells and sums numbers.
type CellStats struct {
	api plugin.EditorAPI
}

// New creates a new instance of the CellStats plugin.
func New() *CellStats {
	return &CellStats{}
}

// Name returns the unique name of the plugin.
func (p *CellStats) Name() string {
	return "CellStats"
}

// Initialize registers the :stats command.
func (p *CellStats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *CellStats) Shutdown() error {
	return nil
}

// Stats summarizes a set of cells.
type Stats struct {
	NonEmpty int
	Numeric  int
	Sum      float64
	Min      float64
	Max      float64
}

// Add folds one cell value into s.
func (s *Stats) Add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	s.NonEmpty++
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return
	}
	if s.Numeric == 0 || n < s.Min {
		s.Min = n
	}
	if s.Numeric == 0 || n > s.Max {
		s.Max = n
	}
	s.Numeric++
	s.Sum += n
}

// String formats s for the status bar.
func (s Stats) String() string {
	msg := fmt.Sprintf("%d values, %d numeric", s.NonEmpty, s.Numeric)
	if s.Numeric == 0 {
		return msg
	}
	return fmt.Sprintf("%s, sum %s, avg %s, min %s, max %s", msg,
		formatNumber(s.Sum), formatNumber(s.Sum/float64(s.Numeric)),
		formatNumber(s.Min), formatNumber(s.Max))
}

// executeStats implements ":stats [column|all]". Without an argument it
// summarizes the cursor's column.
func (p *CellStats) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("cellstats plugin not initialized with API")
	}
	rows, cols := p.api.GetSheetBounds()

	if len(args) > 0 && strings.EqualFold(args[0], "all") {
		var s Stats
		for row := 1; row <= rows; row++ {
			for col := 1; col <= cols; col++ {
				s.Add(p.api.GetCellValue(row, col))
			}
		}
		p.api.SetStatusMessage("%s: %s", p.api.GetActiveSheetName(), s)
		return nil
	}

	col := p.api.GetCursor().Col
	if len(args) > 0 {
		c, ok := utils.ParseColumnOrIndex(args[0])
		if !ok {
			return fmt.Errorf("Invalid column: %s", args[0])
		}
		col = c
	}

	var s Stats
	for row := 1; row <= rows; row++ {
		s.Add(p.api.GetCellValue(row, col))
	}
	p.api.SetStatusMessage("Column %s: %s", utils.IndexToColName(col), s)
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
