package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/tabula/internal/utils"
)

func registerGridCommands(api API) {
	// --- Cells ---
	register(api, func(args []string) error {
		api.Editor().CopyCell()
		return nil
	}, "y")

	register(api, func(args []string) error {
		if err := api.Editor().CutCell(); err != nil {
			return fmt.Errorf("Cut failed: %v", err)
		}
		return nil
	}, "d")

	register(api, func(args []string) error {
		if err := api.Editor().PasteCell(); err != nil {
			return fmt.Errorf("Paste failed: %v", err)
		}
		return nil
	}, "put", "pu")

	// --- History ---
	register(api, func(args []string) error {
		api.Editor().Undo()
		return nil
	}, "undo", "u")

	register(api, func(args []string) error {
		api.Editor().Redo()
		return nil
	}, "redo")

	// --- Search ---
	register(api, func(args []string) error {
		api.Editor().DisableSearchHighlight()
		return nil
	}, "nohlsearch", "noh")

	// --- Sheets ---
	register(api, func(args []string) error {
		api.Editor().DeleteCurrentSheet()
		return nil
	}, "delsheet")

	register(api, func(args []string) error {
		if len(args) == 0 {
			return errors.New("Usage: :sheet [name|number]")
		}
		api.Editor().SwitchToSheet(strings.Join(args, " "))
		return nil
	}, "sheet")

	// --- Structure ---
	register(api, func(args []string) error { return deleteRows(api, args) }, "dr")
	register(api, func(args []string) error { return deleteColumns(api, args) }, "dc")
	register(api, func(args []string) error { return columnWidth(api, args) }, "cw")
}

// deleteRows implements ":dr [row] [end_row]".
func deleteRows(api API, args []string) error {
	e := api.Editor()
	switch len(args) {
	case 0:
		if err := e.DeleteCurrentRow(); err != nil {
			return fmt.Errorf("Failed to delete row: %v", err)
		}
	case 1:
		row, ok := parseRow(args[0])
		if !ok {
			return fmt.Errorf("Invalid row number: %s", args[0])
		}
		if err := e.DeleteRow(row); err != nil {
			return fmt.Errorf("Failed to delete row %d: %v", row, err)
		}
	case 2:
		start, okStart := parseRow(args[0])
		end, okEnd := parseRow(args[1])
		if !okStart || !okEnd {
			return errors.New("Invalid row range")
		}
		if err := e.DeleteRows(start, end); err != nil {
			return fmt.Errorf("Failed to delete rows %d to %d: %v", start, end, err)
		}
	default:
		return errors.New("Usage: :dr [row] [end_row]")
	}
	return nil
}

// deleteColumns implements ":dc [col] [end_col]". Columns are letters or
// 1-based numbers.
func deleteColumns(api API, args []string) error {
	e := api.Editor()
	switch len(args) {
	case 0:
		if err := e.DeleteCurrentColumn(); err != nil {
			return fmt.Errorf("Failed to delete column: %v", err)
		}
	case 1:
		name := strings.ToUpper(args[0])
		col, ok := utils.ParseColumnOrIndex(name)
		if !ok {
			return fmt.Errorf("Invalid column: %s", name)
		}
		if err := e.DeleteColumn(col); err != nil {
			return fmt.Errorf("Failed to delete column %s: %v", name, err)
		}
	case 2:
		startName, endName := strings.ToUpper(args[0]), strings.ToUpper(args[1])
		start, okStart := utils.ParseColumnOrIndex(startName)
		end, okEnd := utils.ParseColumnOrIndex(endName)
		if !okStart || !okEnd {
			return errors.New("Invalid column range")
		}
		if err := e.DeleteColumns(start, end); err != nil {
			return fmt.Errorf("Failed to delete columns %s to %s: %v", startName, endName, err)
		}
	default:
		return errors.New("Usage: :dc [col] [end_col]")
	}
	return nil
}

// columnWidth implements ":cw fit|min|N [all]". A numeric width always
// applies to the cursor's column.
func columnWidth(api API, args []string) error {
	if len(args) == 0 {
		return errors.New("Usage: :cw [fit|min|number] [all]")
	}
	e := api.Editor()
	all := len(args) > 1 && args[1] == "all"
	col := e.GetCursor().Col

	switch args[0] {
	case "fit":
		if all {
			e.FitAllColumns()
		} else {
			e.FitColumn(col)
		}
	case "min":
		if all {
			e.MinimizeAllColumns()
		} else {
			e.MinimizeColumn(col)
		}
	default:
		width, err := strconv.Atoi(args[0])
		if err != nil || width < 0 {
			return fmt.Errorf("Invalid column width: %s", args[0])
		}
		e.SetColumnWidth(col, width)
	}
	return nil
}

func parseRow(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n >= 1
}
