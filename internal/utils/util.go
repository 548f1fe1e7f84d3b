package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/tabula/internal/types"
)

// IndexToColName converts a 1-based column index to its letter name (1 -> "A", 27 -> "AA").
// Index 0 and negatives map to "A".
func IndexToColName(index int) string {
	if index <= 0 {
		return "A"
	}
	var name []byte
	for n := index; n > 0; n = (n - 1) / 26 {
		name = append([]byte{byte('A' + (n-1)%26)}, name...)
	}
	return string(name)
}

// ColNameToIndex converts a column letter name to its 1-based index.
// Returns false if name is empty or contains non-letters.
func ColNameToIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	result := 0
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return 0, false
		}
		result = result*26 + int(c-'A'+1)
	}
	return result, true
}

// CellReference formats a position as a spreadsheet reference such as "B3".
func CellReference(pos types.CellPosition) string {
	return fmt.Sprintf("%s%d", IndexToColName(pos.Col), pos.Row)
}

// ParseCellReference parses references like "B3" or "aa10".
func ParseCellReference(ref string) (types.CellPosition, bool) {
	ref = strings.TrimSpace(ref)
	split := 0
	for split < len(ref) && isLetter(ref[split]) {
		split++
	}
	if split == 0 || split == len(ref) {
		return types.CellPosition{}, false
	}
	col, ok := ColNameToIndex(ref[:split])
	if !ok {
		return types.CellPosition{}, false
	}
	row, err := strconv.Atoi(ref[split:])
	if err != nil || row < 1 {
		return types.CellPosition{}, false
	}
	return types.CellPosition{Row: row, Col: col}, true
}

// ParseColumnOrIndex accepts either a column letter name ("C") or a 1-based number ("3").
func ParseColumnOrIndex(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n > 0
	}
	return ColNameToIndex(s)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
