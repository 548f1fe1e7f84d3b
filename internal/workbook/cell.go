// Package workbook holds the grid data model: cells, sheets and the
// structural primitives that mutate them.
package workbook

import (
	"strconv"
	"strings"
)

// CellType is the coarse type tag inferred from a cell's value.
type CellType int

const (
	CellEmpty CellType = iota
	CellText
	CellNumber
	CellDate
	CellBoolean
)

func (t CellType) String() string {
	switch t {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	case CellBoolean:
		return "boolean"
	default:
		return "empty"
	}
}

// OriginKind names the raw type a value had in its source file.
type OriginKind int

const (
	OriginNone OriginKind = iota // no origin information recorded
	OriginEmpty
	OriginString
	OriginFloat
	OriginInt
	OriginBool
	OriginDateTime
	OriginDuration
	OriginDateTimeISO
	OriginDurationISO
	OriginError
)

// OriginFormat is the raw source value behind a cell, kept for export.
// Only the field matching Kind is meaningful.
type OriginFormat struct {
	Kind  OriginKind
	Float float64 // OriginFloat, OriginDateTime, OriginDuration
	Int   int64   // OriginInt
	Bool  bool    // OriginBool
	Text  string  // OriginDateTimeISO, OriginDurationISO
}

// Present reports whether any origin information was recorded.
func (o OriginFormat) Present() bool {
	return o.Kind != OriginNone
}

// Cell is a single grid entry. Cells are values: edits build a new Cell and
// overwrite the slot rather than mutating fields in place.
type Cell struct {
	Value     string
	IsFormula bool
	Type      CellType
	Origin    OriginFormat
}

// NewCell builds a cell and infers its type tag from value.
func NewCell(value string, isFormula bool) Cell {
	return NewCellWithType(value, isFormula, inferType(value, isFormula), OriginFormat{})
}

// NewCellWithType builds a cell with an explicit type tag and origin.
func NewCellWithType(value string, isFormula bool, cellType CellType, origin OriginFormat) Cell {
	return Cell{
		Value:     value,
		IsFormula: isFormula,
		Type:      cellType,
		Origin:    origin,
	}
}

// CellFromInput builds the cell a user-typed value produces. A leading '=' marks a formula.
func CellFromInput(value string) Cell {
	return NewCell(value, strings.HasPrefix(value, "="))
}

// EmptyCell returns the blank cell used to pad the grid.
func EmptyCell() Cell {
	return Cell{Type: CellEmpty, Origin: OriginFormat{Kind: OriginEmpty}}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Value == ""
}

// EffectiveType is the type downstream serializers should use: the origin
// format wins over the inferred tag when one was recorded.
func (c Cell) EffectiveType() CellType {
	switch c.Origin.Kind {
	case OriginEmpty:
		return CellEmpty
	case OriginString, OriginError, OriginDuration, OriginDurationISO:
		return CellText
	case OriginFloat, OriginInt:
		return CellNumber
	case OriginBool:
		return CellBoolean
	case OriginDateTime, OriginDateTimeISO:
		return CellDate
	}
	return c.Type
}

func inferType(value string, isFormula bool) CellType {
	switch {
	case value == "":
		return CellEmpty
	case isFormula:
		return CellText
	case isNumber(value):
		return CellNumber
	case strings.Count(value, "/") == 2 || strings.Count(value, "-") == 2:
		return CellDate
	case value == "true" || value == "false":
		return CellBoolean
	default:
		return CellText
	}
}

func isNumber(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
