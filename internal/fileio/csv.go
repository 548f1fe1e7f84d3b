// Package fileio loads and saves workbooks as CSV files, one file per sheet.
package fileio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/workbook"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoPath is returned when saving a workbook that has no file path.
var ErrNoPath = errors.New("no file path set")

// Load reads a CSV file into a single-sheet workbook named after the file.
// A missing file yields an empty workbook bound to path, so new files can be
// created by saving.
func Load(path string) (*workbook.Workbook, error) {
	name := SheetName(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("fileio: %s does not exist, starting empty", path)
		return workbook.New(path, workbook.NewSheet(name, 0, 0)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sheet, err := ReadSheet(name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Infof("fileio: Loaded %s (%d rows, %d columns)", path, sheet.MaxRows, sheet.MaxCols)
	return workbook.New(path, sheet), nil
}

// ReadSheet parses CSV records into a sheet. Input that is not valid UTF-8 is
// decoded as ISO-8859-1.
func ReadSheet(name string, r io.Reader) (*workbook.Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		logger.Debugf("fileio: Input is not UTF-8, decoding as ISO-8859-1")
		if data, err = charmap.ISO8859_1.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("decode ISO-8859-1: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	cols := 0
	for _, rec := range records {
		cols = max(cols, len(rec))
	}
	sheet := workbook.NewSheet(name, len(records), cols)
	for r, rec := range records {
		for c, value := range rec {
			sheet.Data[r+1][c+1] = workbook.CellFromInput(value)
		}
	}
	sheet.RecalculateMaxRows()
	sheet.RecalculateMaxCols()
	return sheet, nil
}

// WriteSheet writes the sheet's logical area as CSV records.
func WriteSheet(w io.Writer, sheet *workbook.Sheet) error {
	writer := csv.NewWriter(w)
	record := make([]string, sheet.MaxCols)
	for row := 1; row <= sheet.MaxRows; row++ {
		for col := 1; col <= sheet.MaxCols; col++ {
			record[col-1] = sheet.Cell(row, col).Value
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes every sheet of wb. The first sheet goes to the workbook's path;
// each further sheet goes next to it as <stem>_<sheet><ext>. It returns the
// paths written.
func Save(wb *workbook.Workbook) ([]string, error) {
	path := wb.FilePath()
	if path == "" {
		return nil, ErrNoPath
	}
	return SaveAs(wb, path)
}

// SaveAs writes every sheet relative to path without changing the
// workbook's own path. It returns the files written, in sheet order.
func SaveAs(wb *workbook.Workbook, path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	var written []string
	for i := 0; i < wb.SheetCount(); i++ {
		sheet, err := wb.SheetAt(i)
		if err != nil {
			return written, err
		}
		target := path
		if i > 0 {
			target = SiblingPath(path, sheet.Name)
		}
		if err := writeFile(target, sheet); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	logger.Infof("fileio: Saved %d sheet(s) to %v", len(written), written)
	return written, nil
}

func SiblingPath(path, sheetName string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, sanitize(sheetName), ext)
}

// SheetName derives a sheet name from a file path.
func SheetName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "Sheet1"
	}
	return name
}

// writeFile writes through a temp file in the same directory and renames it
// over the target.
func writeFile(path string, sheet *workbook.Sheet) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tabula-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSheet(tmp, sheet); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename onto %s: %w", path, err)
	}
	return nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
