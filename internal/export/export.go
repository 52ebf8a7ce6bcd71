// Package export renders stored records as an .xlsx workbook.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"bizsite-api/internal/model"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrEmpty is returned when there are no records to export.
var ErrEmpty = errors.New("no records to export")

// Record is anything that can list its stored fields.
type Record interface {
	Fields() []model.Field
}

// Records adapts a typed slice for Workbook.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// Columns returns the keys of the first record. Later records are laid out
// against these keys; keys they lack become empty cells and keys the first
// record lacks are dropped.
func Columns(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	fields := records[0].Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// Workbook builds a single-sheet workbook named sheet with an uppercased
// header row followed by one row per record. The caller closes the file.
func Workbook(sheet string, records []Record) (*excelize.File, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	keys := Columns(records)

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet name: %w", err)
	}

	header := make([]any, len(keys))
	for i, k := range keys {
		header[i] = strings.ToUpper(k)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("header row: %w", err)
	}

	for i, rec := range records {
		values := make(map[string]any, len(keys))
		for _, fl := range rec.Fields() {
			values[fl.Key] = fl.Value
		}
		row := make([]any, len(keys))
		for j, k := range keys {
			row[j] = values[k]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return f, nil
}
