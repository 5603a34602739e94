// Package reader provides format-agnostic read access to spreadsheet
// workbooks.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Workbook is a read-only view over an open spreadsheet file.
// Row and column indices are 1-based and bounded by the extents
// reported by Dimensions.
type Workbook interface {
	// Format identifies the backend that handled the file ("xlsx" or "xls").
	Format() string
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Dimensions returns the sheet's maximum row and column counts.
	Dimensions(sheet string) (maxRow, maxCol int, err error)
	// Cell returns the string form of the cell at (row, col).
	// Blank or missing cells read as the empty string.
	Cell(sheet string, row, col int) (string, error)
	// UsedRange returns the bounding box of non-empty cells in A1
	// notation ("A1:B3"), or "" for a sheet with no data.
	UsedRange(sheet string) (string, error)
	// Close releases the underlying file handle.
	Close() error
}

// Open opens path as a workbook, picking a backend by file extension.
// Anything that is not a legacy .xls file is handed to the xlsx backend,
// which rejects non-spreadsheet input on its own.
func Open(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		wb, err := openXLS(path)
		if err != nil {
			return nil, fmt.Errorf("open xls workbook: %w", err)
		}
		return wb, nil
	default:
		wb, err := openXLSX(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		return wb, nil
	}
}
