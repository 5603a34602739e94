package reader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads OOXML workbooks (xlsx, xlsm) through excelize.
type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) Format() string {
	return "xlsx"
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Dimensions reports the larger of the scanned row data and the sheet's
// declared dimension ref. Writers that stream rows often leave the
// dimension record stale or at "A1", and blank-but-present trailing
// cells are invisible to the row scan, so neither source alone is
// trustworthy.
func (w *xlsxWorkbook) Dimensions(sheet string) (int, int, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	maxRow, maxCol := scanBounds(rows)

	if dim, err := w.f.GetSheetDimension(sheet); err == nil {
		if dimRow, dimCol, ok := parseDimension(dim); ok {
			if dimRow > maxRow {
				maxRow = dimRow
			}
			if dimCol > maxCol {
				maxCol = dimCol
			}
		}
	}

	return maxRow, maxCol, nil
}

func (w *xlsxWorkbook) Cell(sheet string, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return w.f.GetCellValue(sheet, cell)
}

// UsedRange returns the bounding box of non-empty cells in A1 notation,
// or the empty string for a sheet with no data.
func (w *xlsxWorkbook) UsedRange(sheet string) (string, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := dataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

// parseDimension extracts the bottom-right coordinates from a dimension
// ref like "A1:B3" or a single-cell ref like "A1".
func parseDimension(dim string) (row, col int, ok bool) {
	if dim == "" {
		return 0, 0, false
	}
	last := dim
	if idx := strings.LastIndex(dim, ":"); idx >= 0 {
		last = dim[idx+1:]
	}
	c, r, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0, 0, false
	}
	return r, c, true
}
