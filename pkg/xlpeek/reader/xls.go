package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
)

// xlsWorkbook reads legacy BIFF workbooks through extrame/xls.
type xlsWorkbook struct {
	wb     *xls.WorkBook
	closer io.Closer
}

func openXLS(path string) (Workbook, error) {
	// xls v0.0.1 has no OpenWithCloser; this mirrors the v0.0.4 wrapper
	// (os.Open + OpenReader, returning the file as the closer).
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, err
	}
	return &xlsWorkbook{wb: wb, closer: f}, nil
}

func (w *xlsWorkbook) Format() string {
	return "xls"
}

func (w *xlsWorkbook) SheetNames() []string {
	n := w.wb.NumSheets()
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if s := w.wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}
	return names
}

func (w *xlsWorkbook) Dimensions(sheet string) (int, int, error) {
	s, err := w.sheetByName(sheet)
	if err != nil {
		return 0, 0, err
	}

	// MaxRow is the last row index; an entirely empty sheet reports 0
	// with no row records behind it.
	if s.MaxRow == 0 && s.Row(0) == nil {
		return 0, 0, nil
	}

	maxRow := int(s.MaxRow) + 1
	maxCol := 0
	for i := 0; i < maxRow; i++ {
		row := s.Row(i)
		if row == nil {
			continue
		}
		if cols := row.LastCol() + 1; cols > maxCol {
			maxCol = cols
		}
	}
	return maxRow, maxCol, nil
}

func (w *xlsWorkbook) Cell(sheet string, row, col int) (string, error) {
	s, err := w.sheetByName(sheet)
	if err != nil {
		return "", err
	}
	r := s.Row(row - 1)
	if r == nil {
		return "", nil
	}
	return r.Col(col - 1), nil
}

// UsedRange is not derivable from the BIFF row records without a full
// cell scan, so the legacy backend reports no range.
func (w *xlsWorkbook) UsedRange(sheet string) (string, error) {
	if _, err := w.sheetByName(sheet); err != nil {
		return "", err
	}
	return "", nil
}

func (w *xlsWorkbook) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

func (w *xlsWorkbook) sheetByName(name string) (*xls.WorkSheet, error) {
	for i := 0; i < w.wb.NumSheets(); i++ {
		if s := w.wb.GetSheet(i); s != nil && s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sheet %q not found", name)
}
