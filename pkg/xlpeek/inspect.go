package xlpeek

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlpeek/pkg/xlpeek/models"
	"github.com/ukaji3/xlpeek/pkg/xlpeek/reader"
)

// Inspect opens the workbook at path and builds a report of every
// sheet's name, extents, and first rows. The preview of each sheet
// covers rows 1..min(opts.PreviewRows(), max row), and every preview
// row carries exactly max-column cell values, blank cells included.
func Inspect(path string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	report := &models.WorkbookReport{
		BookName: filepath.Base(path),
		Path:     path,
		Format:   wb.Format(),
	}

	for i, sheetName := range wb.SheetNames() {
		sheet, err := inspectSheet(wb, sheetName, opts.PreviewRows())
		if err != nil {
			return nil, err
		}
		sheet.Index = i
		report.Sheets = append(report.Sheets, sheet)
	}

	return report, nil
}

func inspectSheet(wb reader.Workbook, name string, previewRows int) (models.SheetReport, error) {
	sheet := models.SheetReport{Name: name}

	maxRow, maxCol, err := wb.Dimensions(name)
	if err != nil {
		return sheet, NewInspectError(name, "dimensions", err)
	}
	sheet.MaxRow = maxRow
	sheet.MaxCol = maxCol

	if usedRange, err := wb.UsedRange(name); err == nil {
		sheet.UsedRange = usedRange
	}

	limit := previewRows
	if maxRow < limit {
		limit = maxRow
	}

	for r := 1; r <= limit; r++ {
		cells := make([]string, maxCol)
		for c := 1; c <= maxCol; c++ {
			v, err := wb.Cell(name, r, c)
			if err != nil {
				return sheet, NewInspectError(name, "cells", err)
			}
			cells[c-1] = v
		}
		sheet.Preview = append(sheet.Preview, models.PreviewRow{R: r, Cells: cells})
	}

	return sheet, nil
}
