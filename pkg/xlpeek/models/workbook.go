// Package models defines report structures for workbook inspection.
package models

// WorkbookReport is the top-level inspection result for a single file.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Path is the path the workbook was opened from.
	Path string `json:"path"`
	// Format is the reader backend that handled the file ("xlsx" or "xls").
	Format string `json:"format"`
	// Sheets lists per-sheet reports in workbook order.
	Sheets []SheetReport `json:"sheets"`
}
