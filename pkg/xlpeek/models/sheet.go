package models

// SheetReport describes one sheet's extents and row preview.
type SheetReport struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Index is the sheet's position in the workbook (0-based).
	Index int `json:"index"`
	// MaxRow is the sheet's maximum row count (1-based extents).
	MaxRow int `json:"max_row"`
	// MaxCol is the sheet's maximum column count (1-based extents).
	MaxCol int `json:"max_col"`
	// UsedRange is the bounding box of non-empty cells in A1 notation,
	// when the backend can report it.
	UsedRange string `json:"used_range,omitempty"`
	// Preview contains the first rows of the sheet, capped by the
	// inspection options.
	Preview []PreviewRow `json:"preview,omitempty"`
}

// PreviewRow is a single previewed row.
type PreviewRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds one value per column 1..MaxCol; blank cells are
	// empty strings (placeholder substitution happens at render time).
	Cells []string `json:"cells"`
}
