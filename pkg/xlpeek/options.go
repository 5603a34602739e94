// Package xlpeek inspects spreadsheet workbooks and reports sheet
// names, extents, and a bounded row preview.
package xlpeek

// DefaultPreviewRows is the preview cap used when Options does not set one.
const DefaultPreviewRows = 6

// Options configures inspection behavior.
type Options struct {
	// MaxPreviewRows caps how many rows per sheet are captured in the
	// report. Zero or negative falls back to DefaultPreviewRows.
	MaxPreviewRows int
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		MaxPreviewRows: DefaultPreviewRows,
	}
}

// PreviewRows returns the effective per-sheet preview cap.
func (o Options) PreviewRows() int {
	if o.MaxPreviewRows > 0 {
		return o.MaxPreviewRows
	}
	return DefaultPreviewRows
}
