// Package output renders workbook reports as diagnostic text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xlpeek/pkg/xlpeek/models"
)

// TextRenderer writes a workbook report as human-readable text.
type TextRenderer struct {
	// Separator joins cell values within a previewed row.
	Separator string
	// Placeholder stands in for blank cells.
	Placeholder string
}

// NewTextRenderer returns a renderer with the default separator and
// placeholder.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{
		Separator:   " | ",
		Placeholder: "NULL",
	}
}

// Render writes the full report to w: the file header, then for each
// sheet its name, extents, and previewed rows.
func (r *TextRenderer) Render(w io.Writer, report *models.WorkbookReport) {
	fmt.Fprintf(w, "Excel 文件: %s\n", report.Path)

	for _, sheet := range report.Sheets {
		fmt.Fprintf(w, "\n工作表: %s\n", sheet.Name)
		fmt.Fprintf(w, "最大行数: %d\n", sheet.MaxRow)
		fmt.Fprintf(w, "最大列数: %d\n", sheet.MaxCol)

		for _, row := range sheet.Preview {
			fmt.Fprintf(w, "  行 %d: %s\n", row.R, r.renderRow(row.Cells))
		}
	}
}

func (r *TextRenderer) renderRow(cells []string) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		if cell == "" {
			rendered[i] = r.Placeholder
		} else {
			rendered[i] = cell
		}
	}
	return strings.Join(rendered, r.Separator)
}

// NotFoundMessage is the diagnostic printed for a nonexistent input path.
func NotFoundMessage(path string) string {
	return fmt.Sprintf("文件不存在: %s", path)
}

// ReadErrorMessage is the diagnostic printed when loading or reading
// the workbook fails.
func ReadErrorMessage(err error) string {
	return fmt.Sprintf("读取 Excel 文件时发生错误: %v", err)
}
