package xlpeek

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// saveFixture writes the workbook to a temp file and returns its path.
func saveFixture(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path), "failed to save fixture workbook")
	return path
}

func TestInspectFileNotFound(t *testing.T) {
	report, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestInspectCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0644))

	report, err := Inspect(path, DefaultOptions())

	assert.Nil(t, report)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestInspectSheetContents(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Age"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Alice"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 30))
	// Row 3 has a blank leading cell.
	require.NoError(t, f.SetCellValue("Sheet1", "B3", 30))
	path := saveFixture(t, f)

	report, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, report.Sheets, 1)
	assert.Equal(t, "fixture.xlsx", report.BookName)
	assert.Equal(t, "xlsx", report.Format)

	sheet := report.Sheets[0]
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, 0, sheet.Index)
	assert.Equal(t, 3, sheet.MaxRow)
	assert.Equal(t, 2, sheet.MaxCol)
	assert.Equal(t, "A1:B3", sheet.UsedRange)

	require.Len(t, sheet.Preview, 3)
	assert.Equal(t, 1, sheet.Preview[0].R)
	assert.Equal(t, []string{"Name", "Age"}, sheet.Preview[0].Cells)
	assert.Equal(t, []string{"Alice", "30"}, sheet.Preview[1].Cells)
	assert.Equal(t, []string{"", "30"}, sheet.Preview[2].Cells)
}

func TestInspectMultipleSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "first"))
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Second", "A1", "second"))
	require.NoError(t, f.SetCellValue("Second", "C2", "wide"))
	path := saveFixture(t, f)

	report, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, report.Sheets, 2)
	assert.Equal(t, "Sheet1", report.Sheets[0].Name)
	assert.Equal(t, "Second", report.Sheets[1].Name)
	assert.Equal(t, 1, report.Sheets[1].Index)
	assert.Equal(t, 2, report.Sheets[1].MaxRow)
	assert.Equal(t, 3, report.Sheets[1].MaxCol)
}

func TestInspectPreviewCap(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	for r := 1; r <= 8; r++ {
		cell := fmt.Sprintf("A%d", r)
		require.NoError(t, f.SetCellValue("Sheet1", cell, r))
	}
	path := saveFixture(t, f)

	report, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Sheets, 1)
	assert.Equal(t, 8, report.Sheets[0].MaxRow)
	assert.Len(t, report.Sheets[0].Preview, DefaultPreviewRows)

	report, err = Inspect(path, Options{MaxPreviewRows: 3})
	require.NoError(t, err)
	assert.Len(t, report.Sheets[0].Preview, 3)
}

func TestInspectShortSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "only"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "two"))
	path := saveFixture(t, f)

	report, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Sheets, 1)
	assert.Len(t, report.Sheets[0].Preview, 2)
}

func TestOptionsPreviewRows(t *testing.T) {
	assert.Equal(t, DefaultPreviewRows, Options{}.PreviewRows())
	assert.Equal(t, DefaultPreviewRows, Options{MaxPreviewRows: -1}.PreviewRows())
	assert.Equal(t, 10, Options{MaxPreviewRows: 10}.PreviewRows())
}
