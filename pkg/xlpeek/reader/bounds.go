package reader

// scanBounds computes a sheet's extents from its materialized rows.
// maxRow counts every returned row; maxCol is the widest row. Both are
// 0 for a sheet with no rows.
func scanBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow = len(rows)
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxRow, maxCol
}

// dataBounds finds the bounding box of non-empty cells (0-based,
// inclusive). minRow is -1 when the sheet holds no data.
func dataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
