package gnssdist

// PanelColumns is the number of panel columns in a distribution figure.
const PanelColumns = 3

// GridSize returns the number of rows and columns of a panel grid which
// holds n panels in cols columns: rows = ceil(n/cols). The last row may
// have empty cells.
func GridSize(n, cols int) (rows, c int) {
	if cols < 1 {
		cols = 1
	}
	rows = n / cols
	if n%cols != 0 {
		rows++
	}
	return rows, cols
}

// GridCell returns the row and column of the i'th panel in a grid with
// cols columns. Panels are filled row by row.
func GridCell(i, cols int) (row, col int) {
	if cols < 1 {
		cols = 1
	}
	return i / cols, i % cols
}
