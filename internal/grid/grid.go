package grid

import "fmt"

// Cell is one slot of a grid row
type Cell[T any] struct {
	Item  T
	Index int  // position in the source slice, -1 for empty cells
	Empty bool // true for padding cells past the end of the items
}

// RowCount returns ceil(itemCount / columns)
func RowCount(itemCount, columns int) int {
	mustColumns(columns)
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + columns - 1) / columns
}

// Rows splits items into rows of exactly columns cells, left to right then
// top to bottom. Cells past the end of items are empty placeholders.
// Panics if columns is not positive.
func Rows[T any](columns int, items []T) [][]Cell[T] {
	count := RowCount(len(items), columns)
	rows := make([][]Cell[T], 0, count)

	for i := 0; i < count; i++ {
		row := make([]Cell[T], columns)
		for j := 0; j < columns; j++ {
			index := i*columns + j
			if index < len(items) {
				row[j] = Cell[T]{Item: items[index], Index: index}
			} else {
				row[j] = Cell[T]{Index: -1, Empty: true}
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// Render lays out items like Rows and maps every cell to a view: filled cells
// through render, padding cells through empty.
func Render[T, V any](columns int, items []T, render func(T) V, empty func() V) [][]V {
	rows := Rows(columns, items)
	views := make([][]V, len(rows))

	for i, row := range rows {
		views[i] = make([]V, len(row))
		for j, cell := range row {
			if cell.Empty {
				views[i][j] = empty()
				continue
			}
			views[i][j] = render(cell.Item)
		}
	}

	return views
}

func mustColumns(columns int) {
	if columns <= 0 {
		panic(fmt.Sprintf("grid: column count must be positive, got %d", columns))
	}
}
