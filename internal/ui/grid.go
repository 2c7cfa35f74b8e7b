package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/cookbook/internal/grid"
)

// NewEasyGrid lays items out in rows of columns equal-width cells. Trailing
// cells of the last row are spacers so the remaining items stay left aligned.
// Panics if columns is not positive.
func NewEasyGrid[T any](columns int, items []T, content func(T) fyne.CanvasObject) *fyne.Container {
	rows := grid.Render(columns, items,
		func(item T) fyne.CanvasObject {
			return container.NewVBox(content(item)) // top-start aligned within the cell
		},
		func() fyne.CanvasObject {
			return layout.NewSpacer()
		},
	)

	box := container.NewVBox()
	for _, row := range rows {
		box.Add(container.NewGridWithColumns(columns, row...))
	}
	return box
}
