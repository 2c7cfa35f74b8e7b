package ui

import (
	"strconv"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cookbook/internal/model"
)

func TestNewEasyGrid(t *testing.T) {
	newTestApp(t)

	items := []int{0, 1, 2, 3, 4, 5, 6}
	box := NewEasyGrid(3, items, func(i int) fyne.CanvasObject {
		return widget.NewLabel(strconv.Itoa(i))
	})

	require.Len(t, box.Objects, 3)
	for _, obj := range box.Objects {
		row, ok := obj.(*fyne.Container)
		require.True(t, ok)
		assert.Len(t, row.Objects, 3)
	}

	last := box.Objects[2].(*fyne.Container)
	cell := last.Objects[0].(*fyne.Container)
	assert.Equal(t, "6", cell.Objects[0].(*widget.Label).Text)

	for _, obj := range last.Objects[1:] {
		_, isSpacer := obj.(layout.SpacerObject)
		assert.True(t, isSpacer, "padding cells should be spacers")
	}
}

func TestNewEasyGrid_Empty(t *testing.T) {
	newTestApp(t)

	box := NewEasyGrid(3, []string{}, func(s string) fyne.CanvasObject {
		return widget.NewLabel(s)
	})
	assert.Empty(t, box.Objects)
}

func TestNewEasyGrid_InvalidColumns(t *testing.T) {
	newTestApp(t)

	assert.Panics(t, func() {
		NewEasyGrid(0, []string{"a"}, func(s string) fyne.CanvasObject {
			return widget.NewLabel(s)
		})
	})
}

func TestNewIngredientsGrid_MissingImage(t *testing.T) {
	newTestApp(t)

	ingredients := []model.Ingredient{
		{Image: "unknown", Title: "Salt", Subtitle: "1 pinch"},
	}

	require.NotPanics(t, func() {
		grid := NewIngredientsGrid(testContext(), 3, ingredients, mustLoadResources(t))
		assert.NotNil(t, grid)
	})
}
