package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cookbook/internal/config"
	"github.com/ytget/cookbook/internal/model"
)

func newTestRootUI(t *testing.T, recipe model.Recipe) (*RootUI, fyne.Window) {
	t.Helper()
	app := newTestApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(app, config.DefaultGridColumns)
	counter := model.NewServingCounter(model.DefaultServings)
	ui := NewRootUI(testContext(), w, app, recipe, counter, settings, mustLoadResources(t))
	return ui, w
}

func ingredientRows(t *testing.T, ui *RootUI) []fyne.CanvasObject {
	t.Helper()
	require.Len(t, ui.tabContent.Objects, 1)
	grid, ok := ui.tabContent.Objects[0].(*fyne.Container)
	require.True(t, ok)
	require.Len(t, grid.Objects, 1)
	rows, ok := grid.Objects[0].(*fyne.Container)
	require.True(t, ok)
	return rows.Objects
}

func TestNewRootUI(t *testing.T) {
	recipe := testRecipe()
	ui, w := newTestRootUI(t, recipe)

	assert.Equal(t, recipe.Title, w.Title())
	assert.NotNil(t, w.Content())
	assert.Equal(t, "6", ui.serving.Text())
	assert.Equal(t, TabIngredients, ui.tabs.Active())

	// 8 ingredients in 3 columns
	assert.Len(t, ingredientRows(t, ui), 3)
}

func TestRootUI_ServingButtons(t *testing.T) {
	ui, _ := newTestRootUI(t, testRecipe())

	test.Tap(ui.serving.plusBtn)
	assert.Equal(t, "7", ui.serving.Text())

	test.Tap(ui.serving.minusBtn)
	test.Tap(ui.serving.minusBtn)
	assert.Equal(t, "5", ui.serving.Text())
	assert.Equal(t, 5, ui.counter.Value())
}

func TestRootUI_EmptyIngredients(t *testing.T) {
	recipe := testRecipe()
	recipe.Ingredients = nil
	ui, _ := newTestRootUI(t, recipe)

	assert.Empty(t, ingredientRows(t, ui))
}

func TestRootUI_Tabs(t *testing.T) {
	ui, _ := newTestRootUI(t, testRecipe())

	ui.tabs.Select(TabTools)

	require.Len(t, ui.tabContent.Objects, 1)
	content := ui.tabContent.Objects[0].(*fyne.Container)
	label, ok := content.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, TextNothingHere, label.Text)
}

func TestRootUI_Favorite(t *testing.T) {
	ui, _ := newTestRootUI(t, testRecipe())
	assert.False(t, ui.favorite)

	test.Tap(ui.favoriteBtn)
	assert.True(t, ui.favorite)
	require.NotNil(t, ui.favoriteBtn.Icon)

	test.Tap(ui.favoriteBtn)
	assert.False(t, ui.favorite)
}

func TestRootUI_HeaderCollapse(t *testing.T) {
	ui, _ := newTestRootUI(t, testRecipe())
	assert.False(t, ui.toolbarTitle.Visible())

	ui.header.OnScrolled(fyne.NewPos(0, MaxHeaderTravel))
	assert.True(t, ui.toolbarTitle.Visible())
	assert.True(t, ui.toolbarBg.Visible())

	ui.header.OnScrolled(fyne.NewPos(0, 0))
	assert.False(t, ui.toolbarTitle.Visible())
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, _ := newTestRootUI(t, testRecipe())

	test.Tap(ui.serving.plusBtn)
	ui.tabs.Select(TabSteps)

	ui.settings.SetGridColumns(2)
	ui.settings.SetThemeVariant(config.ThemeDark)
	ui.applySettings()

	// Counter state and active tab survive the rebuild
	assert.Equal(t, "7", ui.serving.Text())
	assert.Equal(t, TabSteps, ui.tabs.Active())

	ui.tabs.Select(TabIngredients)
	assert.Len(t, ingredientRows(t, ui), 4)
}
