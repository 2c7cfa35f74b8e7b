package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/config"
	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
)

// RootUI is the recipe screen
type RootUI struct {
	ctx       context.Context
	window    fyne.Window
	app       fyne.App
	recipe    model.Recipe
	counter   *model.ServingCounter
	settings  *config.Settings
	resources *Resources
	mobile    *MobileUI

	// Screen components, rebuilt when settings change
	scroll       *container.Scroll
	header       *ParallaxHeader
	serving      *ServingCalculator
	tabs         *IngredientsHeader
	tabContent   *fyne.Container
	toolbarBg    *canvas.Rectangle
	toolbarTitle *widget.Label
	backBtn      *widget.Button
	favoriteBtn  *widget.Button

	favorite bool
}

// NewRootUI builds the recipe screen into window
func NewRootUI(
	ctx context.Context,
	window fyne.Window,
	app fyne.App,
	recipe model.Recipe,
	counter *model.ServingCounter,
	settings *config.Settings,
	resources *Resources,
) *RootUI {
	ctx = logger.WithFields(ctx,
		zap.Stringer("recipe_id", recipe.ID()),
		zap.String("recipe", recipe.Title))

	ui := &RootUI{
		ctx:       ctx,
		window:    window,
		app:       app,
		recipe:    recipe,
		counter:   counter,
		settings:  settings,
		resources: resources,
		mobile:    NewMobileUI(app),
	}

	window.SetTitle(recipe.Title)
	app.Settings().SetTheme(NewCookbookTheme(settings.GetThemeVariant()))

	ui.createMenu()
	ui.setupUI()

	logger.Info(ctx, "recipe screen ready",
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("columns", settings.GetGridColumns()),
		zap.Bool("mobile", ui.mobile.IsMobileDevice()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	activeTab := TabIngredients
	if ui.tabs != nil {
		activeTab = ui.tabs.Active()
	}

	ui.header = NewParallaxHeader(ui.ctx, ui.recipe, ui.resources, ui.onHeaderCollapse)
	ui.serving = NewServingCalculator(ui.ctx, ui.counter)
	ui.tabContent = container.NewStack()
	ui.tabs = NewIngredientsHeader(ui.ctx, ui.onTabChanged)
	ui.tabs.Select(activeTab)
	ui.showTab(ui.tabs.Active())

	details := container.NewVBox(
		NewBasicInfo(ui.ctx, ui.recipe, ui.resources),
		NewDescription(ui.recipe),
		ui.serving.Container(),
		ui.tabs.Container(),
		ui.tabContent,
	)

	// The opaque background lets the details cover the lagging hero image
	content := container.NewVBox(
		ui.header.Container(),
		container.NewStack(canvas.NewRectangle(theme.Color(theme.ColorNameBackground)), details),
	)

	ui.scroll = container.NewVScroll(content)
	ui.scroll.OnScrolled = ui.header.OnScrolled

	ui.window.SetContent(container.NewStack(ui.scroll, container.NewVBox(ui.createToolbar())))
}

// createToolbar creates the fixed top bar with back and favorite buttons
func (ui *RootUI) createToolbar() fyne.CanvasObject {
	ui.backBtn = NewCircularButton(theme.NavigateBackIcon(), ui.onBack)
	ui.favoriteBtn = NewCircularButton(ui.favoriteIcon(), ui.onToggleFavorite)

	ui.toolbarTitle = widget.NewLabel(ui.recipe.Title)
	ui.toolbarTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.toolbarTitle.Truncation = fyne.TextTruncateEllipsis
	ui.toolbarTitle.Hide()

	ui.toolbarBg = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	ui.toolbarBg.Hide()

	padding := ui.mobile.GetPadding()
	bar := container.NewBorder(nil, nil,
		container.NewCenter(fixedSize(ui.backBtn, CircularButtonSize)),
		container.NewCenter(fixedSize(ui.favoriteBtn, CircularButtonSize)),
		ui.toolbarTitle,
	)

	return container.NewStack(ui.toolbarBg, container.New(&minHeightLayout{height: ToolbarHeight}, padded(bar, padding, 0)))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(TextSettings, ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(TextFile, settingsItem)))
}

// onHeaderCollapse shows the title in the toolbar once the header is gone
func (ui *RootUI) onHeaderCollapse(collapsed bool) {
	if collapsed {
		ui.toolbarBg.Show()
		ui.toolbarTitle.Show()
	} else {
		ui.toolbarBg.Hide()
		ui.toolbarTitle.Hide()
	}
}

// onTabChanged swaps the content below the tab strip
func (ui *RootUI) onTabChanged(tab Tab) {
	ui.showTab(tab)
}

func (ui *RootUI) showTab(tab Tab) {
	var content fyne.CanvasObject
	switch tab {
	case TabIngredients:
		content = NewIngredientsGrid(ui.ctx, ui.settings.GetGridColumns(), ui.recipe.Ingredients, ui.resources)
	default:
		label := widget.NewLabel(TextNothingHere)
		label.Alignment = fyne.TextAlignCenter
		content = padded(label, SectionPadding, SectionPadding)
	}

	ui.tabContent.Objects = []fyne.CanvasObject{content}
	ui.tabContent.Refresh()
}

// onBack closes the screen; there is nothing to navigate back to
func (ui *RootUI) onBack() {
	logger.Info(ui.ctx, "back requested, closing window")
	ui.window.Close()
}

// onToggleFavorite flips the in-memory favorite flag
func (ui *RootUI) onToggleFavorite() {
	ui.favorite = !ui.favorite
	ui.favoriteBtn.SetIcon(ui.favoriteIcon())
	logger.Debug(ui.ctx, "favorite toggled", zap.Bool("favorite", ui.favorite))
}

func (ui *RootUI) favoriteIcon() fyne.Resource {
	name := IconFavorite
	if ui.favorite {
		name = IconFavoriteFilled
	}
	icon, ok := ui.resources.Image(name)
	if !ok {
		logger.Warn(ui.ctx, "icon not found", zap.String("icon", name))
		return nil
	}
	if ui.favorite {
		return theme.NewPrimaryThemedResource(icon)
	}
	return theme.NewThemedResource(icon)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.applySettings)
}

// applySettings re-themes and rebuilds the screen after settings were saved
func (ui *RootUI) applySettings() {
	logger.Info(ui.ctx, "settings saved",
		zap.String("theme", string(ui.settings.GetThemeVariant())),
		zap.Int("columns", ui.settings.GetGridColumns()))

	ui.app.Settings().SetTheme(NewCookbookTheme(ui.settings.GetThemeVariant()))
	ui.setupUI()
}
