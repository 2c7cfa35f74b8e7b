package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/logger"
)

// Tab identifies a section of the recipe details
type Tab int

const (
	TabIngredients Tab = iota
	TabTools
	TabSteps
)

// String returns the tab caption
func (t Tab) String() string {
	switch t {
	case TabIngredients:
		return TextIngredients
	case TabTools:
		return TextTools
	case TabSteps:
		return TextSteps
	default:
		return "Unknown"
	}
}

// Tabs lists the tabs in display order
func Tabs() []Tab {
	return []Tab{TabIngredients, TabTools, TabSteps}
}

// IngredientsHeader is the tab strip above the ingredients grid
type IngredientsHeader struct {
	ctx      context.Context
	active   Tab
	buttons  []*widget.Button
	onChange func(Tab)
	content  fyne.CanvasObject
}

// NewIngredientsHeader creates the tab strip with the Ingredients tab active
func NewIngredientsHeader(ctx context.Context, onChange func(Tab)) *IngredientsHeader {
	h := &IngredientsHeader{
		ctx:      ctx,
		active:   TabIngredients,
		onChange: onChange,
	}

	objects := make([]fyne.CanvasObject, 0, len(Tabs()))
	for _, tab := range Tabs() {
		btn := widget.NewButton(tab.String(), func() { h.Select(tab) })
		h.buttons = append(h.buttons, btn)
		objects = append(objects, btn)
	}
	h.updateButtons()

	strip := container.NewStack(
		newSurface(SurfaceRadius),
		container.NewPadded(container.NewGridWithColumns(len(objects), objects...)),
	)
	h.content = padded(container.New(&minHeightLayout{height: TabHeight}, strip), SectionPadding, SectionPadding)
	return h
}

// Container returns the tab strip
func (h *IngredientsHeader) Container() fyne.CanvasObject {
	return h.content
}

// Active returns the selected tab
func (h *IngredientsHeader) Active() Tab {
	return h.active
}

// Select makes tab the active tab and notifies the change callback
func (h *IngredientsHeader) Select(tab Tab) {
	if tab == h.active {
		return
	}
	h.active = tab
	h.updateButtons()

	logger.Debug(h.ctx, "tab selected", zap.Stringer("tab", tab))
	if h.onChange != nil {
		h.onChange(tab)
	}
}

func (h *IngredientsHeader) updateButtons() {
	for i, btn := range h.buttons {
		if Tab(i) == h.active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}

// minHeightLayout stacks objects and enforces a minimum height
type minHeightLayout struct {
	height float32
}

func (l *minHeightLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
}

func (l *minHeightLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, l.height)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}
