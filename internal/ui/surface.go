package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// newSurface creates the rounded light-gray background used by chips, cards and rows
func newSurface(radius float32) *canvas.Rectangle {
	rect := canvas.NewRectangle(theme.Color(ColorNameSurface))
	rect.CornerRadius = radius
	return rect
}

// newFixedImage creates a contained image of a fixed square size.
// A nil resource renders as an empty area of the same size.
func newFixedImage(res fyne.Resource, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(size, size))
	return img
}

// NewCircularButton creates an icon-only button. Wrap it with fixedSize to
// get the round toolbar look.
func NewCircularButton(icon fyne.Resource, onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon("", icon, onTapped)
	btn.Importance = widget.MediumImportance
	return btn
}

// fixedSize pins obj to a square of side size
func fixedSize(obj fyne.CanvasObject, size float32) *fyne.Container {
	return container.NewGridWrap(fyne.NewSize(size, size), obj)
}

// padded adds horizontal and vertical section padding around obj
func padded(obj fyne.CanvasObject, horizontal, vertical float32) *fyne.Container {
	return container.New(&paddingLayout{horizontal: horizontal, vertical: vertical}, obj)
}

// paddingLayout insets every object by a fixed amount on each side
type paddingLayout struct {
	horizontal, vertical float32
}

func (l *paddingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(l.horizontal, l.vertical)
	inner := fyne.NewSize(size.Width-2*l.horizontal, size.Height-2*l.vertical)
	for _, obj := range objects {
		obj.Move(pos)
		obj.Resize(inner)
	}
}

func (l *paddingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize.Add(fyne.NewSize(2*l.horizontal, 2*l.vertical))
}
