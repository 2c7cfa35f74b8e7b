package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
)

// MaxHeaderTravel is the scroll distance after which the header is considered
// collapsed: only the title bar height would remain below the toolbar.
const MaxHeaderTravel = HeaderHeight - 2*ToolbarHeight

// Offsets describes how the parallax header is drawn for a scroll position
type Offsets struct {
	Image     float32 // downward shift of the hero image inside the header
	Collapsed bool    // header scrolled away, toolbar shows the title
}

// ParallaxOffsets maps a scroll position to header offsets. The header scrolls
// with the content while the hero image lags behind at half speed, up to
// MaxHeaderTravel.
func ParallaxOffsets(scrollY float32) Offsets {
	travel := scrollY
	if travel < 0 {
		travel = 0
	}
	if travel > MaxHeaderTravel {
		travel = MaxHeaderTravel
	}
	return Offsets{
		Image:     travel * ImageParallaxFactor,
		Collapsed: scrollY >= MaxHeaderTravel,
	}
}

// ParallaxHeader is the first item of the scrolling content: the hero image
// with its fade, the category chip and the title bar.
type ParallaxHeader struct {
	ctx     context.Context
	layout  *headerLayout
	content *fyne.Container

	onCollapse func(bool)
}

// NewParallaxHeader creates the header for recipe. onCollapse is called when
// the header collapses or expands.
func NewParallaxHeader(ctx context.Context, recipe model.Recipe, res *Resources, onCollapse func(bool)) *ParallaxHeader {
	hero, ok := res.Image(recipe.HeroImage)
	if !ok {
		logger.Warn(ctx, "hero image not found", zap.String("image", recipe.HeroImage))
	}
	image := canvas.NewImageFromResource(hero)
	image.FillMode = canvas.ImageFillContain

	background := theme.Color(theme.ColorNameBackground)
	gradient := canvas.NewVerticalGradient(color.Transparent, background)

	chipLabel := widget.NewLabel(recipe.Category)
	chipLabel.TextStyle = fyne.TextStyle{Bold: true}
	chip := container.NewStack(newSurface(ChipRadius), padded(chipLabel, SectionPadding/2, 0))

	title := canvas.NewText(recipe.Title, theme.Color(theme.ColorNameForeground))
	title.TextSize = TitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}

	titleBar := container.NewStack(
		canvas.NewRectangle(background),
		container.New(&centerLeftLayout{inset: SectionPadding}, title),
	)

	l := &headerLayout{}
	return &ParallaxHeader{
		ctx:        ctx,
		layout:     l,
		content:    container.New(l, image, gradient, chip, titleBar),
		onCollapse: onCollapse,
	}
}

// Container returns the header
func (h *ParallaxHeader) Container() fyne.CanvasObject {
	return h.content
}

// Offsets returns the current offsets
func (h *ParallaxHeader) Offsets() Offsets {
	return h.layout.offsets
}

// OnScrolled updates the header for the new scroll position
func (h *ParallaxHeader) OnScrolled(pos fyne.Position) {
	offsets := ParallaxOffsets(pos.Y)
	previous := h.layout.offsets
	if offsets == previous {
		return
	}
	h.layout.offsets = offsets
	h.content.Refresh()

	if offsets.Collapsed != previous.Collapsed {
		logger.Debug(h.ctx, "header collapse changed", zap.Bool("collapsed", offsets.Collapsed))
		if h.onCollapse != nil {
			h.onCollapse(offsets.Collapsed)
		}
	}
}

// headerLayout positions image, gradient, chip and title bar, in that order.
// Later objects are drawn on top, so the title bar and the content below the
// header cover the part of the image pushed down by the parallax offset.
type headerLayout struct {
	offsets Offsets
}

func (l *headerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 4 {
		return
	}
	image, gradient, chip, titleBar := objects[0], objects[1], objects[2], objects[3]

	imageHeight := HeaderHeight - ToolbarHeight
	imageTop := l.offsets.Image

	image.Move(fyne.NewPos(0, imageTop))
	image.Resize(fyne.NewSize(size.Width, imageHeight))

	fadeTop := imageHeight * GradientStart
	gradient.Move(fyne.NewPos(0, imageTop+fadeTop))
	gradient.Resize(fyne.NewSize(size.Width, imageHeight-fadeTop))

	chipSize := chip.MinSize()
	chip.Move(fyne.NewPos(SectionPadding, imageTop+imageHeight-chipSize.Height-SectionPadding/2))
	chip.Resize(chipSize)

	titleBar.Move(fyne.NewPos(0, imageHeight))
	titleBar.Resize(fyne.NewSize(size.Width, ToolbarHeight))
}

func (l *headerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, HeaderHeight)
}

// centerLeftLayout places objects at their min size, vertically centred and
// inset from the leading edge.
type centerLeftLayout struct {
	inset float32
}

func (l *centerLeftLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		minSize := obj.MinSize()
		obj.Resize(minSize)
		obj.Move(fyne.NewPos(l.inset, (size.Height-minSize.Height)/2))
	}
}

func (l *centerLeftLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize.AddWidthHeight(l.inset, 0)
}
