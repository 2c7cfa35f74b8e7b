package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
)

// NewBasicInfo renders cooking time, energy and rating side by side
func NewBasicInfo(ctx context.Context, recipe model.Recipe, res *Resources) fyne.CanvasObject {
	return padded(container.NewGridWithColumns(3,
		newInfoColumn(theme.NewPrimaryThemedResource(theme.HistoryIcon()), recipe.CookingTime),
		newInfoColumn(primaryIcon(ctx, res, IconFlame), recipe.Energy),
		newInfoColumn(primaryIcon(ctx, res, IconStar), recipe.Rating),
	), 0, SectionPadding/2)
}

// NewDescription renders the recipe description as wrapping text
func NewDescription(recipe model.Recipe) fyne.CanvasObject {
	label := widget.NewLabel(recipe.Description)
	label.Wrapping = fyne.TextWrapWord
	return padded(label, SectionPadding/2, SectionPadding/2)
}

func newInfoColumn(icon fyne.Resource, text string) fyne.CanvasObject {
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter

	return container.NewVBox(
		container.NewCenter(newFixedImage(icon, InfoIconSize)),
		label,
	)
}

// primaryIcon resolves an embedded icon tinted with the primary colour.
// Unknown names yield nil, which renders as nothing.
func primaryIcon(ctx context.Context, res *Resources, name string) fyne.Resource {
	icon, ok := res.Image(name)
	if !ok {
		logger.Warn(ctx, "icon not found", zap.String("icon", name))
		return nil
	}
	return theme.NewPrimaryThemedResource(icon)
}
