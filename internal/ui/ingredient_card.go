package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
)

// NewIngredientCard renders an ingredient as an icon card with title and amount
func NewIngredientCard(ctx context.Context, ingredient model.Ingredient, res *Resources) fyne.CanvasObject {
	image, ok := res.Image(ingredient.Image)
	if !ok {
		logger.Warn(ctx, "ingredient image not found",
			zap.String("ingredient", ingredient.Title),
			zap.String("image", ingredient.Image))
	}

	card := container.NewStack(
		newSurface(CardRadius),
		container.NewCenter(newFixedImage(image, CardIconSize)),
	)

	title := widget.NewLabel(ingredient.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	subtitle := canvas.NewText(ingredient.Subtitle, theme.Color(ColorNameSubtle))
	subtitle.TextSize = SubtitleTextSize

	return container.NewVBox(
		container.NewGridWrap(fyne.NewSize(CardSize, CardSize), card),
		container.NewGridWrap(fyne.NewSize(CardSize, title.MinSize().Height), title),
		container.NewPadded(subtitle),
	)
}

// NewIngredientsGrid renders the ingredient cards of a recipe
func NewIngredientsGrid(ctx context.Context, columns int, ingredients []model.Ingredient, res *Resources) fyne.CanvasObject {
	return padded(NewEasyGrid(columns, ingredients, func(ingredient model.Ingredient) fyne.CanvasObject {
		return NewIngredientCard(ctx, ingredient, res)
	}), SectionPadding, SectionPadding)
}
