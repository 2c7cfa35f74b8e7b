package ui

import (
	"context"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
)

// ServingCalculator shows the serving count with minus and plus buttons
type ServingCalculator struct {
	ctx     context.Context
	counter *model.ServingCounter

	valueLabel *widget.Label
	minusBtn   *widget.Button
	plusBtn    *widget.Button

	content fyne.CanvasObject
}

// NewServingCalculator creates the serving row bound to counter.
// It registers itself as the counter's update callback.
func NewServingCalculator(ctx context.Context, counter *model.ServingCounter) *ServingCalculator {
	sc := &ServingCalculator{
		ctx:     ctx,
		counter: counter,
	}
	sc.createUI()
	counter.SetUpdateCallback(sc.onServingChanged)
	sc.render(counter.Value())
	return sc
}

// Container returns the row to place in the screen
func (sc *ServingCalculator) Container() fyne.CanvasObject {
	return sc.content
}

// Text returns the displayed serving count
func (sc *ServingCalculator) Text() string {
	return sc.valueLabel.Text
}

func (sc *ServingCalculator) createUI() {
	label := widget.NewLabel(TextServing)
	label.TextStyle = fyne.TextStyle{Bold: true}

	sc.valueLabel = widget.NewLabel("")
	sc.valueLabel.TextStyle = fyne.TextStyle{Bold: true}
	sc.valueLabel.Alignment = fyne.TextAlignCenter

	sc.minusBtn = NewCircularButton(theme.ContentRemoveIcon(), sc.counter.Decrement)
	sc.plusBtn = NewCircularButton(theme.ContentAddIcon(), sc.counter.Increment)

	controls := container.NewHBox(
		container.NewCenter(fixedSize(sc.minusBtn, CircularButtonSize)),
		sc.valueLabel,
		container.NewCenter(fixedSize(sc.plusBtn, CircularButtonSize)),
	)

	row := container.NewStack(
		newSurface(SurfaceRadius),
		padded(container.NewBorder(nil, nil, nil, controls, label), SectionPadding, 0),
	)
	sc.content = padded(row, SectionPadding, SectionPadding/2)
}

func (sc *ServingCalculator) onServingChanged(value int) {
	logger.Debug(sc.ctx, "serving changed", zap.Int("servings", value))
	sc.render(value)
}

func (sc *ServingCalculator) render(value int) {
	sc.valueLabel.SetText(strconv.Itoa(value))
}
