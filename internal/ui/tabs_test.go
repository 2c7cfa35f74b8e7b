package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestTab_String(t *testing.T) {
	tests := []struct {
		tab      Tab
		expected string
	}{
		{TabIngredients, "Ingredients"},
		{TabTools, "Tools"},
		{TabSteps, "Steps"},
		{Tab(42), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tab.String())
	}
}

func TestIngredientsHeader_Select(t *testing.T) {
	newTestApp(t)

	var changes []Tab
	h := NewIngredientsHeader(testContext(), func(tab Tab) {
		changes = append(changes, tab)
	})
	w := test.NewWindow(h.Container())
	defer w.Close()

	assert.Equal(t, TabIngredients, h.Active())
	assert.Equal(t, widget.HighImportance, h.buttons[TabIngredients].Importance)
	assert.Equal(t, widget.LowImportance, h.buttons[TabTools].Importance)

	test.Tap(h.buttons[TabSteps])
	assert.Equal(t, TabSteps, h.Active())
	assert.Equal(t, widget.HighImportance, h.buttons[TabSteps].Importance)
	assert.Equal(t, widget.LowImportance, h.buttons[TabIngredients].Importance)

	// Selecting the active tab is a no-op
	test.Tap(h.buttons[TabSteps])

	assert.Equal(t, []Tab{TabSteps}, changes)
}
