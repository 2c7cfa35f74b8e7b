package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestParallaxOffsets(t *testing.T) {
	tests := []struct {
		name     string
		scrollY  float32
		expected Offsets
	}{
		{"top", 0, Offsets{}},
		{"overscroll", -20, Offsets{}},
		{"half speed", 100, Offsets{Image: 50}},
		{"collapsed", MaxHeaderTravel, Offsets{Image: MaxHeaderTravel / 2, Collapsed: true}},
		{"clamped", MaxHeaderTravel + 500, Offsets{Image: MaxHeaderTravel / 2, Collapsed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParallaxOffsets(tt.scrollY))
		})
	}
}

func TestParallaxHeader_OnScrolled(t *testing.T) {
	newTestApp(t)
	res := mustLoadResources(t)

	var events []bool
	header := NewParallaxHeader(testContext(), testRecipe(), res, func(collapsed bool) {
		events = append(events, collapsed)
	})

	header.OnScrolled(fyne.NewPos(0, 40))
	assert.Equal(t, float32(20), header.Offsets().Image)
	assert.Empty(t, events)

	header.OnScrolled(fyne.NewPos(0, MaxHeaderTravel+10))
	header.OnScrolled(fyne.NewPos(0, MaxHeaderTravel+20))
	header.OnScrolled(fyne.NewPos(0, 0))

	assert.Equal(t, []bool{true, false}, events)
	assert.Equal(t, Offsets{}, header.Offsets())
}

func TestParallaxHeader_MinSize(t *testing.T) {
	newTestApp(t)

	header := NewParallaxHeader(testContext(), testRecipe(), mustLoadResources(t), nil)
	assert.Equal(t, HeaderHeight, header.Container().MinSize().Height)
}
