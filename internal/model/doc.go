package model

// Package model defines the display records rendered by the recipe screen
// (Recipe, Ingredient) and the serving counter, the only mutable state of the
// screen. Nothing here depends on the UI toolkit.
