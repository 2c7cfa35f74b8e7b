package ui

// Package ui contains the Fyne user interface of the recipe screen: the
// parallax header, recipe details, serving calculator, tab strip and the
// ingredients grid. Screen state lives in model; ui only renders it and
// forwards taps to the mutators.
