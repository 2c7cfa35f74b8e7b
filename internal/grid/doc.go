package grid

// Package grid arranges an ordered list of items into rows of a fixed column
// count. Incomplete trailing rows are padded with empty cells so every row has
// the same number of equal-width cells and the last items stay left aligned.
