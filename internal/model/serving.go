package model

// DefaultServings is the serving count a recipe screen starts with
const DefaultServings = 6

// ServingCounter holds the serving size shown on the recipe screen.
// It has no bounds: decrementing past zero yields negative values.
// It is owned by the UI goroutine and is not safe for concurrent use.
type ServingCounter struct {
	value    int
	onUpdate func(int) // callback for UI updates
}

// NewServingCounter creates a counter starting at initial
func NewServingCounter(initial int) *ServingCounter {
	return &ServingCounter{value: initial}
}

// SetUpdateCallback sets the function invoked with the new value after every change
func (c *ServingCounter) SetUpdateCallback(callback func(int)) {
	c.onUpdate = callback
}

// Value returns the current serving count
func (c *ServingCounter) Value() int {
	return c.value
}

// Increment adds one serving
func (c *ServingCounter) Increment() {
	c.value++
	c.notifyUpdate()
}

// Decrement removes one serving
func (c *ServingCounter) Decrement() {
	c.value--
	c.notifyUpdate()
}

func (c *ServingCounter) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate(c.value)
	}
}
