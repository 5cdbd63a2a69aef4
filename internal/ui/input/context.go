package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Index     int
	Total     int
	IsDragged bool
}

// CurrentIndex returns the active panel
func (c *ModelContext) CurrentIndex() int {
	return c.Index
}

// TotalPanels returns the number of panels
func (c *ModelContext) TotalPanels() int {
	return c.Total
}

// Dragging reports whether a pan is in progress
func (c *ModelContext) Dragging() bool {
	return c.IsDragged
}
