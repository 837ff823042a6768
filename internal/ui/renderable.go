package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	return f()
}
