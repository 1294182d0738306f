// Package debugui provides the Dear ImGui overlay for inspecting live
// markers and firing spawn/clear commands.
package debugui

// Panel is anything that renders ImGui widgets once per frame.
type Panel interface {
	Render()
}

// Overlay holds the panels drawn each frame, in registration order.
type Overlay struct {
	panels []Panel
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a panel.
func (o *Overlay) Add(p Panel) {
	o.panels = append(o.panels, p)
}

// Render draws every registered panel. Call between the backend's
// BeginFrame and EndFrame.
func (o *Overlay) Render() {
	for _, p := range o.panels {
		p.Render()
	}
}
