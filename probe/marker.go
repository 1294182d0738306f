package probe

import "github.com/go-gl/mathgl/mgl64"

// Marker is one spawned debug visual: a sampled point plus everything a
// renderer needs to draw and label it.
type Marker struct {
	ID       uint32
	Index    int
	Position mgl64.Vec3
	Distance float64
	Label    string
	Color    Color
	Size     float64
}

// ColorPolicy selects how spawned markers are colored.
type ColorPolicy int

const (
	// ColorFixed applies VisualConfig.Color to every marker.
	ColorFixed ColorPolicy = iota
	// ColorRandomPerMarker draws an independent bright color per marker.
	ColorRandomPerMarker
)

// VisualConfig describes how markers look; it has no effect on where they go.
type VisualConfig struct {
	Size   float64
	Policy ColorPolicy
	Color  Color
}

// DefaultVisualConfig returns the visual settings used when nothing is
// configured: mid-gray half-meter markers with randomized colors.
func DefaultVisualConfig() VisualConfig {
	return VisualConfig{
		Size:   0.5,
		Policy: ColorRandomPerMarker,
		Color:  Color{180, 180, 180},
	}
}
