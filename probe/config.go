package probe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// SamplingConfig describes one spawn request: how many markers and where the
// distance band sits. When CenterOverride is nil the live camera position is
// the sampling center and the cone follows the camera heading; with an
// override the cone stays fixed in world space.
type SamplingConfig struct {
	Count          int
	MinDistance    float64
	MaxDistance    float64
	CenterOverride *mgl64.Vec3
}

// Validate rejects configurations that would produce a degenerate or inverted
// sampling band. A zero-width band (min == max) is valid: it is a
// single-radius shell.
func (c SamplingConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("sampling config: count %d is negative", c.Count)
	}
	if c.MinDistance <= 0 {
		return fmt.Errorf("sampling config: min distance %g must be positive", c.MinDistance)
	}
	if c.MaxDistance < c.MinDistance {
		return fmt.Errorf("sampling config: max distance %g below min distance %g",
			c.MaxDistance, c.MinDistance)
	}
	return nil
}
