package probe

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

// ErrNoCamera is returned when a spawn is requested without a camera.
// Marker distances are always measured from the live camera, so there is
// nothing sensible to do without one.
var ErrNoCamera = errors.New("probe: no camera")

// Container owns the lifetime of all currently-live markers. It is created
// once per session; markers are destroyed en masse, the container persists.
type Container struct {
	log     zerolog.Logger
	sampler *ShellSampler

	markers []*Marker
	byID    *intmap.Map[uint32, *Marker]
	nextID  uint32
}

// NewContainer creates an empty marker container using the given sampler.
func NewContainer(log zerolog.Logger, sampler *ShellSampler) *Container {
	return &Container{
		log:     log,
		sampler: sampler,
		byID:    intmap.New[uint32, *Marker](64),
	}
}

// SpawnAll clears any prior markers, then samples and creates exactly
// cfg.Count new ones. With a nil camera no mutation occurs. Each marker
// records its distance from the camera at spawn time and is labeled with its
// index and that distance.
func (c *Container) SpawnAll(cam *Camera, cfg SamplingConfig, vis VisualConfig) error {
	if cam == nil {
		return ErrNoCamera
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	center := cam.Position
	basis := cam.Orientation
	if cfg.CenterOverride != nil {
		center = *cfg.CenterOverride
		basis = mgl64.QuatIdent()
	}

	c.ClearAll()

	batch := uuid.New()
	for i := 0; i < cfg.Count; i++ {
		pos := c.sampler.Sample(center, basis, cfg.MinDistance, cfg.MaxDistance)
		dist := pos.Sub(cam.Position).Len()

		col := vis.Color
		if vis.Policy == ColorRandomPerMarker {
			col = randomColor(c.sampler.Float64)
		}

		m := &Marker{
			ID:       c.nextID,
			Index:    i,
			Position: pos,
			Distance: dist,
			Label:    fmt.Sprintf("marker-%d @ %.2fm", i, dist),
			Color:    col,
			Size:     vis.Size,
		}
		c.nextID++

		c.markers = append(c.markers, m)
		c.byID.Put(m.ID, m)
	}

	c.log.Info().
		Str("batch", batch.String()).
		Int("count", cfg.Count).
		Float64("min_distance", cfg.MinDistance).
		Float64("max_distance", cfg.MaxDistance).
		Bool("fixed_center", cfg.CenterOverride != nil).
		Msg("spawned markers")

	return nil
}

// ClearAll destroys every currently-owned marker. Clearing an empty
// container is a no-op.
func (c *Container) ClearAll() {
	c.markers = c.markers[:0]
	c.byID.Clear()
}

// Markers returns the live markers in spawn order. The returned slice is a
// copy; the container keeps exclusive ownership of the instances.
func (c *Container) Markers() []*Marker {
	out := make([]*Marker, len(c.markers))
	copy(out, c.markers)
	return out
}

// Get returns the marker with the given ID, if it is still live.
func (c *Container) Get(id uint32) (*Marker, bool) {
	return c.byID.Get(id)
}

// Len returns the number of live markers.
func (c *Container) Len() int {
	return len(c.markers)
}
