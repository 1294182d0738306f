package probe_test

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/depthprobe/probe"
)

func TestHSVKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    probe.Color
	}{
		{"red", 0, 1, 1, probe.Color{255, 0, 0}},
		{"green", 1.0 / 3.0, 1, 1, probe.Color{0, 255, 0}},
		{"blue", 2.0 / 3.0, 1, 1, probe.Color{0, 0, 255}},
		{"white", 0, 0, 1, probe.Color{255, 255, 255}},
		{"black", 0, 0, 0, probe.Color{0, 0, 0}},
		{"gray", 0.5, 0, 0.5, probe.Color{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, probe.HSV(tt.h, tt.s, tt.v))
		})
	}
}

func TestColorRGBA(t *testing.T) {
	c := probe.Color{10, 20, 30}
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c.RGBA())
}

func TestRandomColorsAreBright(t *testing.T) {
	container := probe.NewContainer(zerolog.Nop(), probe.NewShellSampler(11))
	cam := probe.NewCamera(mgl64.Vec3{})

	vis := probe.VisualConfig{Size: 0.5, Policy: probe.ColorRandomPerMarker}
	cfg := probe.SamplingConfig{Count: 200, MinDistance: 1, MaxDistance: 2}
	require.NoError(t, container.SpawnAll(cam, cfg, vis))

	for _, m := range container.Markers() {
		// Value >= 0.7 means the brightest channel stays high.
		maxChan := max(m.Color[0], m.Color[1], m.Color[2])
		assert.GreaterOrEqual(t, maxChan, uint8(178))
	}
}
