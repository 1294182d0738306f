package probe_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/depthprobe/probe"
)

func TestSamplingConfigValidate(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}

	tests := []struct {
		name    string
		cfg     probe.SamplingConfig
		wantErr bool
	}{
		{"valid", probe.SamplingConfig{Count: 10, MinDistance: 1, MaxDistance: 5}, false},
		{"valid zero count", probe.SamplingConfig{Count: 0, MinDistance: 1, MaxDistance: 5}, false},
		{"valid degenerate band", probe.SamplingConfig{Count: 1, MinDistance: 3, MaxDistance: 3}, false},
		{"valid with override", probe.SamplingConfig{Count: 1, MinDistance: 1, MaxDistance: 2, CenterOverride: &center}, false},
		{"negative count", probe.SamplingConfig{Count: -1, MinDistance: 1, MaxDistance: 5}, true},
		{"zero min distance", probe.SamplingConfig{Count: 1, MinDistance: 0, MaxDistance: 5}, true},
		{"negative min distance", probe.SamplingConfig{Count: 1, MinDistance: -1, MaxDistance: 5}, true},
		{"inverted band", probe.SamplingConfig{Count: 1, MinDistance: 5, MaxDistance: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
