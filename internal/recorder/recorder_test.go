package recorder_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/depthprobe/internal/recorder"
	"github.com/plus3/depthprobe/probe"
)

func openTestRecorder(t *testing.T) *recorder.Recorder {
	t.Helper()
	rec, err := recorder.Open(zerolog.Nop(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })
	return rec
}

func spawnTestMarkers(t *testing.T, count int) (probe.SamplingConfig, []*probe.Marker) {
	t.Helper()
	container := probe.NewContainer(zerolog.Nop(), probe.NewShellSampler(5))
	cam := probe.NewCamera(mgl64.Vec3{})

	cfg := probe.SamplingConfig{Count: count, MinDistance: 1, MaxDistance: 4}
	require.NoError(t, container.SpawnAll(cam, cfg, probe.DefaultVisualConfig()))
	return cfg, container.Markers()
}

func TestRecordRoundTrip(t *testing.T) {
	rec := openTestRecorder(t)

	cfg, markers := spawnTestMarkers(t, 12)
	require.NoError(t, rec.Record(cfg, markers))

	batches, err := rec.Batches()
	require.NoError(t, err)
	require.Len(t, batches, 1)

	batch := batches[0]
	assert.Equal(t, 12, batch.Count)
	assert.Equal(t, 1.0, batch.MinDistance)
	assert.Equal(t, 4.0, batch.MaxDistance)
	assert.False(t, batch.FixedCenter)
	require.Len(t, batch.Markers, 12)

	for i, row := range batch.Markers {
		assert.Equal(t, markers[i].Index, row.Idx)
		assert.InDelta(t, markers[i].Distance, row.Distance, 1e-9)
		assert.Equal(t, markers[i].Label, row.Label)
		assert.InDelta(t, markers[i].Position.X(), row.X, 1e-9)
	}
}

func TestRecordMultipleBatches(t *testing.T) {
	rec := openTestRecorder(t)

	cfg, markers := spawnTestMarkers(t, 3)
	require.NoError(t, rec.Record(cfg, markers))
	require.NoError(t, rec.Record(cfg, markers))

	batches, err := rec.Batches()
	require.NoError(t, err)
	assert.Len(t, batches, 2)
}

func TestRecordEmptyBatch(t *testing.T) {
	rec := openTestRecorder(t)

	cfg, markers := spawnTestMarkers(t, 0)
	require.NoError(t, rec.Record(cfg, markers))

	batches, err := rec.Batches()
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, 0, batches[0].Count)
	assert.Empty(t, batches[0].Markers)
}
