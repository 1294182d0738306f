package main

import (
	"fmt"
	"io"
	"math"
	"text/template"
	"time"

	"github.com/plus3/depthprobe/probe"
)

type Report struct {
	// Configuration
	Batches     int
	Count       int
	MinDistance float64
	MaxDistance float64
	Seed        uint64

	// Results
	TotalTime    time.Duration
	TotalMarkers int
	DistanceMin  float64
	DistanceMax  float64
	distanceSum  float64
	ElevationMax float64
	OutOfBand    int
	SpawnTime    Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Observe folds one batch of markers into the distance/elevation aggregates.
func (r *Report) Observe(cam *probe.Camera, markers []*probe.Marker) {
	forward := cam.Forward()

	for _, m := range markers {
		if r.TotalMarkers == 0 {
			r.DistanceMin = m.Distance
			r.DistanceMax = m.Distance
		}
		r.TotalMarkers++

		if m.Distance < r.DistanceMin {
			r.DistanceMin = m.Distance
		}
		if m.Distance > r.DistanceMax {
			r.DistanceMax = m.Distance
		}
		r.distanceSum += m.Distance

		if m.Distance < r.MinDistance-1e-9 || m.Distance > r.MaxDistance+1e-9 {
			r.OutOfBand++
		}

		elevation := math.Acos(math.Min(1, m.Position.Sub(cam.Position).Normalize().Dot(forward)))
		if elevation > r.ElevationMax {
			r.ElevationMax = elevation
		}
	}
}

func (r *Report) DistanceAvg() float64 {
	if r.TotalMarkers == 0 {
		return 0
	}
	return r.distanceSum / float64(r.TotalMarkers)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Probe Batch Report

## Configuration
- **Batches:** {{.Batches}}
- **Markers per Batch:** {{.Count}}
- **Distance Band:** [{{.MinDistance}}, {{.MaxDistance}}]
- **Seed:** {{.Seed}}

## Results
- **Total Markers Spawned:** {{.TotalMarkers}}
- **Total Time:** {{.TotalTime}}
- **Distance:** min {{printf "%.4f" .DistanceMin}} / avg {{printf "%.4f" .DistanceAvg}} / max {{printf "%.4f" .DistanceMax}}
- **Max Elevation Off Forward:** {{deg .ElevationMax}}
- **Out-of-Band Markers:** {{.OutOfBand}}
- **Spawn Time:**
  - **Avg:** {{.SpawnTime.Avg}}
  - **Min:** {{.SpawnTime.Min}}
  - **Max:** {{.SpawnTime.Max}}
`

	fm := template.FuncMap{
		"deg": func(rad float64) string {
			return fmt.Sprintf("%.2f°", rad*180/math.Pi)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
