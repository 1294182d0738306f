// probe-batch runs headless spawn batches and reports distance and elevation
// statistics, for checking the sampler without a window. Batches can
// optionally be recorded to SQLite for offline comparison.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/plus3/depthprobe/internal/logging"
	"github.com/plus3/depthprobe/internal/recorder"
	"github.com/plus3/depthprobe/probe"
)

func main() {
	count := flag.Int("count", 100, "Markers per batch.")
	batches := flag.Int("batches", 10, "Number of spawn batches to run.")
	minDist := flag.Float64("min", 1.0, "Minimum spawn distance.")
	maxDist := flag.Float64("max", 10.0, "Maximum spawn distance.")
	seed := flag.Uint64("seed", 0, "Sampler seed; 0 picks a random one.")
	record := flag.String("record", "", "SQLite path to record batches to (empty disables).")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	log := logging.New(*logLevel)

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	cam := probe.NewCamera(mgl64.Vec3{0, 1.6, 0})
	container := probe.NewContainer(log, probe.NewShellSampler(*seed))
	cfg := probe.SamplingConfig{
		Count:       *count,
		MinDistance: *minDist,
		MaxDistance: *maxDist,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid sampling config")
	}

	var rec *recorder.Recorder
	if *record != "" {
		var err error
		rec, err = recorder.Open(log, *record)
		if err != nil {
			log.Fatal().Err(err).Msg("opening recorder")
		}
		defer rec.Close()
	}

	report := &Report{
		Batches:     *batches,
		Count:       *count,
		MinDistance: *minDist,
		MaxDistance: *maxDist,
		Seed:        *seed,
	}

	start := time.Now()
	for b := 0; b < *batches; b++ {
		spawnStart := time.Now()
		if err := container.SpawnAll(cam, cfg, probe.DefaultVisualConfig()); err != nil {
			log.Fatal().Err(err).Int("batch", b).Msg("spawn failed")
		}
		report.SpawnTime.Samples = append(report.SpawnTime.Samples, time.Since(spawnStart))

		report.Observe(cam, container.Markers())

		if rec != nil {
			if err := rec.Record(cfg, container.Markers()); err != nil {
				log.Fatal().Err(err).Int("batch", b).Msg("recording batch")
			}
		}
	}
	report.TotalTime = time.Since(start)
	report.SpawnTime.Finalize()

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("generating report")
	}
	fmt.Println()
}
