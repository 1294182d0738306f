// Package recorder persists spawn batches to SQLite so depth-scale runs can
// be compared offline.
package recorder

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plus3/depthprobe/probe"
)

// Batch is one recorded SpawnAll invocation.
type Batch struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	Count       int
	MinDistance float64
	MaxDistance float64
	FixedCenter bool
	Markers     []MarkerRow `gorm:"foreignKey:BatchID"`
}

// MarkerRow is one marker inside a batch.
type MarkerRow struct {
	ID       uint `gorm:"primarykey"`
	BatchID  uint `gorm:"index"`
	Idx      int
	X        float64
	Y        float64
	Z        float64
	Distance float64
	Label    string
}

// Recorder writes batches to a SQLite database.
type Recorder struct {
	log zerolog.Logger
	db  *gorm.DB
}

// Open opens (creating if needed) the database at path and migrates the
// schema. Use ":memory:" for a throwaway database.
func Open(log zerolog.Logger, path string) (*Recorder, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("opening recorder db: %w", err)
	}

	if err := db.AutoMigrate(&Batch{}, &MarkerRow{}); err != nil {
		return nil, fmt.Errorf("migrating recorder schema: %w", err)
	}

	return &Recorder{log: log, db: db}, nil
}

// Record persists one spawn batch with all its markers.
func (r *Recorder) Record(cfg probe.SamplingConfig, markers []*probe.Marker) error {
	batch := Batch{
		CreatedAt:   time.Now(),
		Count:       len(markers),
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		FixedCenter: cfg.CenterOverride != nil,
		Markers:     make([]MarkerRow, 0, len(markers)),
	}

	for _, m := range markers {
		batch.Markers = append(batch.Markers, MarkerRow{
			Idx:      m.Index,
			X:        m.Position.X(),
			Y:        m.Position.Y(),
			Z:        m.Position.Z(),
			Distance: m.Distance,
			Label:    m.Label,
		})
	}

	if err := r.db.Create(&batch).Error; err != nil {
		return fmt.Errorf("recording batch: %w", err)
	}

	r.log.Debug().Uint("batch_row", batch.ID).Int("markers", len(markers)).Msg("recorded spawn batch")
	return nil
}

// Batches returns all recorded batches with markers preloaded, oldest first.
func (r *Recorder) Batches() ([]Batch, error) {
	var batches []Batch
	err := r.db.Preload("Markers").Order("id").Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("loading batches: %w", err)
	}
	return batches, nil
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
