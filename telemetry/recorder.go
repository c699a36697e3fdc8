// Package telemetry writes a structured log line per simulation event,
// tagged with a unique run ID so sessions can be separated after the fact.
package telemetry

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/event"
)

// Recorder turns simulation events into structured log entries
type Recorder struct {
	log   zerolog.Logger
	runID string
}

// NewRecorder tags every entry with a fresh run ID
func NewRecorder(log zerolog.Logger) *Recorder {
	id := uuid.NewString()
	return &Recorder{
		log:   log.With().Str("run_id", id).Logger(),
		runID: id,
	}
}

// RunID returns this session's identifier
func (r *Recorder) RunID() string {
	return r.runID
}

// Record logs one simulation event with its payload fields
func (r *Recorder) Record(ev event.SimEvent) {
	e := r.log.Info().Str("event", ev.Type.String())

	switch p := ev.Payload.(type) {
	case *event.AsteroidDestroyedPayload:
		e = e.Int("size", p.Size).Bool("scored", p.Scored)
	case *event.AsteroidSplitPayload:
		e = e.Int("parent_size", p.ParentSize).Int("children", p.Children)
	case *event.UFODestroyedPayload:
		e = e.Str("personality", p.Personality)
	case *event.ShieldHitPayload:
		e = e.Int("hits_left", p.Remaining)
	case *event.AbilityBlastPayload:
		e = e.Int("step", p.Step).Int("destroyed", p.Destroyed)
	case *event.LevelStartedPayload:
		e = e.Int("level", p.Level).Int("asteroids", p.Asteroids)
	case *event.ScoreChangedPayload:
		e = e.Int("delta", p.Delta).Int("total", p.Total).Str("cause", p.Cause)
	case *event.GameOverPayload:
		e = e.Int("score", p.Score).Int("level", p.Level)
	case *event.BossSpawnedPayload:
		e = e.Int("level", p.Level)
	case *event.ScoreSubmittedPayload:
		if p.Err != nil {
			e = e.Err(p.Err)
		} else {
			e = e.Int64("rank", p.Rank)
		}
	}

	e.Msg("sim event")
}
