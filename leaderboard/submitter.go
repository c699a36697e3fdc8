package leaderboard

import (
	"context"

	"github.com/lixenwraith/stardrift/event"
)

// Submitter runs score submission off the frame loop. The result comes
// back through the event queue so the main loop never blocks on Redis.
type Submitter struct {
	store  *Store
	events *event.Queue
	player string
}

// NewSubmitter wires a store to the event queue
func NewSubmitter(store *Store, events *event.Queue, player string) *Submitter {
	return &Submitter{store: store, events: events, player: player}
}

// SubmitAsync fires a background submission and returns immediately
func (s *Submitter) SubmitAsync(score int) {
	go func() {
		rank, err := s.store.Submit(context.Background(), s.player, score)
		s.events.Emit(event.EventScoreSubmitted, &event.ScoreSubmittedPayload{
			Rank: rank,
			Err:  err,
		})
	}()
}
