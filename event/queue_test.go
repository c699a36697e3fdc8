package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/stardrift/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Emit(EventLevelStarted, &LevelStartedPayload{Level: 1})
	q.Emit(EventScoreChanged, &ScoreChangedPayload{Delta: 100, Total: 100})

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Consume() returned %d events, want 2", len(got))
	}
	if got[0].Type != EventLevelStarted || got[1].Type != EventScoreChanged {
		t.Errorf("events out of order: %v, %v", got[0].Type, got[1].Type)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", q.Len())
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < parameter.EventQueueSize+10; i++ {
		q.Emit(EventScoreChanged, &ScoreChangedPayload{Total: i})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Consume() returned %d events, want %d", len(got), parameter.EventQueueSize)
	}
	first := got[0].Payload.(*ScoreChangedPayload)
	if first.Total != 10 {
		t.Errorf("oldest surviving event Total = %d, want 10", first.Total)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Emit(EventScoreSubmitted, nil)
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if len(batch) == 0 {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}
