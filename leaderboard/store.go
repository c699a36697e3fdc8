// Package leaderboard persists run scores to a Redis sorted set and ranks
// them. Everything here is optional: a run without Redis plays the same,
// it just never sees a rank.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	scoreKey   = "stardrift:scores"
	opTimeout  = 3 * time.Second
	TopDefault = 10
)

// Entry is one leaderboard row
type Entry struct {
	Player string
	Score  int
	Rank   int64
}

// Store wraps the Redis client behind the few operations the game needs
type Store struct {
	client *redis.Client
}

// NewStore connects and pings; a failed ping returns an error rather than a
// half-alive store
func NewStore(addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Store{client: client}, nil
}

// Submit records a score and returns the player's zero-based rank. A
// returning player keeps only their best score.
func (s *Store) Submit(ctx context.Context, player string, score int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	current, err := s.client.ZScore(ctx, scoreKey, player).Result()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("read score: %w", err)
	}
	if err == nil && current >= float64(score) {
		return s.rank(ctx, player)
	}

	if err := s.client.ZAdd(ctx, scoreKey, &redis.Z{
		Score:  float64(score),
		Member: player,
	}).Err(); err != nil {
		return 0, fmt.Errorf("write score: %w", err)
	}
	return s.rank(ctx, player)
}

func (s *Store) rank(ctx context.Context, player string) (int64, error) {
	rank, err := s.client.ZRevRank(ctx, scoreKey, player).Result()
	if err != nil {
		return 0, fmt.Errorf("read rank: %w", err)
	}
	return rank, nil
}

// Top returns the highest n scores in descending order
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.client.ZRevRangeWithScores(ctx, scoreKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read top: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, z := range rows {
		name, _ := z.Member.(string)
		entries = append(entries, Entry{
			Player: name,
			Score:  int(z.Score),
			Rank:   int64(i),
		})
	}
	return entries, nil
}

// Close releases the client
func (s *Store) Close() error {
	return s.client.Close()
}
