package backoff

import (
	"context"
	"time"
)

// Strategy computes the pause before the next attempt.
type Strategy interface {
	GetBackoffDuration(count int, start, last time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     Strategy
}

func NewBackoff(strategy Strategy, start, limit time.Duration) *Backoff {
	b := Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return &b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Backoff sleeps for the next duration, or returns early with the
// context's error when it is canceled.
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-t.C:
		b.count++
		b.LastDuration = b.NextDuration
		b.NextDuration = b.getNextDuration()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) getNextDuration() time.Duration {
	d := b.strategy.GetBackoffDuration(b.count, b.start, b.LastDuration)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) GetBackoffDuration(count int, start, last time.Duration) time.Duration {
	if count > 16 {
		count = 16
	}
	return start << count
}

func NewExponential(start, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type linear struct{}

func (linear) GetBackoffDuration(count int, start, last time.Duration) time.Duration {
	return time.Duration(count) * start
}

func NewLinear(start, limit time.Duration) *Backoff {
	return NewBackoff(linear{}, start, limit)
}
