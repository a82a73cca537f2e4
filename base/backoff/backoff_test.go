package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialDurations(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)
	for _, want := range []time.Duration{
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond, // capped by limit
	} {
		req.NoError(b.Backoff(context.Background()))
		req.Equal(want, b.NextDuration)
	}
	b.Reset()
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Second, 0)
	b.NextDuration = time.Minute
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
}
