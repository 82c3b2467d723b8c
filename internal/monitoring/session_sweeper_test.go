package monitoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	purged int
	calls  int
}

func (f *fakePurger) PurgeExpired(ctx context.Context) (int, error) {
	f.calls++
	return f.purged, nil
}

func TestNewSessionSweeperRejectsBadSpec(t *testing.T) {
	t.Parallel()

	_, err := NewSessionSweeper(&fakePurger{}, "every tuesday")
	require.Error(t, err)

	_, err = NewSessionSweeper(&fakePurger{}, "*/10 * * * *")
	require.NoError(t, err)
}

func TestSweepCallsPurger(t *testing.T) {
	t.Parallel()

	purger := &fakePurger{purged: 3}
	sweeper, err := NewSessionSweeper(purger, "*/10 * * * *")
	require.NoError(t, err)

	sweeper.sweep()
	require.Equal(t, 1, purger.calls)
}
