package backend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testKey = "foodItems"

func TestInMemory_GetAbsentReturnsNil(t *testing.T) {
	m := NewOrigin().Open()

	v, err := m.Get(context.Background(), testKey)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestInMemory_SetThenGet(t *testing.T) {
	m := NewOrigin().Open()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, testKey, []byte(`[]`)))

	v, err := m.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
}

func TestInMemory_HandlesShareValues(t *testing.T) {
	origin := NewOrigin()
	a := origin.Open()
	b := origin.Open()
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, testKey, []byte("v1")))

	v, err := b.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestInMemory_WatchSignalsOtherHandlesOnly(t *testing.T) {
	origin := NewOrigin()
	writer := origin.Open()
	reader := origin.Open()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	writerCh, err := writer.Watch(ctx, testKey)
	require.NoError(t, err)
	readerCh, err := reader.Watch(ctx, testKey)
	require.NoError(t, err)

	require.NoError(t, writer.Set(ctx, testKey, []byte("v1")))

	select {
	case <-readerCh:
	case <-time.After(time.Second):
		t.Fatal("reader never observed the change signal")
	}

	select {
	case <-writerCh:
		t.Fatal("writer observed its own change signal")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInMemory_WatchIgnoresOtherKeys(t *testing.T) {
	origin := NewOrigin()
	writer := origin.Open()
	reader := origin.Open()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := reader.Watch(ctx, testKey)
	require.NoError(t, err)

	require.NoError(t, writer.Set(ctx, "unrelated", []byte("x")))

	select {
	case <-ch:
		t.Fatal("signal delivered for an unrelated key")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInMemory_WatchClosesOnCancel(t *testing.T) {
	origin := NewOrigin()
	reader := origin.Open()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := reader.Watch(ctx, testKey)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok, "channel should be closed, not signalled")
	case <-time.After(time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestOrigin_SeedBypassesSignal(t *testing.T) {
	origin := NewOrigin()
	reader := origin.Open()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := reader.Watch(ctx, testKey)
	require.NoError(t, err)

	origin.Seed(testKey, []byte("silent"))

	select {
	case <-ch:
		t.Fatal("seed must not produce a change signal")
	case <-time.After(50 * time.Millisecond):
	}

	v, err := reader.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, []byte("silent"), v)
}
