package alert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"deskclock/internal/eventbus"
	"deskclock/internal/logger"

	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	mu       sync.Mutex
	commands []string
}

func (w *fakeWindow) record(cmd string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.commands = append(w.commands, cmd)
}

func (w *fakeWindow) SetLevel(level Level)             { w.record("level:" + level.String()) }
func (w *fakeWindow) SetMousePassthrough(enabled bool) { w.record(fmt.Sprintf("passthrough:%t", enabled)) }
func (w *fakeWindow) RequestFocus()                    { w.record("focus") }
func (w *fakeWindow) RequestRepaint()                  { w.record("repaint") }

func (w *fakeWindow) snapshot() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.commands...)
}

type playerFunc func(ctx context.Context) error

func (f playerFunc) Play(ctx context.Context) error { return f(ctx) }

type fakeEvents struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (e *fakeEvents) Publish(event eventbus.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
}

func (e *fakeEvents) types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}

var episode = []string{
	"level:always_on_bottom",
	"passthrough:true",
	"level:always_on_top",
	"passthrough:false",
	"focus",
	"repaint",
}

func newDispatcher(t *testing.T, player Player) (*Dispatcher, *fakeWindow, *fakeEvents) {
	t.Helper()

	window := &fakeWindow{}
	events := &fakeEvents{}
	d := NewDispatcher(window, player, logger.NoOpLogger{}, events)
	t.Cleanup(d.Shutdown)

	return d, window, events
}

func waitForCommands(t *testing.T, w *fakeWindow, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(w.snapshot()) >= n }, 2*time.Second, 5*time.Millisecond)
}

func TestEpisodeCommandOrder(t *testing.T) {
	t.Parallel()

	var sawDemoted bool
	var window *fakeWindow
	d, window, events := newDispatcher(t, playerFunc(func(ctx context.Context) error {
		sawDemoted = len(window.snapshot()) == 2
		return nil
	}))

	require.True(t, d.Trigger())
	waitForCommands(t, window, len(episode))

	require.Equal(t, episode, window.snapshot())
	require.True(t, sawDemoted)
	require.Eventually(t, func() bool { return len(events.types()) == 2 }, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{EventStarted, EventFinished}, events.types())
}

func TestRestoreRunsWhenPlaybackFails(t *testing.T) {
	t.Parallel()

	for _, failure := range []error{ErrAssetDecode, ErrDeviceUnavailable, ErrAssetMissing} {
		failure := failure
		t.Run(failure.Error(), func(t *testing.T) {
			t.Parallel()

			d, window, events := newDispatcher(t, playerFunc(func(context.Context) error {
				return fmt.Errorf("%w: boom", failure)
			}))

			require.True(t, d.Trigger())
			waitForCommands(t, window, len(episode))

			require.Equal(t, episode, window.snapshot())
			require.Eventually(t, func() bool { return len(events.types()) == 2 }, time.Second, 5*time.Millisecond)
			require.Equal(t, []string{EventStarted, EventFailed}, events.types())
		})
	}
}

func TestRestoreRunsWhenPlaybackPanics(t *testing.T) {
	t.Parallel()

	d, window, _ := newDispatcher(t, playerFunc(func(context.Context) error {
		panic("backend exploded")
	}))

	require.True(t, d.Trigger())
	waitForCommands(t, window, len(episode))
	require.Equal(t, episode, window.snapshot())
}

func TestOverlappingTriggersAreSerialized(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var plays int
	var mu sync.Mutex

	d, window, _ := newDispatcher(t, playerFunc(func(ctx context.Context) error {
		mu.Lock()
		plays++
		mu.Unlock()
		<-release
		return nil
	}))

	require.True(t, d.Trigger())
	waitForCommands(t, window, 2)

	// One slot: the first extra trigger queues, the second is coalesced.
	require.True(t, d.Trigger())
	require.False(t, d.Trigger())

	close(release)
	waitForCommands(t, window, 2*len(episode))

	require.Equal(t, append(append([]string(nil), episode...), episode...), window.snapshot())
	mu.Lock()
	require.Equal(t, 2, plays)
	mu.Unlock()
}

func TestCancelStopsPlaybackAndRestores(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	d, window, events := newDispatcher(t, playerFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))

	require.True(t, d.Trigger())
	<-started
	d.Cancel()

	waitForCommands(t, window, len(episode))
	require.Equal(t, episode, window.snapshot())
	require.Eventually(t, func() bool { return len(events.types()) == 2 }, time.Second, 5*time.Millisecond)
	require.Equal(t, EventFinished, events.types()[1])
}

func TestShutdownRejectsTriggers(t *testing.T) {
	t.Parallel()

	window := &fakeWindow{}
	d := NewDispatcher(window, SilentPlayer{}, logger.NoOpLogger{}, nil)
	d.Shutdown()

	require.False(t, d.Trigger())
	require.Empty(t, window.snapshot())
}

func TestSilentPlayerHonoursContext(t *testing.T) {
	t.Parallel()

	require.NoError(t, SilentPlayer{}.Play(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, errors.Is(SilentPlayer{}.Play(ctx), context.Canceled))
}
