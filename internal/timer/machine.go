package timer

import "time"

const (
	DefaultDuration = 60 * time.Second
	MinDuration     = time.Second
	MaxDuration     = 2 * time.Hour
)

// Phase is the explicit state of the countdown.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseElapsed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseElapsed:
		return "elapsed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the machine state.
type Snapshot struct {
	Phase     Phase
	Remaining time.Duration
	Duration  time.Duration
	// Fired is only ever true in PhaseElapsed.
	Fired bool
}

func (s Snapshot) Running() bool {
	return s.Phase == PhaseRunning
}

// Machine holds the countdown. It is not safe for concurrent use; callers
// drive it from the UI thread.
type Machine struct {
	phase     Phase
	remaining time.Duration
	duration  time.Duration
	fired     bool
}

func New() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Start (re)starts the countdown from the configured duration.
func (m *Machine) Start() {
	m.phase = PhaseRunning
	m.remaining = m.duration
	m.fired = false
}

// Stop cancels a running countdown and keeps the remaining time.
func (m *Machine) Stop() {
	if m.phase != PhaseRunning {
		return
	}
	m.phase = PhaseIdle
}

// Toggle is the start/stop button.
func (m *Machine) Toggle() {
	if m.phase == PhaseRunning {
		m.Stop()
		return
	}
	m.Start()
}

// Reset returns to the default idle state.
func (m *Machine) Reset() {
	m.phase = PhaseIdle
	m.duration = DefaultDuration
	m.remaining = DefaultDuration
	m.fired = false
}

// SetDuration changes the configured duration, clamped to [MinDuration, MaxDuration].
// A countdown already in progress is not affected.
func (m *Machine) SetDuration(d time.Duration) time.Duration {
	m.duration = ClampDuration(d)
	return m.duration
}

// Tick advances the countdown by dt and reports whether the alert must fire.
// It returns true exactly once per elapsed episode.
func (m *Machine) Tick(dt time.Duration) bool {
	if m.phase == PhaseRunning && dt > 0 {
		m.remaining -= dt
		if m.remaining <= 0 {
			m.remaining = 0
			m.phase = PhaseElapsed
			m.fired = false
		}
	}

	if m.phase == PhaseElapsed && !m.fired {
		m.fired = true
		return true
	}

	return false
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:     m.phase,
		Remaining: m.remaining,
		Duration:  m.duration,
		Fired:     m.phase == PhaseElapsed && m.fired,
	}
}

func ClampDuration(d time.Duration) time.Duration {
	switch {
	case d < MinDuration:
		return MinDuration
	case d > MaxDuration:
		return MaxDuration
	default:
		return d
	}
}
