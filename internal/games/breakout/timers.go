package breakout

// Timer keys for effects that re-collection extends instead of stacking.
const (
	timerExpand = "expand"
	timerLaser  = "laser"
)

// timerEntry is one pending reversion.
type timerEntry struct {
	key  string      // Empty for unkeyed entries
	kind PowerUpKind // Effect the entry reverts, for display
	due  uint64      // Tick at which the command fires
	cmd  Command
}

// Timers is the per-session registry of deferred effect reversions.
// Time is measured in simulation ticks, so timers stand still whenever the
// loop does (paused, idle, round lost). Entries never outlive the round that
// scheduled them: the session cancels them all on restart, level change and close.
type Timers struct {
	entries []timerEntry
}

// NewTimers creates an empty timer registry.
func NewTimers() *Timers {
	return &Timers{}
}

// Schedule registers cmd to fire at tick due. A keyed entry replaces any
// pending entry with the same key.
func (t *Timers) Schedule(key string, kind PowerUpKind, due uint64, cmd Command) {
	if key != "" {
		t.cancel(key)
	}
	t.entries = append(t.entries, timerEntry{key: key, kind: kind, due: due, cmd: cmd})
}

// cancel drops the pending entry with the given key.
func (t *Timers) cancel(key string) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	t.entries = kept
}

// Advance removes and returns the commands due at or before now, in the
// order they were scheduled.
func (t *Timers) Advance(now uint64) []Command {
	var due []Command
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.due <= now {
			due = append(due, e.cmd)
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
	return due
}

// CancelAll drops every pending entry.
func (t *Timers) CancelAll() {
	t.entries = t.entries[:0]
}

// Pending returns the number of pending entries.
func (t *Timers) Pending() int {
	return len(t.entries)
}

// ActiveEffect is a timed effect still waiting for its reversion.
type ActiveEffect struct {
	Kind      PowerUpKind
	TicksLeft uint64
}

// Active lists pending reversions with the ticks left until each fires.
func (t *Timers) Active(now uint64) []ActiveEffect {
	out := make([]ActiveEffect, 0, len(t.entries))
	for _, e := range t.entries {
		var left uint64
		if e.due > now {
			left = e.due - now
		}
		out = append(out, ActiveEffect{Kind: e.kind, TicksLeft: left})
	}
	return out
}
