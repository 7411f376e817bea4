// Package lock implements the client-side app lock. The gate compares
// PIN candidates against the server-held settings; it never stores the
// PIN itself.
package lock

import "sync"

type State string

const (
	StateLocked   State = "locked"
	StateUnlocked State = "unlocked"
)

// Gate tracks whether the UI is locked. When the lock feature is
// disabled the gate starts unlocked and stays that way until the user
// re-enables the lock.
type Gate struct {
	mu    sync.Mutex
	state State
}

func NewGate(lockEnabled bool) *Gate {
	state := StateUnlocked
	if lockEnabled {
		state = StateLocked
	}
	return &Gate{state: state}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Locked() bool {
	return g.State() == StateLocked
}

// Submit compares the candidate against the current PIN and unlocks on
// an exact match. It reports whether the gate is now unlocked.
func (g *Gate) Submit(candidate, pin string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if candidate == pin {
		g.state = StateUnlocked
	}
	return g.state == StateUnlocked
}

// ForceUnlock opens the gate unconditionally. Used by the forgot-PIN
// flow after the PIN has been reset server-side.
func (g *Gate) ForceUnlock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateUnlocked
}

// Lock closes the gate again, e.g. after the user re-enables the lock.
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateLocked
}
