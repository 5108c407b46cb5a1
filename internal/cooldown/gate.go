// Package cooldown implements the timestamp-plus-window gate used by the
// boss and meditate actions. The gate is a pure function of the stored
// timestamp and the current wall clock; no background timers exist.
package cooldown

import "time"

// Gate blocks an action until Window has elapsed since its last success.
type Gate struct {
	Window time.Duration
}

// Check reports whether the gate is closed and how long remains.
// A nil lastUsed means the action has never succeeded and is available.
func (g Gate) Check(lastUsed *time.Time, now time.Time) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < g.Window {
		return true, g.Window - elapsed
	}
	return false, 0
}

// RemainingMinutes converts a remaining duration to whole minutes,
// rounded down, as shown in user-facing cooldown messages.
func RemainingMinutes(remaining time.Duration) int {
	return int(remaining.Minutes())
}
