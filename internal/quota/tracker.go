// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package quota tracks AI generation usage per principal over a trailing
// 24-hour window and enforces a configurable daily cap.
//
// "Daily" is anchored to each event's own timestamp, not a calendar day: an
// event counts against the limit until exactly 24 hours after it occurred,
// then ages out. The tracker is the only shared-mutation hot path in the
// service; the generate flow uses a reservation so that two concurrent
// attempts by the same principal cannot both pass the check when only one
// slot remains, while different principals never contend.
package quota

import (
	"sync"
	"time"
)

// Window is the trailing period over which generation events count.
const Window = 24 * time.Hour

// Tracker counts generation events per principal and enforces the daily cap.
type Tracker struct {
	mu         sync.Mutex
	principals map[string]*principalUsage
	dailyLimit int

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// principalUsage holds one principal's usage state. Its mutex serializes
// check-and-increment for that principal only.
type principalUsage struct {
	mu       sync.Mutex
	events   []time.Time
	reserved int
}

// NewTracker creates a tracker with the given daily limit (must be > 0).
func NewTracker(dailyLimit int) *Tracker {
	return &Tracker{
		principals: make(map[string]*principalUsage),
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

// DailyLimit returns the configured cap.
func (t *Tracker) DailyLimit() int {
	return t.dailyLimit
}

// usage returns the usage entry for a principal, creating it if needed.
func (t *Tracker) usage(principalID string) *principalUsage {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, ok := t.principals[principalID]
	if !ok {
		u = &principalUsage{}
		t.principals[principalID] = u
	}
	return u
}

// prune drops events older than the window. Caller must hold u.mu.
func (u *principalUsage) prune(now time.Time) {
	cutoff := now.Add(-Window)
	kept := u.events[:0]
	for _, ts := range u.events {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	u.events = kept
}

// CountInWindow returns the number of events recorded for the principal in
// the trailing window.
func (t *Tracker) CountInWindow(principalID string) int {
	u := t.usage(principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prune(t.now())
	return len(u.events)
}

// CanGenerate reports whether the principal has quota left, counting both
// recorded events and in-flight reservations.
func (t *Tracker) CanGenerate(principalID string) bool {
	u := t.usage(principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prune(t.now())
	return len(u.events)+u.reserved < t.dailyLimit
}

// Remaining returns how many generations the principal has left today,
// floored at zero.
func (t *Tracker) Remaining(principalID string) int {
	u := t.usage(principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prune(t.now())
	remaining := t.dailyLimit - len(u.events) - u.reserved
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Record registers one generation event for the principal at the current
// time. Call only after a successful generation with no open reservation;
// the generate flow uses TryAcquire/Commit instead.
func (t *Tracker) Record(principalID string) {
	u := t.usage(principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prune(t.now())
	u.events = append(u.events, t.now())
}

// Reservation is a held quota slot for an in-flight generation. Exactly one
// of Commit or Release must be called.
type Reservation struct {
	tracker     *Tracker
	principalID string
	done        bool
}

// TryAcquire atomically checks the quota and reserves a slot for one
// generation. It returns false when recorded events plus open reservations
// have reached the daily limit. The reservation keeps a concurrent attempt
// for the same principal from also passing the check; a failed generation
// releases it without consuming quota.
func (t *Tracker) TryAcquire(principalID string) (*Reservation, bool) {
	u := t.usage(principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.prune(t.now())
	if len(u.events)+u.reserved >= t.dailyLimit {
		return nil, false
	}
	u.reserved++

	return &Reservation{tracker: t, principalID: principalID}, true
}

// Commit converts the reservation into a recorded event, stamped at commit
// time. Safe to call once.
func (r *Reservation) Commit() {
	if r.done {
		return
	}
	r.done = true

	u := r.tracker.usage(r.principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.reserved--
	u.events = append(u.events, r.tracker.now())
}

// Release drops the reservation without recording an event. Safe to call
// once; used when generation fails.
func (r *Reservation) Release() {
	if r.done {
		return
	}
	r.done = true

	u := r.tracker.usage(r.principalID)
	u.mu.Lock()
	defer u.mu.Unlock()

	u.reserved--
}
