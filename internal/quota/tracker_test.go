// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package quota

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a settable clock for window-aging tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestTracker(limit int) (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	tracker := NewTracker(limit)
	tracker.now = clock.Now
	return tracker, clock
}

func TestTrackerEnforcesDailyLimit(t *testing.T) {
	tracker, _ := newTestTracker(2)

	if !tracker.CanGenerate("alice") {
		t.Fatal("expected fresh principal to have quota")
	}
	tracker.Record("alice")
	tracker.Record("alice")

	if tracker.CanGenerate("alice") {
		t.Error("expected quota exhausted after limit events")
	}
	if got := tracker.Remaining("alice"); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}
	if got := tracker.CountInWindow("alice"); got != 2 {
		t.Errorf("CountInWindow = %d, want 2", got)
	}
}

func TestTrackerPrincipalsAreIndependent(t *testing.T) {
	tracker, _ := newTestTracker(1)

	tracker.Record("alice")

	if tracker.CanGenerate("alice") {
		t.Error("alice should be out of quota")
	}
	if !tracker.CanGenerate("bob") {
		t.Error("bob should be unaffected by alice's usage")
	}
}

func TestTrackerWindowAging(t *testing.T) {
	tracker, clock := newTestTracker(2)

	tracker.Record("alice")
	clock.Advance(2 * time.Hour)
	tracker.Record("alice")

	if tracker.CanGenerate("alice") {
		t.Fatal("expected quota exhausted")
	}

	// 23 hours after the second event the first has aged out but the
	// second still counts.
	clock.Advance(23 * time.Hour)
	if got := tracker.CountInWindow("alice"); got != 1 {
		t.Errorf("CountInWindow after aging = %d, want 1", got)
	}
	if !tracker.CanGenerate("alice") {
		t.Error("expected one slot back after the oldest event aged out")
	}

	clock.Advance(2 * time.Hour)
	if got := tracker.CountInWindow("alice"); got != 0 {
		t.Errorf("CountInWindow after full window = %d, want 0", got)
	}
	if got := tracker.Remaining("alice"); got != 2 {
		t.Errorf("Remaining after full window = %d, want 2", got)
	}
}

func TestTrackerEventCountsFromItsOwnTimestamp(t *testing.T) {
	tracker, clock := newTestTracker(1)

	tracker.Record("alice")

	clock.Advance(Window - time.Minute)
	if tracker.CanGenerate("alice") {
		t.Error("event inside the window should still count")
	}

	clock.Advance(2 * time.Minute)
	if !tracker.CanGenerate("alice") {
		t.Error("event older than the window should no longer count")
	}
}

func TestReservationCommitConsumesQuota(t *testing.T) {
	tracker, _ := newTestTracker(1)

	res, ok := tracker.TryAcquire("alice")
	if !ok {
		t.Fatal("expected acquisition to succeed")
	}

	// The open reservation blocks a second attempt and shows in Remaining.
	if _, ok := tracker.TryAcquire("alice"); ok {
		t.Error("second acquire should fail while reservation is open")
	}
	if got := tracker.Remaining("alice"); got != 0 {
		t.Errorf("Remaining with open reservation = %d, want 0", got)
	}

	res.Commit()
	if got := tracker.CountInWindow("alice"); got != 1 {
		t.Errorf("CountInWindow after commit = %d, want 1", got)
	}
	if tracker.CanGenerate("alice") {
		t.Error("quota should be consumed after commit")
	}
}

func TestReservationReleaseReturnsQuota(t *testing.T) {
	tracker, _ := newTestTracker(1)

	res, ok := tracker.TryAcquire("alice")
	if !ok {
		t.Fatal("expected acquisition to succeed")
	}
	res.Release()

	if got := tracker.CountInWindow("alice"); got != 0 {
		t.Errorf("CountInWindow after release = %d, want 0", got)
	}
	if !tracker.CanGenerate("alice") {
		t.Error("released reservation should not consume quota")
	}
}

func TestReservationCommitAndReleaseAreIdempotent(t *testing.T) {
	tracker, _ := newTestTracker(5)

	res, _ := tracker.TryAcquire("alice")
	res.Commit()
	res.Commit()
	res.Release()

	if got := tracker.CountInWindow("alice"); got != 1 {
		t.Errorf("CountInWindow = %d, want 1 after repeated commit/release", got)
	}
}

func TestTryAcquireConcurrentNeverOvershoots(t *testing.T) {
	const limit = 5
	const attempts = 50
	tracker, _ := newTestTracker(limit)

	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, ok := tracker.TryAcquire("alice"); ok {
				mu.Lock()
				acquired++
				mu.Unlock()
				res.Commit()
			}
		}()
	}
	wg.Wait()

	if acquired != limit {
		t.Errorf("acquired %d reservations, want exactly %d", acquired, limit)
	}
	if got := tracker.CountInWindow("alice"); got != limit {
		t.Errorf("CountInWindow = %d, want %d", got, limit)
	}
}
