package service

import (
	"sync"

	"github.com/google/uuid"
)

// UnreadTracker counts chat messages delivered for teams the user is not looking at.
// Counts live for one chat session only. Total always equals the sum of per-team counts.
type UnreadTracker struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int
	total  int
}

// NewUnreadTracker creates an empty tracker
func NewUnreadTracker() *UnreadTracker {
	return &UnreadTracker{counts: make(map[uuid.UUID]int)}
}

// Increment adds one unread message for team
func (u *UnreadTracker) Increment(team uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.counts[team]++
	u.total++
}

// Reset clears the count of team, as when its messages are (re)loaded
func (u *UnreadTracker) Reset(team uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.total -= u.counts[team]
	delete(u.counts, team)
}

// Retain drops counts of teams not in keep
func (u *UnreadTracker) Retain(keep []uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	want := make(map[uuid.UUID]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	for id, n := range u.counts {
		if _, ok := want[id]; !ok {
			u.total -= n
			delete(u.counts, id)
		}
	}
}

// Count returns the unread count of team
func (u *UnreadTracker) Count(team uuid.UUID) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[team]
}

// Total returns the unread count across all teams
func (u *UnreadTracker) Total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.total
}

// Snapshot returns a copy of the per-team counts
func (u *UnreadTracker) Snapshot() map[uuid.UUID]int {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[uuid.UUID]int, len(u.counts))
	for id, n := range u.counts {
		out[id] = n
	}
	return out
}
