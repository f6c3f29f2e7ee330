package inbox

import (
	"sync"

	"vendorpanel/internal/domain/entity"
)

type itemState int

const (
	stateConfirmed itemState = iota
	statePendingLocal
)

type readEntry struct {
	status string
	state  itemState
}

// ReadState tracks notification read status with optimistic local mutations.
// MarkPending records a local guess ahead of the server round trip; Confirm
// promotes it and Revert rolls it back. Refresh applies an authoritative
// snapshot, which overwrites any pending guesses rather than merging with
// them.
type ReadState struct {
	mu      sync.Mutex
	entries map[string]readEntry
}

func NewReadState() *ReadState {
	return &ReadState{entries: make(map[string]readEntry)}
}

func (r *ReadState) Refresh(notifications []entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]readEntry, len(notifications))
	for _, n := range notifications {
		r.entries[n.ID] = readEntry{status: n.Status, state: stateConfirmed}
	}
}

// MarkPending flips the item's status locally and returns the previous status
// so a failed mutation can be reverted.
func (r *ReadState) MarkPending(id, status string) (previous string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, exists := r.entries[id]
	if !exists {
		return "", false
	}
	previous = entry.status
	r.entries[id] = readEntry{status: status, state: statePendingLocal}
	return previous, true
}

func (r *ReadState) Confirm(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, exists := r.entries[id]; exists && entry.state == statePendingLocal {
		r.entries[id] = readEntry{status: entry.status, state: stateConfirmed}
	}
}

func (r *ReadState) Revert(id, previous string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, exists := r.entries[id]; exists && entry.state == statePendingLocal {
		r.entries[id] = readEntry{status: previous, state: stateConfirmed}
	}
}

// MarkAllPending flips every entry to read locally, returning the ids whose
// status actually changed.
func (r *ReadState) MarkAllPending() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed []string
	for id, entry := range r.entries {
		if entry.status != entity.NotificationRead {
			r.entries[id] = readEntry{status: entity.NotificationRead, state: statePendingLocal}
			changed = append(changed, id)
		}
	}
	return changed
}

func (r *ReadState) Status(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, exists := r.entries[id]
	return entry.status, exists
}

func (r *ReadState) UnreadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, entry := range r.entries {
		if entry.status == entity.NotificationUnread {
			count++
		}
	}
	return count
}
