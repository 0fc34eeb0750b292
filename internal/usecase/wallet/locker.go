package wallet

import (
	"sync"

	"github.com/google/uuid"
)

// ownerLocks serializes mutations per wallet owner; different owners proceed in parallel.
// Entries are reference counted and dropped once no caller holds or waits on them.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*ownerLock
}

type ownerLock struct {
	sync.Mutex
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[uuid.UUID]*ownerLock)}
}

// lock acquires the owner's lock and returns its release function
func (l *ownerLocks) lock(owner uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[owner]
	if !ok {
		entry = &ownerLock{}
		l.locks[owner] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.Lock()
	return func() {
		entry.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, owner)
		}
		l.mu.Unlock()
	}
}
