package service

import "sync"

// KeyLock hands out one mutex per equipment id. Every operation that
// reads-then-writes the active-reservation set or the equipment status
// field must hold the equipment's lock for the whole read-modify-write,
// otherwise two concurrent conflict scans can both pass and persist
// overlapping reservations.
//
// Locks are never reclaimed; the key space is bounded by fleet size.
type KeyLock struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[int32]*sync.Mutex)}
}

// Get returns the mutex for the given key, creating it on first use.
func (l *KeyLock) Get(key int32) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
