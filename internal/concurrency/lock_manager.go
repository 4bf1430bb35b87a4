// Package concurrency serializes work per player id.
package concurrency

import (
	"sync"
)

type keyLock struct {
	mu   sync.Mutex
	refs int // holders plus waiters, guarded by LockManager.mu
}

// LockManager hands out one mutex per key so that work for the same key is
// serialized while different keys proceed independently. A key's mutex is
// dropped once nobody holds or waits for it, so idle players cost nothing.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

func (lm *LockManager) acquire(key string) *keyLock {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return l
}

func (lm *LockManager) release(key string, l *keyLock) {
	l.mu.Unlock()

	lm.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
	lm.mu.Unlock()
}

// WithLock runs fn while holding the mutex for key.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	l := lm.acquire(key)
	defer lm.release(key, l)
	return fn()
}

// Len reports how many keys currently have a holder or waiter.
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
