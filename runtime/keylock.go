package runtime

import (
	"sync"
)

// KeyLock hands out one RWMutex per key and drops it once nobody holds it.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*keyEntry
}

type keyEntry struct {
	mu   sync.RWMutex
	refs int
}

func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*keyEntry)}
}

// Lock takes the exclusive lock for key and returns its release function.
func (k *KeyLock) Lock(key string) func() {
	entry := k.acquire(key)
	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.release(key)
	}
}

// RLock takes the shared lock for key and returns its release function.
func (k *KeyLock) RLock(key string) func() {
	entry := k.acquire(key)
	entry.mu.RLock()
	return func() {
		entry.mu.RUnlock()
		k.release(key)
	}
}

// Len is the number of keys currently held or awaited.
func (k *KeyLock) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

func (k *KeyLock) acquire(key string) *keyEntry {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (k *KeyLock) release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry, ok := k.locks[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
}
