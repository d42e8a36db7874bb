package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// KeyedLock serializes work per entity key. Deal transitions take the deal's
// key so at most one transition per deal id is in flight; fund movements take
// the account keys of both parties in ascending order to avoid deadlock.
//
// With the postgres backend row locks provide the same guarantee across
// processes; this lock is what makes the in-memory backend correct.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedLock creates an empty lock registry.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyedLock) Lock(key string) func() {
	m := k.get(key)
	m.Lock()
	return m.Unlock
}

// LockAccounts acquires the account mutexes for the given IDs in ascending
// order, skipping duplicates, and returns a single unlock function releasing
// them in reverse order.
func (k *KeyedLock) LockAccounts(ids ...uuid.UUID) func() {
	keys := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := "account:" + id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	unlocks := make([]func(), 0, len(keys))
	for _, key := range keys {
		unlocks = append(unlocks, k.Lock(key))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

// LockDeal acquires the transition mutex for a deal id.
func (k *KeyedLock) LockDeal(id uuid.UUID) func() {
	return k.Lock("deal:" + id.String())
}
