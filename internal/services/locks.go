package services

import (
	"sort"
	"sync"
)

// AggregateLocks serializes mutations per aggregate id. The order and payment
// services share one table keyed by order id; the inventory service keeps its
// own table keyed by jewelry id.
type AggregateLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewAggregateLocks() *AggregateLocks {
	return &AggregateLocks{locks: make(map[uint]*sync.Mutex)}
}

func (t *AggregateLocks) get(id uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.locks[id]
	if !ok {
		m = &sync.Mutex{}
		t.locks[id] = m
	}
	return m
}

func (t *AggregateLocks) Lock(id uint) {
	t.get(id).Lock()
}

func (t *AggregateLocks) Unlock(id uint) {
	t.get(id).Unlock()
}

// LockAll acquires the locks for every id in ascending order, which keeps
// concurrent multi-item reservations from deadlocking. Returns the ids in
// acquisition order for the matching UnlockAll call.
func (t *AggregateLocks) LockAll(ids []uint) []uint {
	sorted := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			sorted = append(sorted, id)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, id := range sorted {
		t.Lock(id)
	}
	return sorted
}

func (t *AggregateLocks) UnlockAll(ids []uint) {
	for i := len(ids) - 1; i >= 0; i-- {
		t.Unlock(ids[i])
	}
}
