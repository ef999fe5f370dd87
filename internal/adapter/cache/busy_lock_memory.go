package cache

import (
	"context"
	"sync"
	"time"

	"rfq_console/internal/usecase/interfaces"
)

// MemoryBusyLock keeps busy flags in process. Used when no Redis is configured.
type MemoryBusyLock struct {
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	seq  uint64
	held map[string]memoryEntry
}

type memoryEntry struct {
	seq     uint64
	expires time.Time
}

var _ interfaces.IBusyLock = (*MemoryBusyLock)(nil)

func NewMemoryBusyLock(ttl time.Duration) *MemoryBusyLock {
	if ttl <= 0 {
		ttl = defaultBusyTTL
	}
	return &MemoryBusyLock{ttl: ttl, now: time.Now, held: make(map[string]memoryEntry)}
}

func (l *MemoryBusyLock) Acquire(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.held[key]; ok && now.Before(e.expires) {
		return nil, false, nil
	}
	l.seq++
	entry := memoryEntry{seq: l.seq, expires: now.Add(l.ttl)}
	l.held[key] = entry

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if cur, ok := l.held[key]; ok && cur.seq == entry.seq {
				delete(l.held, key)
			}
		})
	}
	return release, true, nil
}

func (l *MemoryBusyLock) Held(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.held[key]
	if !ok {
		return false, nil
	}
	if !l.now().Before(e.expires) {
		delete(l.held, key)
		return false, nil
	}
	return true, nil
}
