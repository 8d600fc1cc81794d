package serviceimpl

import (
	"context"
	"sync"
	"time"
)

// LocalLocker ล็อคใน process เดียว ใช้แทน Redis ตอน dev
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *LocalLocker) WithLock(ctx context.Context, lockKey string, ttl time.Duration, fn func() error) error {
	l.mu.Lock()
	m, ok := l.locks[lockKey]
	if !ok {
		m = &sync.Mutex{}
		l.locks[lockKey] = m
	}
	l.mu.Unlock()

	m.Lock()
	defer m.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn()
}
