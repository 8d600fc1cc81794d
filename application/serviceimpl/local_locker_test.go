package serviceimpl

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocalLockerSerializes(t *testing.T) {
	l := NewLocalLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.WithLock(context.Background(), "same-key", time.Second, func() error {
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
				return nil
			})
			if err != nil {
				t.Errorf("WithLock failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if counter != 20 {
		t.Errorf("expected counter 20, got %d (lost updates)", counter)
	}
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocalLocker()

	release := make(chan struct{})
	held := make(chan struct{})

	go l.WithLock(context.Background(), "key-a", time.Second, func() error {
		close(held)
		<-release
		return nil
	})
	<-held

	// key อื่นต้องไม่ block
	done := make(chan struct{})
	go func() {
		l.WithLock(context.Background(), "key-b", time.Second, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent key blocked by unrelated lock")
	}
	close(release)
}

func TestLocalLockerCancelledContext(t *testing.T) {
	l := NewLocalLocker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := l.WithLock(ctx, "key", time.Second, func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
	if called {
		t.Error("fn should not run with cancelled context")
	}
}
