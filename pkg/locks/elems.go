package locks

import (
	"context"
	"fmt"
	"sync"
)

type lockState struct {
	waiting []block
}

type block chan struct{}

// ElementLocks provides exclusive locks for a dynamic set of
// element identities. Waiters are served in FIFO order.
type ElementLocks[T comparable] struct {
	lock  sync.Mutex
	locks map[T]*lockState
}

func NewElementLocks[T comparable]() *ElementLocks[T] {
	return &ElementLocks[T]{locks: map[T]*lockState{}}
}

func (e *ElementLocks[T]) IsLocked(eid T) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.locks[eid] != nil
}

func (e *ElementLocks[T]) Unlock(eid T) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if locked := e.locks[eid]; locked != nil {
		if len(locked.waiting) > 0 {
			close(locked.waiting[0])
			locked.waiting = locked.waiting[1:]
		} else {
			delete(e.locks, eid)
		}
	} else {
		panic(fmt.Sprintf("unlocking unlocked element %v", eid))
	}
}

// Lock acquires the lock for the given element. If the context is
// cancelled while waiting, the context error is returned and the
// lock is not acquired.
func (e *ElementLocks[T]) Lock(ctx context.Context, eid T) error {
	e.lock.Lock()

	locked := e.locks[eid]
	if locked == nil {
		e.locks[eid] = &lockState{}
		e.lock.Unlock()
		return nil
	}

	b := make(block)
	locked.waiting = append(locked.waiting, b)
	e.lock.Unlock()
	if ctx == nil {
		<-b
		return nil
	}
	select {
	case <-b:
		return nil
	case <-ctx.Done():
		e.lock.Lock()
		for i, w := range locked.waiting {
			if w == b {
				locked.waiting = append(locked.waiting[:i], locked.waiting[i+1:]...)
				e.lock.Unlock()
				return ctx.Err()
			}
		}
		e.lock.Unlock()
		// the lock has been handed over concurrently, release it again
		e.Unlock(eid)
		return ctx.Err()
	}
}
