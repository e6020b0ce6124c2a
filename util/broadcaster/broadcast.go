package broadcaster

import (
	"context"
	"errors"
	"sync"
)

var Closed = errors.New("broadcaster closed")

// Lagged is returned by a listener that fell further behind than the broadcaster retains values for. The listener
// resumes at the oldest retained value.
var Lagged = errors.New("listener lagged behind broadcaster")

// Broadcaster delivers every value, in order, to every listener. The most recent values are retained in a ring so
// that slow listeners can catch up.
type Broadcaster[T interface{}] struct {
	mu         *sync.Mutex
	cond       *sync.Cond
	generation uint64
	values     []T
	closed     bool
}

type Listener[T interface{}] struct {
	broadcaster    *Broadcaster[T]
	lastGeneration uint64
}

func New[T interface{}](capacity int) *Broadcaster[T] {
	if capacity < 1 {
		capacity = 1
	}

	mu := &sync.Mutex{}

	return &Broadcaster[T]{
		mu:     mu,
		cond:   sync.NewCond(mu),
		values: make([]T, capacity),
	}
}

func (b *Broadcaster[T]) Broadcast(value T) {
	b.mu.Lock()
	if !b.closed {
		b.generation++
		b.values[b.generation%uint64(len(b.values))] = value
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	b.closed = true
	b.cond.Broadcast()
	b.mu.Unlock()
}

// Listener returns a listener that receives the values broadcast after this call.
func (b *Broadcaster[T]) Listener() *Listener[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	return &Listener[T]{
		broadcaster:    b,
		lastGeneration: b.generation,
	}
}

// Wait blocks until the next value is available. Values broadcast before a close are still delivered.
func (l *Listener[T]) Wait() (T, error) {
	return l.WaitContext(context.Background())
}

func (l *Listener[T]) WaitContext(ctx context.Context) (T, error) {
	var result T

	b := l.broadcaster

	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		b.cond.Broadcast()
		b.mu.Unlock()
	})
	defer stop()

	b.mu.Lock()
	defer b.mu.Unlock()

	for b.generation <= l.lastGeneration && !b.closed && ctx.Err() == nil {
		b.cond.Wait()
	}

	if b.generation > l.lastGeneration {
		retained := uint64(len(b.values))
		if b.generation-l.lastGeneration > retained {
			l.lastGeneration = b.generation - retained
			return result, Lagged
		}

		l.lastGeneration++
		return b.values[l.lastGeneration%retained], nil
	}

	if b.closed {
		return result, Closed
	}

	return result, ctx.Err()
}
