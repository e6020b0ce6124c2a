package testutil

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

const DefaultTimeout = 2 * time.Second

var ErrTimeout = errors.New("test parallel timeout")

// RunParallel runs every function as a subtest on its own goroutine and waits for all of them to return.
func RunParallel(t *testing.T, funcs ...func(*testing.T)) error {
	return RunParallelTimeout(t, DefaultTimeout, funcs...)
}

func RunParallelTimeout(t *testing.T, timeout time.Duration, funcs ...func(*testing.T)) error {
	wg := &sync.WaitGroup{}
	wg.Add(len(funcs))

	for i, f := range funcs {
		name := fmt.Sprintf("parallel-%d", i)
		fCopy := f
		go func() {
			defer wg.Done()
			t.Run(name, fCopy)
		}()
	}

	select {
	case <-wrapWait(wg):
		return nil
	case <-time.After(timeout):
		return ErrTimeout
	}
}

func wrapWait(wg *sync.WaitGroup) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
