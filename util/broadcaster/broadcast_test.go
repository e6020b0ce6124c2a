package broadcaster

import (
	"context"
	"github.com/The-PhoenixOS/frameworks-native/util/testutil"
	"github.com/matryer/is"
	"testing"
	"time"
)

func TestBroadcaster_Ordered(t *testing.T) {
	is := is.New(t)
	b := New[int](8)
	l := b.Listener()

	is.NoErr(testutil.RunParallel(
		t,
		func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				b.Broadcast(i)
			}
			b.Close()
		},
		func(t *testing.T) {
			is := is.New(t)
			for i := 1; i <= 5; i++ {
				v, err := l.Wait()
				is.NoErr(err)
				is.Equal(v, i)
			}

			_, err := l.Wait()
			is.Equal(err, Closed)
		},
	))
}

func TestBroadcaster_OnlyNewValues(t *testing.T) {
	is := is.New(t)
	b := New[string](4)
	b.Broadcast("old")

	l := b.Listener()
	b.Broadcast("new")

	v, err := l.Wait()
	is.NoErr(err)
	is.Equal(v, "new")
}

func TestBroadcaster_Lagged(t *testing.T) {
	is := is.New(t)
	b := New[int](2)
	l := b.Listener()

	for i := 1; i <= 5; i++ {
		b.Broadcast(i)
	}

	_, err := l.Wait()
	is.Equal(err, Lagged)

	v, err := l.Wait()
	is.NoErr(err)
	is.Equal(v, 4)

	v, err = l.Wait()
	is.NoErr(err)
	is.Equal(v, 5)
}

func TestBroadcaster_WaitContext(t *testing.T) {
	is := is.New(t)
	b := New[int](2)
	l := b.Listener()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := l.WaitContext(ctx)
	is.Equal(err, context.DeadlineExceeded)
}
