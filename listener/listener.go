package listener

import (
	"context"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"github.com/The-PhoenixOS/frameworks-native/util/broadcaster"
	"go.uber.org/zap"
)

var (
	ErrClosed = broadcaster.Closed
	ErrLagged = broadcaster.Lagged
)

// Listener receives motion notifications. Notifications of a device are delivered in the order they were produced.
type Listener interface {
	NotifyMotion(args motion.NotifyMotionArgs)
}

// Func adapts a function to a Listener.
type Func func(args motion.NotifyMotionArgs)

func (f Func) NotifyMotion(args motion.NotifyMotionArgs) {
	f(args)
}

// Multi delivers every notification to each listener in turn.
type Multi []Listener

func (m Multi) NotifyMotion(args motion.NotifyMotionArgs) {
	for _, l := range m {
		l.NotifyMotion(args)
	}
}

// Queued holds notifications until Flush is called.
type Queued struct {
	inner Listener
	queue []motion.NotifyMotionArgs
}

func NewQueued(inner Listener) *Queued {
	return &Queued{
		inner: inner,
	}
}

func (q *Queued) NotifyMotion(args motion.NotifyMotionArgs) {
	q.queue = append(q.queue, args)
}

// Flush forwards the queued notifications to the inner listener in order.
func (q *Queued) Flush() {
	for _, args := range q.queue {
		q.inner.NotifyMotion(args)
	}

	q.queue = q.queue[:0]
}

type logging struct {
	log *zap.SugaredLogger
}

// NewLogging returns a listener that logs every notification at debug level.
func NewLogging(log *zap.SugaredLogger) Listener {
	return &logging{
		log: log,
	}
}

func (l *logging) NotifyMotion(args motion.NotifyMotionArgs) {
	l.log.Debug(args)
}

// Hub fans notifications out to subscribers. Every subscriber sees every notification in order, unless it falls
// further behind than the hub's capacity.
type Hub struct {
	broadcaster *broadcaster.Broadcaster[motion.NotifyMotionArgs]
}

func NewHub(capacity int) *Hub {
	return &Hub{
		broadcaster: broadcaster.New[motion.NotifyMotionArgs](capacity),
	}
}

func (h *Hub) NotifyMotion(args motion.NotifyMotionArgs) {
	h.broadcaster.Broadcast(args)
}

// Subscribe returns a subscription receiving notifications published after this call.
func (h *Hub) Subscribe() *Subscription {
	return &Subscription{
		listener: h.broadcaster.Listener(),
	}
}

func (h *Hub) Close() {
	h.broadcaster.Close()
}

type Subscription struct {
	listener *broadcaster.Listener[motion.NotifyMotionArgs]
}

// Next blocks until the next notification is published, the hub is closed or ctx is done.
func (s *Subscription) Next(ctx context.Context) (motion.NotifyMotionArgs, error) {
	return s.listener.WaitContext(ctx)
}
