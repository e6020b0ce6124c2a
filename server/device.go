package server

import (
	"github.com/The-PhoenixOS/frameworks-native/config"
	"github.com/The-PhoenixOS/frameworks-native/converter"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/listener"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"sync"
)

// InputDevice is the pipeline of a single touchpad. Gestures are converted and delivered to the sink one at a time,
// so the sink observes the notifications of a device in the order they were produced.
type InputDevice struct {
	mu        sync.Mutex
	config    config.DeviceConfig
	converter *converter.GestureConverter
	queue     *listener.Queued
}

func (s *Server) newInputDevice(cfg config.DeviceConfig) *InputDevice {
	return &InputDevice{
		config: cfg,
		converter: converter.New(s.log.With("device", cfg.ID), converter.Config{
			DeviceID:   cfg.ID,
			Display:    s.display,
			Pointer:    s.pointer,
			IDs:        s.ids,
			XAxisRange: cfg.XAxisRange(),
			YAxisRange: cfg.YAxisRange(),
		}),
		queue: listener.NewQueued(listener.Multi{
			listener.NewLogging(s.log.With("device", cfg.ID)),
			s.hub,
		}),
	}
}

func (d *InputDevice) ID() int32 {
	return d.config.ID
}

func (d *InputDevice) Name() string {
	return d.config.Name
}

// Process converts the gesture and delivers the resulting notifications to the sink before returning them.
func (d *InputDevice) Process(eventTime int64, readTime int64, gesture gestures.Gesture) []motion.NotifyMotionArgs {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := d.converter.HandleGesture(eventTime, readTime, gesture)
	for _, args := range out {
		d.queue.NotifyMotion(args)
	}

	// Nothing is delivered until the whole gesture is converted
	d.queue.Flush()

	return out
}

// Reset discards any held buttons or swipe without notifying the sink.
func (d *InputDevice) Reset() {
	d.mu.Lock()
	d.converter.Reset()
	d.mu.Unlock()
}

func (d *InputDevice) Dump() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.converter.Dump()
}
