package converter

import (
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"math/bits"
)

const (
	maxFakeFingers = 4

	// Horizontal distance between the fake fingers of a swipe. Only their relative motion is observable.
	fakeFingerSpacing = 100
)

// fingerSlot is a fake finger used to render a swipe as a multi-pointer gesture.
type fingerSlot struct {
	id     int32
	coords motion.PointerCoords
}

// swipeState holds the fake fingers of the active swipe. Slots [0, count) are active, in activation order, so the
// position of a slot is also its pointer index. Pointer ids are allocated separately and never reused while held.
type swipeState struct {
	fingers     [maxFakeFingers]fingerSlot
	count       int
	fingerCount int
	idBits      uint32
}

func (s *swipeState) inProgress() bool {
	return s.count > 0
}

func (s *swipeState) active() []fingerSlot {
	return s.fingers[:s.count]
}

// allocate activates a new slot with the lowest free pointer id.
func (s *swipeState) allocate(x float32, y float32) {
	id := int32(bits.TrailingZeros32(^s.idBits))
	s.idBits |= 1 << id

	s.fingers[s.count] = fingerSlot{
		id: id,
		coords: motion.PointerCoords{
			X:        x,
			Y:        y,
			Pressure: 1,
		},
	}
	s.count++
}

// retire deactivates the most recently activated slot.
func (s *swipeState) retire() {
	s.count--
	s.idBits &^= 1 << s.fingers[s.count].id
	s.fingers[s.count] = fingerSlot{}

	if s.count == 0 {
		s.fingerCount = 0
	}
}

func (s *swipeState) translate(dx float32, dy float32) {
	for i := range s.active() {
		s.fingers[i].coords.X += dx
		s.fingers[i].coords.Y += dy
	}
}

func (s *swipeState) setOffsets(xOffset float32, yOffset float32) {
	for i := range s.active() {
		s.fingers[i].coords.GestureXOffset = xOffset
		s.fingers[i].coords.GestureYOffset = yOffset
	}
}

func (s *swipeState) properties() []motion.PointerProperties {
	props := make([]motion.PointerProperties, s.count)
	for i, f := range s.active() {
		props[i] = motion.PointerProperties{
			ID:       f.id,
			ToolType: motion.ToolTypeFinger,
		}
	}
	return props
}

func (s *swipeState) coords() []motion.PointerCoords {
	coords := make([]motion.PointerCoords, s.count)
	for i, f := range s.active() {
		coords[i] = f.coords
	}
	return coords
}

func (c *GestureConverter) makeSwipeArgs(when int64, readTime int64, action motion.Action) motion.NotifyMotionArgs {
	return c.makeMotionArgs(when, readTime, action, 0, c.buttonState, motion.ClassificationMultiFingerSwipe,
		c.swipe.properties(), c.swipe.coords())
}

func (c *GestureConverter) handleMultiFingerSwipe(when int64, readTime int64, fingerCount int, dx float32, dy float32) []motion.NotifyMotionArgs {
	var out []motion.NotifyMotionArgs

	if !c.swipe.inProgress() {
		// The pointer is already down for the held buttons
		if c.buttonState != 0 {
			c.log.Debugf("Ignoring %d finger swipe while buttons %s are held on device %d",
				fingerCount, c.buttonState, c.deviceID)
			return nil
		}

		out = c.startMultiFingerSwipe(when, readTime, fingerCount)

		if dx == 0 && dy == 0 {
			return out
		}
	} else if c.swipe.fingerCount != fingerCount {
		c.log.Debugf("Ignoring %d finger swipe during %d finger swipe on device %d",
			fingerCount, c.swipe.fingerCount, c.deviceID)
		return nil
	}

	// The gesture library reports swipe dy with the opposite sign to pointer motion
	fdx, fdy := display.RotateDelta(c.orientation, dx, -dy)
	c.swipe.translate(fdx, fdy)

	c.swipe.setOffsets(dx/c.xRange, -dy/c.yRange)
	out = append(out, c.makeSwipeArgs(when, readTime, motion.ActionMove))
	c.swipe.setOffsets(0, 0)

	return out
}

func (c *GestureConverter) startMultiFingerSwipe(when int64, readTime int64, fingerCount int) []motion.NotifyMotionArgs {
	out := make([]motion.NotifyMotionArgs, 0, fingerCount+1)

	x, y := c.pointer.Position()
	c.downTime = when
	c.swipe.fingerCount = fingerCount

	for i := 0; i < fingerCount; i++ {
		c.swipe.allocate(x+fakeFingerSpacing*float32(i), y)

		action := motion.ActionDown
		if i > 0 {
			action = motion.PointerAction(motion.ActionPointerDown, i)
		}

		out = append(out, c.makeSwipeArgs(when, readTime, action))
	}

	return out
}

func (c *GestureConverter) handleMultiFingerSwipeLift(when int64, readTime int64) []motion.NotifyMotionArgs {
	if !c.swipe.inProgress() {
		c.log.Debugf("Ignoring swipe lift without a swipe on device %d", c.deviceID)
		return nil
	}

	out := make([]motion.NotifyMotionArgs, 0, c.swipe.count)

	for c.swipe.count > 1 {
		index := c.swipe.count - 1
		out = append(out, c.makeSwipeArgs(when, readTime, motion.PointerAction(motion.ActionPointerUp, index)))
		c.swipe.retire()
	}

	out = append(out, c.makeSwipeArgs(when, readTime, motion.ActionUp))
	c.swipe.retire()

	return out
}
