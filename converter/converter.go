package converter

import (
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"go.uber.org/zap"
	"strings"
)

// DefaultAxisRange is the touchpad axis range used when a device does not report one. Swipe offsets are expressed as
// a fraction of the axis range.
const DefaultAxisRange = 1000

// DisplayContext provides the display a device is associated with.
type DisplayContext interface {
	ID() int32
	Orientation() display.Rotation
}

// PointerController is the authority over the absolute cursor position.
type PointerController interface {
	Position() (float32, float32)

	// Move moves the cursor by a relative amount and returns the resulting, possibly clamped, position.
	Move(dx float32, dy float32) (float32, float32)
}

// Config describes the device a converter translates gestures for.
type Config struct {
	DeviceID int32

	// Display is polled for the orientation on every gesture. Optional.
	Display DisplayContext

	// Pointer is required.
	Pointer PointerController

	// IDs generates notification ids. A private generator is created when nil.
	IDs *motion.IDGenerator

	// XAxisRange and YAxisRange are the touchpad axis ranges (max - min). DefaultAxisRange is used when unset.
	XAxisRange float32
	YAxisRange float32
}

// GestureConverter translates gestures of a single touchpad into motion notifications.
// It is not safe for concurrent use; each device owns its converter.
type GestureConverter struct {
	log      *zap.SugaredLogger
	deviceID int32
	display  DisplayContext
	pointer  PointerController
	ids      *motion.IDGenerator
	xRange   float32
	yRange   float32

	orientation display.Rotation
	displayID   int32
	buttonState motion.Button
	downTime    int64
	swipe       swipeState
}

func New(log *zap.SugaredLogger, cfg Config) *GestureConverter {
	c := &GestureConverter{
		log:      log,
		deviceID: cfg.DeviceID,
		display:  cfg.Display,
		pointer:  cfg.Pointer,
		ids:      cfg.IDs,
		xRange:   cfg.XAxisRange,
		yRange:   cfg.YAxisRange,
	}

	if c.ids == nil {
		c.ids = motion.NewIDGenerator()
	}

	if c.xRange <= 0 {
		c.xRange = DefaultAxisRange
	}

	if c.yRange <= 0 {
		c.yRange = DefaultAxisRange
	}

	if c.display != nil {
		c.orientation = c.display.Orientation()
		c.displayID = c.display.ID()
	}

	return c
}

// SetOrientation overrides the cached display orientation. When the converter has a display context, the cache is
// refreshed from it on the next gesture.
func (c *GestureConverter) SetOrientation(orientation display.Rotation) {
	c.orientation = orientation
}

// HandleGesture translates a single gesture into an ordered list of notifications. Unsupported gestures produce an
// empty list.
func (c *GestureConverter) HandleGesture(when int64, readTime int64, gesture gestures.Gesture) []motion.NotifyMotionArgs {
	if c.display != nil {
		c.orientation = c.display.Orientation()
		c.displayID = c.display.ID()
	}

	switch g := gesture.(type) {
	case gestures.Move:
		return c.handleMove(when, readTime, g)
	case gestures.ButtonsChange:
		return c.handleButtonsChange(when, readTime, g)
	case gestures.Swipe:
		return c.handleMultiFingerSwipe(when, readTime, 3, g.DX, g.DY)
	case gestures.FourFingerSwipe:
		return c.handleMultiFingerSwipe(when, readTime, 4, g.DX, g.DY)
	case gestures.SwipeLift:
		return c.handleMultiFingerSwipeLift(when, readTime)
	default:
		c.log.Debugf("Ignoring unsupported gesture %T on device %d", gesture, c.deviceID)
		return nil
	}
}

// Reset returns the converter to its initial state without producing any notifications.
func (c *GestureConverter) Reset() {
	c.buttonState = 0
	c.downTime = 0
	c.swipe = swipeState{}
}

// Dump returns a description of the converter state.
func (c *GestureConverter) Dump() string {
	var b strings.Builder

	fmt.Fprintf(&b, "GestureConverter(device=%d):\n", c.deviceID)
	fmt.Fprintf(&b, "  Orientation: %s\n", c.orientation)
	fmt.Fprintf(&b, "  ButtonState: %s\n", c.buttonState)
	fmt.Fprintf(&b, "  DownTime: %d\n", c.downTime)
	fmt.Fprintf(&b, "  SwipeFingers: %d/%d\n", c.swipe.count, c.swipe.fingerCount)

	for _, f := range c.swipe.active() {
		fmt.Fprintf(&b, "    [%d] (%.1f, %.1f)\n", f.id, f.coords.X, f.coords.Y)
	}

	return b.String()
}

func (c *GestureConverter) isDragging() bool {
	return c.buttonState != 0
}

func (c *GestureConverter) handleMove(when int64, readTime int64, g gestures.Move) []motion.NotifyMotionArgs {
	dx, dy := display.RotateDelta(c.orientation, g.DX, g.DY)
	x, y := c.pointer.Move(dx, dy)

	action := motion.ActionHoverMove
	pressure := float32(0)
	if c.isDragging() {
		action = motion.ActionMove
		pressure = 1
	}

	coords := motion.PointerCoords{
		X:         x,
		Y:         y,
		Pressure:  pressure,
		RelativeX: dx,
		RelativeY: dy,
	}

	return []motion.NotifyMotionArgs{
		c.makeMotionArgs(when, readTime, action, 0, c.buttonState, motion.ClassificationNone, singlePointer(), []motion.PointerCoords{coords}),
	}
}

func singlePointer() []motion.PointerProperties {
	return []motion.PointerProperties{
		{ID: 0, ToolType: motion.ToolTypeFinger},
	}
}

func (c *GestureConverter) makeMotionArgs(
	when int64,
	readTime int64,
	action motion.Action,
	actionButton motion.Button,
	buttonState motion.Button,
	classification motion.Classification,
	properties []motion.PointerProperties,
	coords []motion.PointerCoords,
) motion.NotifyMotionArgs {
	x, y := c.pointer.Position()

	return motion.NotifyMotionArgs{
		ID:                c.ids.Next(),
		EventTime:         when,
		ReadTime:          readTime,
		DeviceID:          c.deviceID,
		Source:            motion.SourceMouse,
		DisplayID:         c.displayID,
		Action:            action,
		ActionButton:      actionButton,
		ButtonState:       buttonState,
		Classification:    classification,
		PointerProperties: properties,
		PointerCoords:     coords,
		XCursorPosition:   x,
		YCursorPosition:   y,
		DownTime:          c.downTime,
	}
}
