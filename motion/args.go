package motion

import (
	"fmt"
	"strings"
)

// Classification tags a motion event with the kind of gesture it belongs to.
type Classification uint8

const (
	ClassificationNone Classification = iota
	ClassificationAmbiguousGesture
	ClassificationDeepPress
	ClassificationTwoFingerSwipe
	ClassificationMultiFingerSwipe
)

func (c Classification) String() string {
	switch c {
	case ClassificationNone:
		return "NONE"
	case ClassificationAmbiguousGesture:
		return "AMBIGUOUS_GESTURE"
	case ClassificationDeepPress:
		return "DEEP_PRESS"
	case ClassificationTwoFingerSwipe:
		return "TWO_FINGER_SWIPE"
	case ClassificationMultiFingerSwipe:
		return "MULTI_FINGER_SWIPE"
	default:
		return fmt.Sprintf("CLASSIFICATION(%d)", uint8(c))
	}
}

type ToolType int32

const (
	ToolTypeUnknown ToolType = 0
	ToolTypeFinger  ToolType = 1
	ToolTypeStylus  ToolType = 2
	ToolTypeMouse   ToolType = 3
	ToolTypeEraser  ToolType = 4
)

type Source uint32

const (
	SourceMouse    Source = 0x00002002
	SourceTouchpad Source = 0x00100008
)

// PointerProperties describes the identity of a pointer within an event.
type PointerProperties struct {
	ID       int32    `json:"id"`
	ToolType ToolType `json:"tool_type"`
}

// PointerCoords holds the axis values of a pointer.
type PointerCoords struct {
	X              float32 `json:"x"`
	Y              float32 `json:"y"`
	Pressure       float32 `json:"pressure"`
	RelativeX      float32 `json:"relative_x,omitempty"`
	RelativeY      float32 `json:"relative_y,omitempty"`
	GestureXOffset float32 `json:"gesture_x_offset,omitempty"`
	GestureYOffset float32 `json:"gesture_y_offset,omitempty"`
}

// NotifyMotionArgs is a single motion notification, ready to be forwarded to the dispatcher.
// All slices are owned by the notification.
type NotifyMotionArgs struct {
	ID                int32               `json:"id"`
	EventTime         int64               `json:"event_time"`
	ReadTime          int64               `json:"read_time"`
	DeviceID          int32               `json:"device_id"`
	Source            Source              `json:"source"`
	DisplayID         int32               `json:"display_id"`
	Action            Action              `json:"action"`
	ActionButton      Button              `json:"action_button"`
	ButtonState       Button              `json:"button_state"`
	Classification    Classification      `json:"classification"`
	PointerProperties []PointerProperties `json:"pointer_properties"`
	PointerCoords     []PointerCoords     `json:"pointer_coords"`
	XCursorPosition   float32             `json:"x_cursor_position"`
	YCursorPosition   float32             `json:"y_cursor_position"`
	DownTime          int64               `json:"down_time"`
}

func (a NotifyMotionArgs) PointerCount() int {
	return len(a.PointerProperties)
}

func (a NotifyMotionArgs) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "NotifyMotionArgs(id=%d, eventTime=%d, deviceId=%d, displayId=%d, action=%s",
		a.ID, a.EventTime, a.DeviceID, a.DisplayID, a.Action)

	if a.ActionButton != 0 {
		fmt.Fprintf(&b, ", actionButton=%s", a.ActionButton)
	}

	fmt.Fprintf(&b, ", buttonState=%s, classification=%s, downTime=%d, pointers={",
		a.ButtonState, a.Classification, a.DownTime)

	for i, c := range a.PointerCoords {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%d: (%.1f, %.1f) pressure=%.1f", a.PointerProperties[i].ID, c.X, c.Y, c.Pressure)

		if c.RelativeX != 0 || c.RelativeY != 0 {
			fmt.Fprintf(&b, " rel=(%.1f, %.1f)", c.RelativeX, c.RelativeY)
		}

		if c.GestureXOffset != 0 || c.GestureYOffset != 0 {
			fmt.Fprintf(&b, " offset=(%.3f, %.3f)", c.GestureXOffset, c.GestureYOffset)
		}
	}

	b.WriteString("})")

	return b.String()
}
