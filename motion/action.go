package motion

import (
	"fmt"
	"strings"
)

// Action represents the action of a motion event. For pointer down and pointer up actions the index of the affected
// pointer is packed into the bits selected by ActionPointerIndexMask.
type Action int32

const (
	ActionDown          Action = 0
	ActionUp            Action = 1
	ActionMove          Action = 2
	ActionCancel        Action = 3
	ActionOutside       Action = 4
	ActionPointerDown   Action = 5
	ActionPointerUp     Action = 6
	ActionHoverMove     Action = 7
	ActionScroll        Action = 8
	ActionHoverEnter    Action = 9
	ActionHoverExit     Action = 10
	ActionButtonPress   Action = 11
	ActionButtonRelease Action = 12
)

const (
	ActionMask              Action = 0xff
	ActionPointerIndexMask  Action = 0xff00
	ActionPointerIndexShift        = 8
)

var actionNames = map[Action]string{
	ActionDown:          "DOWN",
	ActionUp:            "UP",
	ActionMove:          "MOVE",
	ActionCancel:        "CANCEL",
	ActionOutside:       "OUTSIDE",
	ActionPointerDown:   "POINTER_DOWN",
	ActionPointerUp:     "POINTER_UP",
	ActionHoverMove:     "HOVER_MOVE",
	ActionScroll:        "SCROLL",
	ActionHoverEnter:    "HOVER_ENTER",
	ActionHoverExit:     "HOVER_EXIT",
	ActionButtonPress:   "BUTTON_PRESS",
	ActionButtonRelease: "BUTTON_RELEASE",
}

// PointerAction packs a pointer index into a pointer down or pointer up action.
func PointerAction(action Action, index int) Action {
	return action&ActionMask | Action(index)<<ActionPointerIndexShift&ActionPointerIndexMask
}

// Masked returns the action without its pointer index.
func (a Action) Masked() Action {
	return a & ActionMask
}

// PointerIndex returns the pointer index packed into the action.
func (a Action) PointerIndex() int {
	return int((a & ActionPointerIndexMask) >> ActionPointerIndexShift)
}

func (a Action) String() string {
	name, ok := actionNames[a.Masked()]
	if !ok {
		name = fmt.Sprintf("ACTION(%d)", int32(a.Masked()))
	}

	switch a.Masked() {
	case ActionPointerDown, ActionPointerUp:
		return fmt.Sprintf("%s(%d)", name, a.PointerIndex())
	}

	return name
}

// Button represents a motion event button, or a bitmask of buttons when used as a button state.
type Button int32

const (
	ButtonPrimary   Button = 1 << 0
	ButtonSecondary Button = 1 << 1
	ButtonTertiary  Button = 1 << 2
	ButtonBack      Button = 1 << 3
	ButtonForward   Button = 1 << 4
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{ButtonPrimary, "PRIMARY"},
	{ButtonSecondary, "SECONDARY"},
	{ButtonTertiary, "TERTIARY"},
	{ButtonBack, "BACK"},
	{ButtonForward, "FORWARD"},
}

func (b Button) String() string {
	if b == 0 {
		return "0"
	}

	var parts []string
	rest := b
	for _, bn := range buttonNames {
		if b&bn.button != 0 {
			parts = append(parts, bn.name)
			rest &^= bn.button
		}
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", int32(rest)))
	}

	return strings.Join(parts, "|")
}
