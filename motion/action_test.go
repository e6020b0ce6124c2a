package motion

import (
	"github.com/matryer/is"
	"testing"
)

func TestPointerAction(t *testing.T) {
	is := is.New(t)

	a := PointerAction(ActionPointerDown, 2)
	is.Equal(a, ActionPointerDown|2<<ActionPointerIndexShift)
	is.Equal(a.Masked(), ActionPointerDown)
	is.Equal(a.PointerIndex(), 2)
	is.Equal(a.String(), "POINTER_DOWN(2)")

	a = PointerAction(ActionPointerUp, 3)
	is.Equal(int32(a), int32(0x0306))
}

func TestAction_String(t *testing.T) {
	is := is.New(t)

	is.Equal(ActionHoverMove.String(), "HOVER_MOVE")
	is.Equal(ActionButtonRelease.String(), "BUTTON_RELEASE")
	is.Equal(Action(42).String(), "ACTION(42)")
}

func TestButton_String(t *testing.T) {
	is := is.New(t)

	is.Equal(Button(0).String(), "0")
	is.Equal((ButtonPrimary | ButtonSecondary).String(), "PRIMARY|SECONDARY")
	is.Equal((ButtonTertiary | 1<<7).String(), "TERTIARY|0x80")
}

func TestIDGenerator_Next(t *testing.T) {
	is := is.New(t)

	g := NewIDGenerator()
	is.Equal(g.Next(), int32(1))
	is.Equal(g.Next(), int32(2))

	g.next.Store(-1)
	is.Equal(g.Next(), int32(1))
}
