package gestures

// Gesture represents a single classified primitive produced by the touchpad gesture library.
// The set of implementations is closed: Move, ButtonsChange, Swipe, FourFingerSwipe and SwipeLift.
type Gesture interface {
	// Kind returns the wire name of the primitive.
	Kind() Kind

	gesture()
}

// Kind identifies a gesture primitive on the wire.
type Kind string

const (
	KindMove            Kind = "move"
	KindButtonsChange   Kind = "buttons_change"
	KindSwipe           Kind = "swipe"
	KindFourFingerSwipe Kind = "four_finger_swipe"
	KindSwipeLift       Kind = "swipe_lift"
)

// Button represents a button bit as reported by the gesture library.
type Button uint32

const (
	ButtonNone    Button = 0
	ButtonLeft    Button = 1 << 0
	ButtonMiddle  Button = 1 << 1
	ButtonRight   Button = 1 << 2
	ButtonBack    Button = 1 << 3
	ButtonForward Button = 1 << 4
	ButtonSide    Button = 1 << 5
	ButtonExtra   Button = 1 << 6
)

// Move represents relative pointer motion in gesture space.
type Move struct {
	DX float32
	DY float32
}

// ButtonsChange represents buttons being pressed and released.
// Down and Up are bitmasks of library buttons.
type ButtonsChange struct {
	Down  Button
	Up    Button
	IsTap bool
}

// Swipe represents one frame of a three finger swipe. The gesture library locks a swipe to the axis it
// started on, so in practice only one of DX or DY is non-zero.
type Swipe struct {
	DX float32
	DY float32
}

// FourFingerSwipe represents one frame of a four finger swipe.
type FourFingerSwipe struct {
	DX float32
	DY float32
}

// SwipeLift signals the fingers of a swipe leaving the touchpad.
type SwipeLift struct{}

func (Move) Kind() Kind            { return KindMove }
func (ButtonsChange) Kind() Kind   { return KindButtonsChange }
func (Swipe) Kind() Kind           { return KindSwipe }
func (FourFingerSwipe) Kind() Kind { return KindFourFingerSwipe }
func (SwipeLift) Kind() Kind       { return KindSwipeLift }

func (Move) gesture()            {}
func (ButtonsChange) gesture()   {}
func (Swipe) gesture()           {}
func (FourFingerSwipe) gesture() {}
func (SwipeLift) gesture()       {}
