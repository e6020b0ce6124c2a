package gestures

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown gesture kind")

// Event represents a gesture delivered for a specific device, together with the timestamps it was produced at.
// Times are in nanoseconds on a monotonic clock.
type Event struct {
	DeviceID  int32
	EventTime int64
	ReadTime  int64
	Gesture   Gesture
}

type wireGesture struct {
	Type  Kind    `json:"type"`
	DX    float32 `json:"dx,omitempty"`
	DY    float32 `json:"dy,omitempty"`
	Down  Button  `json:"down,omitempty"`
	Up    Button  `json:"up,omitempty"`
	IsTap bool    `json:"is_tap,omitempty"`
}

type wireEvent struct {
	DeviceID  int32       `json:"device_id"`
	EventTime int64       `json:"event_time"`
	ReadTime  int64       `json:"read_time"`
	Gesture   wireGesture `json:"gesture"`
}

func toWire(g Gesture) (wireGesture, error) {
	switch g := g.(type) {
	case Move:
		return wireGesture{Type: KindMove, DX: g.DX, DY: g.DY}, nil
	case ButtonsChange:
		return wireGesture{Type: KindButtonsChange, Down: g.Down, Up: g.Up, IsTap: g.IsTap}, nil
	case Swipe:
		return wireGesture{Type: KindSwipe, DX: g.DX, DY: g.DY}, nil
	case FourFingerSwipe:
		return wireGesture{Type: KindFourFingerSwipe, DX: g.DX, DY: g.DY}, nil
	case SwipeLift:
		return wireGesture{Type: KindSwipeLift}, nil
	default:
		return wireGesture{}, fmt.Errorf("%w: %T", ErrUnknownKind, g)
	}
}

func (w wireGesture) gesture() (Gesture, error) {
	switch w.Type {
	case KindMove:
		return Move{DX: w.DX, DY: w.DY}, nil
	case KindButtonsChange:
		return ButtonsChange{Down: w.Down, Up: w.Up, IsTap: w.IsTap}, nil
	case KindSwipe:
		return Swipe{DX: w.DX, DY: w.DY}, nil
	case KindFourFingerSwipe:
		return FourFingerSwipe{DX: w.DX, DY: w.DY}, nil
	case KindSwipeLift:
		return SwipeLift{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Type)
	}
}

func (e Event) MarshalJSON() ([]byte, error) {
	g, err := toWire(e.Gesture)
	if err != nil {
		return nil, err
	}

	return json.Marshal(wireEvent{
		DeviceID:  e.DeviceID,
		EventTime: e.EventTime,
		ReadTime:  e.ReadTime,
		Gesture:   g,
	})
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	g, err := w.Gesture.gesture()
	if err != nil {
		return err
	}

	*e = Event{
		DeviceID:  w.DeviceID,
		EventTime: w.EventTime,
		ReadTime:  w.ReadTime,
		Gesture:   g,
	}

	return nil
}
