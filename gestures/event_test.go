package gestures

import (
	"encoding/json"
	"errors"
	"github.com/matryer/is"
	"testing"
)

func TestEvent_UnmarshalJSON(t *testing.T) {
	is := is.New(t)

	var e Event
	err := json.Unmarshal([]byte(`{"device_id":3,"event_time":10,"read_time":12,"gesture":{"type":"buttons_change","down":5}}`), &e)
	is.NoErr(err)
	is.Equal(e.DeviceID, int32(3))
	is.Equal(e.EventTime, int64(10))
	is.Equal(e.ReadTime, int64(12))
	is.Equal(e.Gesture, ButtonsChange{Down: ButtonLeft | ButtonRight})
}

func TestEvent_UnmarshalJSON_UnknownKind(t *testing.T) {
	is := is.New(t)

	var e Event
	err := json.Unmarshal([]byte(`{"device_id":1,"gesture":{"type":"pinch"}}`), &e)
	is.True(errors.Is(err, ErrUnknownKind))
}

func TestEvent_MarshalJSON(t *testing.T) {
	is := is.New(t)

	data, err := json.Marshal(Event{DeviceID: 2, EventTime: 5, ReadTime: 6, Gesture: FourFingerSwipe{DX: 10}})
	is.NoErr(err)
	is.Equal(string(data), `{"device_id":2,"event_time":5,"read_time":6,"gesture":{"type":"four_finger_swipe","dx":10}}`)

	data, err = json.Marshal(Event{Gesture: SwipeLift{}})
	is.NoErr(err)
	is.Equal(string(data), `{"device_id":0,"event_time":0,"read_time":0,"gesture":{"type":"swipe_lift"}}`)
}

func TestEvent_MarshalJSON_NilGesture(t *testing.T) {
	is := is.New(t)

	_, err := json.Marshal(Event{DeviceID: 1})
	is.True(errors.Is(err, ErrUnknownKind))
}
