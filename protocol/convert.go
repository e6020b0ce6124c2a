package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMissingField = errors.New("missing field")

// Payloads are carried as structpb.Struct values whose fields mirror the JSON encoding of the domain types.
// Integers survive the conversion exactly up to 2^53.

func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return structpb.NewStruct(m)
}

func fromStruct(s *structpb.Struct, v interface{}) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

func EventToStruct(event gestures.Event) (*structpb.Struct, error) {
	return toStruct(event)
}

func StructToEvent(s *structpb.Struct) (gestures.Event, error) {
	var event gestures.Event

	if _, ok := s.GetFields()["gesture"]; !ok {
		return event, fmt.Errorf("%w: gesture", ErrMissingField)
	}

	if err := fromStruct(s, &event); err != nil {
		return gestures.Event{}, err
	}

	return event, nil
}

func NotificationToStruct(args motion.NotifyMotionArgs) (*structpb.Struct, error) {
	return toStruct(args)
}

func StructToNotification(s *structpb.Struct) (motion.NotifyMotionArgs, error) {
	var args motion.NotifyMotionArgs
	err := fromStruct(s, &args)
	return args, err
}

type notifications struct {
	Notifications []motion.NotifyMotionArgs `json:"notifications"`
}

func NotificationsToStruct(args []motion.NotifyMotionArgs) (*structpb.Struct, error) {
	if args == nil {
		args = []motion.NotifyMotionArgs{}
	}

	return toStruct(notifications{Notifications: args})
}

func StructToNotifications(s *structpb.Struct) ([]motion.NotifyMotionArgs, error) {
	var n notifications
	if err := fromStruct(s, &n); err != nil {
		return nil, err
	}

	return n.Notifications, nil
}

func RotationToStruct(rotation display.Rotation) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"rotation": structpb.NewNumberValue(float64(rotation.Degrees())),
		},
	}
}

func StructToRotation(s *structpb.Struct) (display.Rotation, error) {
	v, ok := s.GetFields()["rotation"]
	if !ok {
		return display.Rotation0, fmt.Errorf("%w: rotation", ErrMissingField)
	}

	if _, ok := v.GetKind().(*structpb.Value_NumberValue); !ok {
		return display.Rotation0, fmt.Errorf("rotation must be a number")
	}

	return display.ParseRotation(int(v.GetNumberValue()))
}
