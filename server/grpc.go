package server

import (
	"context"
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/listener"
	"github.com/The-PhoenixOS/frameworks-native/protocol"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type gestureServer struct {
	protocol.UnimplementedGestureServiceServer
	server *Server
}

func (s *gestureServer) SendGesture(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	event, err := protocol.StructToEvent(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid gesture event: %v", err)
	}

	out, err := s.server.HandleEvent(event)
	if errors.Is(err, ErrUnknownDevice) {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	} else if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	resp, err := protocol.NotificationsToStruct(out)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding notifications: %v", err)
	}

	return resp, nil
}

func (s *gestureServer) SetRotation(ctx context.Context, in *structpb.Struct) (*empty.Empty, error) {
	rotation, err := protocol.StructToRotation(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	s.server.SetRotation(rotation)

	return &empty.Empty{}, nil
}

func (s *gestureServer) StreamMotion(e *empty.Empty, stream protocol.MotionStreamServer) error {
	sub := s.server.hub.Subscribe()

	// The header tells the client that it is subscribed
	if err := stream.SendHeader(metadata.MD{}); err != nil {
		return err
	}

	for {
		args, err := sub.Next(stream.Context())
		if errors.Is(err, listener.ErrLagged) {
			s.server.log.Warn("Motion stream lagged, skipping notifications")
			continue
		} else if errors.Is(err, listener.ErrClosed) {
			return nil
		} else if err != nil {
			return status.FromContextError(err).Err()
		}

		msg, err := protocol.NotificationToStruct(args)
		if err != nil {
			return status.Errorf(codes.Internal, "encoding notification: %v", err)
		}

		if err := stream.Send(msg); err != nil {
			return err
		}
	}
}
