package protocol

import (
	"context"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "inputflinger.GestureService"

const (
	sendGestureMethod  = "/" + ServiceName + "/SendGesture"
	setRotationMethod  = "/" + ServiceName + "/SetRotation"
	streamMotionMethod = "/" + ServiceName + "/StreamMotion"
)

// GestureServiceClient is the client API for the gesture service.
type GestureServiceClient interface {
	// SendGesture converts a gesture event and returns the produced notifications.
	SendGesture(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

	// SetRotation changes the orientation of the display.
	SetRotation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error)

	// StreamMotion streams every notification produced after the call, across all devices.
	StreamMotion(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (MotionStreamClient, error)
}

type gestureServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGestureServiceClient(cc grpc.ClientConnInterface) GestureServiceClient {
	return &gestureServiceClient{cc}
}

func (c *gestureServiceClient) SendGesture(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, sendGestureMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gestureServiceClient) SetRotation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	err := c.cc.Invoke(ctx, setRotationMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gestureServiceClient) StreamMotion(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (MotionStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &GestureServiceDesc.Streams[0], streamMotionMethod, opts...)
	if err != nil {
		return nil, err
	}

	x := &motionStreamClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

type MotionStreamClient interface {
	Recv() (*structpb.Struct, error)
	grpc.ClientStream
}

type motionStreamClient struct {
	grpc.ClientStream
}

func (x *motionStreamClient) Recv() (*structpb.Struct, error) {
	m := new(structpb.Struct)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GestureServiceServer is the server API for the gesture service.
type GestureServiceServer interface {
	SendGesture(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetRotation(context.Context, *structpb.Struct) (*empty.Empty, error)
	StreamMotion(*empty.Empty, MotionStreamServer) error
}

// UnimplementedGestureServiceServer can be embedded to have forward compatible implementations.
type UnimplementedGestureServiceServer struct {
}

func (UnimplementedGestureServiceServer) SendGesture(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendGesture not implemented")
}

func (UnimplementedGestureServiceServer) SetRotation(context.Context, *structpb.Struct) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetRotation not implemented")
}

func (UnimplementedGestureServiceServer) StreamMotion(*empty.Empty, MotionStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamMotion not implemented")
}

func RegisterGestureServiceServer(s grpc.ServiceRegistrar, srv GestureServiceServer) {
	s.RegisterService(&GestureServiceDesc, srv)
}

func sendGestureHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(GestureServiceServer).SendGesture(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: sendGestureMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GestureServiceServer).SendGesture(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func setRotationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(GestureServiceServer).SetRotation(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: setRotationMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GestureServiceServer).SetRotation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func streamMotionHandler(srv interface{}, stream grpc.ServerStream) error {
	m := new(empty.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GestureServiceServer).StreamMotion(m, &motionStreamServer{stream})
}

type MotionStreamServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type motionStreamServer struct {
	grpc.ServerStream
}

func (x *motionStreamServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

var GestureServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GestureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendGesture",
			Handler:    sendGestureHandler,
		},
		{
			MethodName: "SetRotation",
			Handler:    setRotationHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamMotion",
			Handler:       streamMotionHandler,
			ServerStreams: true,
		},
	},
}
