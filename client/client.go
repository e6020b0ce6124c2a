package client

import (
	"context"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"github.com/The-PhoenixOS/frameworks-native/protocol"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client represents a connection to an agent.
type Client struct {
	conn   *grpc.ClientConn
	client protocol.GestureServiceClient
}

// Connect opens a new connection to the given address. Additional dial options are appended to the defaults.
func Connect(addr string, extra ...grpc.DialOption) (*Client, error) {
	var opts []grpc.DialOption
	opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	opts = append(opts, grpc.WithBlock())
	opts = append(opts, extra...)

	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:   conn,
		client: protocol.NewGestureServiceClient(conn),
	}, nil
}

// SendGesture delivers a gesture to the device named by the event and returns the notifications it produced.
// A NotFound status is returned for devices the agent does not know.
func (c *Client) SendGesture(ctx context.Context, event gestures.Event) ([]motion.NotifyMotionArgs, error) {
	req, err := protocol.EventToStruct(event)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.SendGesture(ctx, req)
	if err != nil {
		return nil, err
	}

	return protocol.StructToNotifications(resp)
}

// SetRotation changes the orientation of the display the touchpads are associated with.
func (c *Client) SetRotation(ctx context.Context, rotation display.Rotation) error {
	_, err := c.client.SetRotation(ctx, protocol.RotationToStruct(rotation))
	return err
}

// MotionStream receives the notifications of every device of an agent.
type MotionStream struct {
	stream protocol.MotionStreamClient
}

// StreamMotion subscribes to the notifications produced by the agent. Once StreamMotion returns, every notification
// produced afterwards is received by the stream, unless the stream falls too far behind.
func (c *Client) StreamMotion(ctx context.Context) (*MotionStream, error) {
	stream, err := c.client.StreamMotion(ctx, &empty.Empty{})
	if err != nil {
		return nil, err
	}

	// The agent sends the header once subscribed
	if _, err := stream.Header(); err != nil {
		return nil, err
	}

	return &MotionStream{
		stream: stream,
	}, nil
}

// Recv blocks until the next notification is received. io.EOF is returned when the agent shuts down.
func (s *MotionStream) Recv() (motion.NotifyMotionArgs, error) {
	msg, err := s.stream.Recv()
	if err != nil {
		return motion.NotifyMotionArgs{}, err
	}

	return protocol.StructToNotification(msg)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
