package server

import (
	"errors"
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/config"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/listener"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"github.com/The-PhoenixOS/frameworks-native/pointer"
	"github.com/The-PhoenixOS/frameworks-native/protocol"
	"github.com/The-PhoenixOS/frameworks-native/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"net"
	"net/http"
	"sort"
	"sync"
)

var ErrUnknownDevice = errors.New("unknown device")

type Server struct {
	log     *zap.SugaredLogger
	cfg     *config.Config
	display *display.Display
	pointer *pointer.Controller
	ids     *motion.IDGenerator
	hub     *listener.Hub
	devices map[int32]*InputDevice

	recordMu sync.Mutex
	recorder *trace.Writer

	grpcServer *grpc.Server
	httpServer *http.Server
}

func New(log *zap.SugaredLogger, cfg *config.Config) (*Server, error) {
	disp := display.New(cfg.Display.ID, cfg.Display.Width, cfg.Display.Height, cfg.Display.Rotation)

	s := &Server{
		log:     log,
		cfg:     cfg,
		display: disp,
		pointer: pointer.New(pointer.BoundsForSize(disp.LogicalSize())),
		ids:     motion.NewIDGenerator(),
		hub:     listener.NewHub(cfg.Agent.HubCapacity),
		devices: make(map[int32]*InputDevice),
	}

	for _, d := range cfg.Devices {
		log.Infow("Registering device", "id", d.ID, "name", d.Name)
		s.devices[d.ID] = s.newInputDevice(d)
	}

	if cfg.Agent.RecordPath != "" {
		log.Info("Recording gestures to ", cfg.Agent.RecordPath)

		recorder, err := trace.Create(cfg.Agent.RecordPath)
		if err != nil {
			return nil, fmt.Errorf("opening trace: %w", err)
		}

		s.recorder = recorder
	}

	s.grpcServer = grpc.NewServer()
	protocol.RegisterGestureServiceServer(s.grpcServer, &gestureServer{
		server: s,
	})

	return s, nil
}

// Start listens on the configured addresses and serves in the background.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.Agent.GrpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	go func() {
		if err := s.Serve(lis); err != nil {
			s.log.Error("grpc server ", err)
		}
	}()

	if s.cfg.Agent.WsAddr == "" {
		return nil
	}

	wsLis, err := net.Listen("tcp", s.cfg.Agent.WsAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.httpServer = &http.Server{
		Handler: s.Handler(),
	}

	go func() {
		if err := s.httpServer.Serve(wsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("websocket server ", err)
		}
	}()

	s.log.Infow("Listening", "grpc", lis.Addr(), "ws", wsLis.Addr())

	return nil
}

// Serve serves the gesture service on lis until the server is closed.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// Handler returns the http handler of the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/motion", s.wsEndpoint)
	return mux
}

func (s *Server) Display() *display.Display {
	return s.display
}

func (s *Server) Pointer() *pointer.Controller {
	return s.pointer
}

func (s *Server) Hub() *listener.Hub {
	return s.hub
}

func (s *Server) Device(id int32) (*InputDevice, bool) {
	d, ok := s.devices[id]
	return d, ok
}

// Devices returns the registered devices ordered by id.
func (s *Server) Devices() []*InputDevice {
	devices := make([]*InputDevice, 0, len(s.devices))
	for _, d := range s.devices {
		devices = append(devices, d)
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].ID() < devices[j].ID()
	})

	return devices
}

// HandleEvent records the event, converts it on its device and returns the delivered notifications.
func (s *Server) HandleEvent(event gestures.Event) ([]motion.NotifyMotionArgs, error) {
	d, ok := s.Device(event.DeviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDevice, event.DeviceID)
	}

	s.record(event)

	return d.Process(event.EventTime, event.ReadTime, event.Gesture), nil
}

func (s *Server) record(event gestures.Event) {
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	if s.recorder == nil {
		return
	}

	err := s.recorder.Write(event)
	if err == nil {
		err = s.recorder.Flush()
	}

	if err != nil {
		err = multierr.Append(err, s.recorder.Close())
		s.log.Error("Recording stopped ", err)
		s.recorder = nil
	}
}

// SetRotation rotates the display. The cursor bounds follow the logical size of the display.
func (s *Server) SetRotation(rotation display.Rotation) {
	s.log.Info("Display rotation ", rotation)

	s.display.SetOrientation(rotation)
	s.pointer.SetBounds(pointer.BoundsForSize(s.display.LogicalSize()))
}

// ResetDevices discards the gesture state of every device.
func (s *Server) ResetDevices() {
	for _, d := range s.Devices() {
		d.Reset()
	}
}

func (s *Server) Close() error {
	var err error

	s.hub.Close()
	s.grpcServer.GracefulStop()

	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Close())
	}

	for _, d := range s.Devices() {
		s.log.Info(d.Dump())
	}

	s.recordMu.Lock()
	if s.recorder != nil {
		s.log.Infow("Closing trace", "events", s.recorder.Count())
		err = multierr.Append(err, s.recorder.Close())
		s.recorder = nil
	}
	s.recordMu.Unlock()

	return err
}
