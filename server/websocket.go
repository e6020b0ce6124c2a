package server

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/listener"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"github.com/gorilla/websocket"
	"net/http"
	"sync"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	MsgGesture  = "gesture"
	MsgRotation = "rotation"
	MsgReset    = "reset"
	MsgMotion   = "motion"
	MsgError    = "error"
)

// WsInMsg is a message sent by a websocket client.
type WsInMsg struct {
	Type     string          `json:"type"`
	Event    *gestures.Event `json:"event,omitempty"`
	Rotation *int            `json:"rotation,omitempty"`
}

// WsOutMsg is a message sent to websocket clients.
type WsOutMsg struct {
	Type   string                   `json:"type"`
	Motion *motion.NotifyMotionArgs `json:"motion,omitempty"`
	Error  *string                  `json:"error,omitempty"`
}

type wsClient struct {
	server    *Server
	ws        *websocket.Conn
	sendMutex sync.Mutex
}

func (s *Server) wsEndpoint(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("upgrade: ", err)
		return
	}
	defer ws.Close()

	c := &wsClient{
		server: s,
		ws:     ws,
	}

	sub := s.hub.Subscribe()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go c.processMessages(cancel)

	c.streamMotion(ctx, sub)
}

func (c *wsClient) streamMotion(ctx context.Context, sub *listener.Subscription) {
	for {
		args, err := sub.Next(ctx)
		if errors.Is(err, listener.ErrLagged) {
			c.server.log.Warn("Websocket client lagged, skipping notifications")
			continue
		} else if err != nil {
			return
		}

		if err := c.send(WsOutMsg{Type: MsgMotion, Motion: &args}); err != nil {
			c.server.log.Debug("websocket send ", err)
			return
		}
	}
}

func (c *wsClient) processMessages(cancel context.CancelFunc) {
	defer cancel()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.server.log.Debug("websocket closed ", err)
			return
		}

		var msg WsInMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(err)
			continue
		}

		if err := c.handle(msg); err != nil {
			c.sendError(err)
		}
	}
}

func (c *wsClient) handle(msg WsInMsg) error {
	switch msg.Type {
	case MsgGesture:
		if msg.Event == nil {
			return errors.New("gesture message without event")
		}

		_, err := c.server.HandleEvent(*msg.Event)
		return err
	case MsgRotation:
		if msg.Rotation == nil {
			return errors.New("rotation message without rotation")
		}

		rotation, err := display.ParseRotation(*msg.Rotation)
		if err != nil {
			return err
		}

		c.server.SetRotation(rotation)
		return nil
	case MsgReset:
		c.server.ResetDevices()
		return nil
	default:
		return errors.New("unknown message type " + msg.Type)
	}
}

func (c *wsClient) sendError(err error) {
	text := err.Error()
	if err := c.send(WsOutMsg{Type: MsgError, Error: &text}); err != nil {
		c.server.log.Debug("websocket send ", err)
	}
}

func (c *wsClient) send(msg WsOutMsg) error {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	return c.ws.WriteJSON(msg)
}
