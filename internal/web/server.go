// Package web serves launcher sessions over WebSocket. Each connection owns
// one session: JSON commands come in, one JSON snapshot goes out per frame.
package web

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/loop"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 4096
	commandBuffer  = 64
)

// Message types sent to the browser.
const (
	MsgHello    = "hello"
	MsgSnapshot = "snapshot"
	MsgError    = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the server → browser envelope.
type Message struct {
	Type     string         `json:"type"`
	Session  string         `json:"session,omitempty"`
	Snapshot *game.Snapshot `json:"snapshot,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Handler upgrades HTTP requests and runs one session per connection.
type Handler struct {
	cfg       game.Config
	logger    *log.Logger
	hub       *loop.Hub
	frameTime time.Duration
}

// NewHandler returns a handler serving sessions of cfg. A nil hub gets a
// private one.
func NewHandler(cfg game.Config, logger *log.Logger, hub *loop.Hub) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if hub == nil {
		hub = loop.NewHub()
	}
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		hub:       hub,
		frameTime: loop.FrameTime,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	logger := h.logger.With("session", id)

	done, leave, err := h.hub.Join(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer leave()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	sess, err := game.NewSession(h.cfg, game.WithLogger(logger))
	if err != nil {
		logger.Error("session", "err", err)
		return
	}

	logger.Info("websocket session started", "remote", r.RemoteAddr)
	err = h.run(conn, sess, id, done, logger)
	switch {
	case err == nil:
		logger.Info("websocket session ended", "launches", sess.LaunchCount(), "hits", sess.HitCount())
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		logger.Info("websocket closed by client", "launches", sess.LaunchCount(), "hits", sess.HitCount())
	default:
		logger.Warn("websocket session failed", "err", err)
	}
}

// run is the frame loop. It is the only goroutine that touches sess or
// writes to conn.
func (h *Handler) run(conn *websocket.Conn, sess *game.Session, id string, done <-chan struct{}, logger *log.Logger) error {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	cmds := make(chan game.Command, commandBuffer)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go readCommands(conn, cmds, readErr, stop)

	if err := write(conn, Message{Type: MsgHello, Session: id}); err != nil {
		return err
	}

	ticker := time.NewTicker(h.frameTime)
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, loop.ErrShuttingDown.Error())
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil

		case err := <-readErr:
			return err

		case cmd := <-cmds:
			if err := sess.Apply(cmd); err != nil {
				logger.Debug("command rejected", "type", cmd.Kind, "err", err)
				if err := write(conn, Message{Type: MsgError, Error: err.Error()}); err != nil {
					return err
				}
			}

		case <-ticker.C:
			if ev := sess.Step(h.frameTime); ev.Terminal() {
				logger.Debug("round resolved", "event", ev)
			}
			snap := sess.Snapshot()
			if err := write(conn, Message{Type: MsgSnapshot, Snapshot: &snap}); err != nil {
				return err
			}

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

// readCommands decodes commands until the connection fails or stop closes.
// Malformed JSON ends the connection.
func readCommands(conn *websocket.Conn, cmds chan<- game.Command, readErr chan<- error, stop <-chan struct{}) {
	for {
		var cmd game.Command
		if err := conn.ReadJSON(&cmd); err != nil {
			readErr <- err
			return
		}
		select {
		case cmds <- cmd:
		case <-stop:
			return
		}
	}
}

func write(conn *websocket.Conn, msg Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	}
	return nil
}
