package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/sketchwall/sketchwall/internal/store"
	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Connection tuning for the board websocket.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20
	eventBuffer    = 16
	opTimeout      = 10 * time.Second
)

// wsEvent is a server-to-client frame. Kind is snapshot, updated,
// deleted or error.
type wsEvent struct {
	Kind    string        `json:"kind"`
	BoardID string        `json:"board_id"`
	Board   *canvas.Board `json:"board,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// wsOp is a client-to-server frame. Op is add_shape, update_shape,
// delete_shape or move_shape.
type wsOp struct {
	Op      string        `json:"op"`
	Shape   *canvas.Shape `json:"shape,omitempty"`
	ShapeID string        `json:"shape_id,omitempty"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
}

type wsClient struct {
	server  *Server
	conn    *websocket.Conn
	boardID string
	events  <-chan store.Event
	cancel  func()
	send    chan wsEvent
}

// handleWS upgrades the connection, sends a board snapshot and then
// streams committed changes. Operations received from the client apply
// through the same manager as the REST handlers, so this client's view
// and everyone else's stay in lockstep.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	board, err := s.boards.Get(r.Context(), boardID)
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		return
	}

	events, cancel := s.boards.Subscribe(boardID, eventBuffer)
	client := &wsClient{
		server:  s,
		conn:    conn,
		boardID: boardID,
		events:  events,
		cancel:  cancel,
		send:    make(chan wsEvent, 8),
	}
	client.send <- wsEvent{Kind: "snapshot", BoardID: boardID, Board: board}

	go client.writePump()
	client.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		c.cancel()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var op wsOp
		if err := json.Unmarshal(data, &op); err != nil {
			c.reportError(errors.New(errors.ErrCodeInvalidInput, "malformed operation"))
			continue
		}
		if err := c.apply(op); err != nil {
			c.reportError(err)
		}
	}
}

// apply commits one client operation. The resulting change comes back
// through the event subscription like any other write.
func (c *wsClient) apply(op wsOp) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := c.server.boards.Update(ctx, c.boardID, func(b *canvas.Board) error {
		switch op.Op {
		case "add_shape":
			if op.Shape == nil {
				return errors.New(errors.ErrCodeInvalidInput, "add_shape requires a shape")
			}
			return applyAddShape(b, op.Shape)
		case "update_shape":
			if op.Shape == nil {
				return errors.New(errors.ErrCodeInvalidInput, "update_shape requires a shape")
			}
			id := op.ShapeID
			if id == "" {
				id = op.Shape.ID
			}
			return applyUpdateShape(b, id, op.Shape)
		case "delete_shape":
			return applyDeleteShape(b, op.ShapeID)
		case "move_shape":
			return applyMoveShape(b, op.ShapeID, op.X, op.Y)
		default:
			return errors.New(errors.ErrCodeInvalidInput, "unknown op %q", op.Op)
		}
	})
	return err
}

func (c *wsClient) reportError(err error) {
	select {
	case c.send <- wsEvent{Kind: "error", BoardID: c.boardID, Error: errors.UserMessage(err)}:
	default:
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if c.writeEvent(wsEvent{Kind: string(ev.Kind), BoardID: ev.BoardID, Board: ev.Board}) != nil {
				return
			}
		case ev := <-c.send:
			if c.writeEvent(ev) != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if c.conn.WriteMessage(websocket.PingMessage, nil) != nil {
				return
			}
		}
	}
}

func (c *wsClient) writeEvent(ev wsEvent) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(ev)
}
