package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	autocompleteuc "github.com/kailas-cloud/skysearch/internal/usecase/autocomplete"
)

const writeWait = 5 * time.Second

// Stream message types.
const (
	msgUpdate     = "update"
	msgDone       = "done"
	msgInit       = "init"
	msgSimpleMode = "simple_mode"
)

type streamMessage struct {
	Type       string                 `json:"type"`
	Update     *autocompleteuc.Update `json:"update,omitempty"`
	SimpleMode *bool                  `json:"simpleMode,omitempty"`
}

// StreamAutocomplete handles GET /autocomplete/stream?q= over a WebSocket.
// Each provider answer is pushed as it arrives, then a final "done".
func (s *Server) StreamAutocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.requestLogger(r.Context()).Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go discardReads(conn, cancel)

	for u := range s.autocomplete.Stream(ctx, q) {
		if err := writeMessage(conn, streamMessage{Type: msgUpdate, Update: &u}); err != nil {
			return
		}
	}
	if ctx.Err() != nil {
		return
	}
	if err := writeMessage(conn, streamMessage{Type: msgDone}); err != nil {
		return
	}
	closeNormally(conn)
}

// WatchSimpleMode handles GET /preferences/simple-mode/watch over a WebSocket.
// It sends the current flag, then every change until the client goes away.
func (s *Server) WatchSimpleMode(w http.ResponseWriter, r *http.Request) {
	pref, err := s.preferences.For(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	changes, unsubscribe := pref.Subscribe()
	defer unsubscribe()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.requestLogger(r.Context()).Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go discardReads(conn, cancel)

	current := pref.IsSimpleMode()
	if err := writeMessage(conn, streamMessage{Type: msgInit, SimpleMode: &current}); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-changes:
			if !ok {
				return
			}
			if err := writeMessage(conn, streamMessage{Type: msgSimpleMode, SimpleMode: &v}); err != nil {
				return
			}
		}
	}
}

func writeMessage(conn *websocket.Conn, msg streamMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

// discardReads consumes client frames so control messages are processed,
// and cancels once the connection is gone.
func discardReads(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func closeNormally(conn *websocket.Conn) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}
