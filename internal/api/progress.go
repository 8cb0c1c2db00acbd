package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/crossplay/wordgrid/internal/logging"
	"github.com/gorilla/websocket"
)

// MessageType labels a progress event, generalizing the teacher's
// internal/realtime Message envelope from room broadcast messages to a
// single generation's progress feed.
type MessageType string

const (
	MsgAttempt MessageType = "attempt"
	MsgDone    MessageType = "done"
	MsgFailed  MessageType = "failed"
)

// Message is the WebSocket wire envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AttemptPayload reports one placement attempt's outcome.
type AttemptPayload struct {
	Attempt   int     `json:"attempt"`
	FillRatio float64 `json:"fillRatio"`
}

// DonePayload reports the generated crossword id.
type DonePayload struct {
	CrosswordID string `json:"crosswordId"`
}

// FailedPayload reports the terminal error string.
type FailedPayload struct {
	Error string `json:"error"`
}

// ProgressHub fans a single generation request's progress events out to at
// most one WebSocket subscriber per session (§5: "exactly one generation
// per request, one subscriber, and the grid is never shared across
// requests"). It never feeds back into the engine.
type ProgressHub struct {
	mu       sync.Mutex
	channels map[string]chan Message
	log      *logging.Logger
}

func NewProgressHub(log *logging.Logger) *ProgressHub {
	return &ProgressHub{channels: make(map[string]chan Message), log: log}
}

// Register opens a buffered channel for sessionID, replacing any previous
// one for the same session. The returned func closes and removes it.
func (h *ProgressHub) Register(sessionID string) (chan Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Message, 32)
	h.channels[sessionID] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.channels[sessionID] == ch {
			delete(h.channels, sessionID)
		}
		close(ch)
	}
}

// Publish sends msg to sessionID's subscriber if one is registered. It
// never blocks: a slow or absent subscriber drops the event.
func (h *ProgressHub) Publish(sessionID string, msg Message) {
	h.mu.Lock()
	ch := h.channels[sessionID]
	h.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- msg:
	default:
		h.log.Warn("progress: dropped event for session %s, subscriber too slow", sessionID)
	}
}

func mustPayload(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeProgress upgrades the connection and relays every message published
// for sessionID until the hub's channel closes or the connection breaks.
func ServeProgress(hub *ProgressHub, w http.ResponseWriter, r *http.Request, sessionID string, log *logging.Logger) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("progress: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch, unregister := hub.Register(sessionID)
	defer unregister()

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			if msg.Type == MsgDone || msg.Type == MsgFailed {
				return
			}
		case <-pingTicker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
