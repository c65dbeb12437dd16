package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/events"
)

const writeWait = 10 * time.Second

type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

// toMessage converts a bus event to its wire form. Cart events are only
// forwarded to the client watching that session; ok is false when the
// event is not for this client.
func toMessage(event any, session string) (Message, bool) {
	switch e := event.(type) {
	case events.ProductAdded:
		return Message{EventType: "product_added", Data: e}, true
	case events.ProductsLoaded:
		return Message{EventType: "products_loaded", Data: e}, true
	case events.CartUpdated:
		if session == "" || e.SessionID != session {
			return Message{}, false
		}
		return Message{EventType: "cart_updated", Data: e}, true
	default:
		return Message{}, false
	}
}

// HandleWebSocket streams catalog events, and cart events of the session
// named by the "session" query parameter.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	session := r.URL.Query().Get("session")

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	log := h.Log.With("client", uuid.New().String(), "session", session)
	log.Debug("WebSocket client connected")

	// Subscribe to events
	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	// Create a done channel to signal when to connection is closed
	done := make(chan struct{})

	// Handle incoming requests (if any)
	go h.readPump(conn, done, log)

	for {
		select {
		case event, ok := <-subscriber:
			if !ok {
				// bus closed during shutdown
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}

			message, ok := toMessage(event, session)
			if !ok {
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				log.Error("Error marshalling message", "error", err)
				continue
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Error("Error writing message to WebSocket", "error", err)
				return
			}
		case <-done:
			log.Info("WebSocket connection closed by the client")
			return
		}
	}
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}, log hclog.Logger) {
	defer close(done)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error("Error reading message", "error", err)
			}
			break
		}
	}
}
