package ws

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// RefreshMessage is pushed to every client after a write; clients re-read
// all panels when they receive it.
type RefreshMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Hub owns the set of connected clients. Only Run touches Clients.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	log        logrus.FieldLogger
}

func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 16),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.Clients[conn] = true
			h.log.WithField("clients", len(h.Clients)).Debug("ws client connected")

		case conn := <-h.Unregister:
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}

		case message := <-h.Broadcast:
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
		}
	}
}

// Refresh queues a refresh notice without blocking the caller.
func (h *Hub) Refresh(reason string) {
	msg, err := EncodeRefresh(reason)
	if err != nil {
		h.log.WithError(err).Warn("encode refresh message")
		return
	}
	go func() {
		h.Broadcast <- msg
	}()
}

func EncodeRefresh(reason string) ([]byte, error) {
	return json.Marshal(RefreshMessage{Type: "refresh", Reason: reason})
}
