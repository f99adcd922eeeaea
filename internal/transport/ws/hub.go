package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Admin-console event types
const (
	MsgAssessmentStarted   MessageType = "assessment_started"
	MsgAssessmentProgress  MessageType = "assessment_progress"
	MsgAssessmentCompleted MessageType = "assessment_completed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans live assessment events out to connected admin consoles
type Hub struct {
	adminConns map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
}

// Connection represents one admin WebSocket connection
type Connection struct {
	AdminID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		adminConns: make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.adminConns[conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Admin %s connected to live feed", conn.AdminID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.adminConns[conn]; ok {
				delete(h.adminConns, conn)
				close(conn.Send)
				log.Printf("Admin %s disconnected from live feed", conn.AdminID)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.adminConns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAdmins sends an event to every connected admin console
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmins(event string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	data, err := json.Marshal(&Message{
		Type:    MessageType(event),
		Payload: body,
	})
	if err != nil {
		return
	}
	h.broadcast <- data
}
