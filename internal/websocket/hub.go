package websocket

import (
	"encoding/json"
	"sync"
)

// Change is the event fanned out to subscribers after a successful write.
type Change struct {
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// BroadcastChange drops the event for clients whose send buffer is full
// rather than blocking a write path on a slow subscriber.
func (h *Hub) BroadcastChange(entity string, id int64, action string) {
	payload, _ := json.Marshal(Change{Entity: entity, ID: id, Action: action})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
