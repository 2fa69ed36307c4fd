package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/awann-cloud/kedai-kiry-sub001/store"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client layar (kitchen, bar, snack, checker, admin)
// dan meneruskan event store ke mereka. Layar departemen hanya menerima
// event departemennya sendiri; checker & admin menerima semuanya.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// RegisterClient -> menambahkan connection ke set dengan role
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Run membaca event store sampai channel ditutup. Jalankan sebagai goroutine:
//
//	events, cancel := st.Subscribe()
//	go hub.Run(events)
func (h *Hub) Run(events <-chan store.Event) {
	for ev := range events {
		h.BroadcastEvent(ev)
	}
}

// BroadcastEvent -> kirim satu event store ke client yang berhak
func (h *Hub) BroadcastEvent(ev store.Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(Message{Event: ev.Type, Data: ev})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling event: %v", err)
		return
	}

	for conn, role := range h.clients {
		if !roleSeesDepartment(role, string(ev.Department)) {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending event to %s client: %v", role, err)
			continue
		}
	}
}

// BroadcastMessage -> broadcast pesan umum ke semua client
func (h *Hub) BroadcastMessage(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to client: %v", err)
		}
	}
}

// roleSeesDepartment: layar departemen = departemennya sendiri saja,
// checker & admin melihat semua departemen.
func roleSeesDepartment(role, department string) bool {
	switch role {
	case "checker", "admin":
		return true
	default:
		return role == department
	}
}
