package notify

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 20 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Logger defines the minimal logging interface required by the hub.
type Logger interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

// ProviderHub keeps one realtime connection per provider id. Events for a
// provider are delivered on its own addressed channel, so a slow or dead
// connection never affects another provider.
type ProviderHub struct {
	logger Logger

	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[int]*websocket.Conn
	locks map[int]*sync.Mutex
}

func NewProviderHub(logger Logger) *ProviderHub {
	return &ProviderHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[int]*websocket.Conn),
		locks: make(map[int]*sync.Mutex),
	}
}

// ServeWS upgrades the connection and registers it under the provider id.
func (h *ProviderHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":provider_id")
	if idStr == "" {
		idStr = r.URL.Query().Get("provider_id")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id == 0 {
		http.Error(w, "missing provider_id", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("provider ws upgrade failed: %v", err)
		}
		return
	}

	h.mu.Lock()
	if old, ok := h.conns[id]; ok {
		_ = old.Close()
	}
	h.conns[id] = conn
	if _, ok := h.locks[id]; !ok {
		h.locks[id] = &sync.Mutex{}
	}
	h.mu.Unlock()

	if h.logger != nil {
		h.logger.Infof("provider %d connected", id)
	}

	go h.pingLoop(id, conn)
	go h.readLoop(id, conn)
}

// Send pushes an event to the provider's connection. Returns false when the
// provider has no live connection.
func (h *ProviderHub) Send(providerID int, event string, payload interface{}) bool {
	msg := struct {
		Event   string      `json:"event"`
		Payload interface{} `json:"payload"`
	}{Event: event, Payload: payload}

	data, err := json.Marshal(msg)
	if err != nil {
		return false
	}

	h.mu.RLock()
	conn, ok := h.conns[providerID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	sent := false
	h.safeWrite(providerID, func(c *websocket.Conn) error {
		if c != conn {
			return nil
		}
		c.SetWriteDeadline(time.Now().Add(writeWait))
		err := c.WriteMessage(websocket.TextMessage, data)
		sent = err == nil
		return err
	})
	return sent
}

func (h *ProviderHub) pingLoop(id int, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for range ticker.C {
		h.mu.RLock()
		alive := h.conns[id] == conn
		h.mu.RUnlock()
		if !alive {
			return
		}
		h.safeWrite(id, func(c *websocket.Conn) error {
			return c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		})
	}
}

func (h *ProviderHub) readLoop(id int, conn *websocket.Conn) {
	defer h.closeConn(id, conn)

	conn.SetReadLimit(16 << 10)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func (h *ProviderHub) safeWrite(id int, fn func(*websocket.Conn) error) {
	h.mu.RLock()
	conn, ok := h.conns[id]
	lock := h.locks[id]
	h.mu.RUnlock()
	if !ok || lock == nil {
		return
	}

	lock.Lock()
	defer lock.Unlock()
	if err := fn(conn); err != nil {
		h.closeConn(id, conn)
	}
}

func (h *ProviderHub) closeConn(id int, conn *websocket.Conn) {
	h.mu.Lock()
	if h.conns[id] == conn {
		delete(h.conns, id)
	}
	h.mu.Unlock()
	_ = conn.Close()
}
