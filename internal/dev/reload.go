package dev

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/FifthTry/ftd/pkg/protocol"
)

// writeTimeout bounds a single frame write to a client.
const writeTimeout = 5 * time.Second

// ReloadServer manages WebSocket connections for live reload. Messages
// are binary protocol frames.
type ReloadServer struct {
	clients  map[*websocket.Conn]*sync.Mutex
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a new reload server.
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev only
			},
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request, greets the client with a Hello
// frame and keeps the connection until the client goes away.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	lock := &sync.Mutex{}
	r.mu.Lock()
	r.clients[conn] = lock
	r.mu.Unlock()

	if err := r.send(conn, lock, protocol.NewFrame(protocol.FrameHello, []byte{protocol.Version})); err != nil {
		r.drop(conn)
		return
	}
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr, "clients", r.ClientCount())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	r.drop(conn)
}

// NotifyReload tells clients that page changed. An empty page means every
// page may have changed.
func (r *ReloadServer) NotifyReload(page string) {
	r.broadcast(protocol.NewFrame(protocol.FrameReload, []byte(page)))
}

// maxErrorMessage keeps error frames well under the frame payload limit.
const maxErrorMessage = 8 << 10

// NotifyError tells clients that a page failed to load or render.
func (r *ReloadServer) NotifyError(em *protocol.ErrorMessage) {
	if len(em.Message) > maxErrorMessage {
		trimmed := *em
		trimmed.Message = em.Message[:maxErrorMessage]
		em = &trimmed
	}
	r.broadcast(protocol.NewFrame(protocol.FrameError, protocol.EncodeErrorMessage(em)))
}

// Ping sends a keepalive frame to all clients.
func (r *ReloadServer) Ping() {
	r.broadcast(protocol.NewFrame(protocol.FramePing, nil))
}

// broadcast sends a frame to all connected clients, dropping clients that
// fail.
func (r *ReloadServer) broadcast(f *protocol.Frame) {
	r.mu.RLock()
	clients := make(map[*websocket.Conn]*sync.Mutex, len(r.clients))
	for conn, lock := range r.clients {
		clients[conn] = lock
	}
	r.mu.RUnlock()

	for conn, lock := range clients {
		if err := r.send(conn, lock, f); err != nil {
			r.logger.Debug("reload client dropped", "error", err)
			r.drop(conn)
		}
	}
}

func (r *ReloadServer) send(conn *websocket.Conn, lock *sync.Mutex, f *protocol.Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

func (r *ReloadServer) drop(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
}
