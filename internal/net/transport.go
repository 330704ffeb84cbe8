package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
)

const (
	// OpsPath is where viewers connect.
	OpsPath = "/ops"

	writeWait  = 2 * time.Second
	queueSize  = 256
	maxBacklog = 4096
)

type frame struct {
	data  []byte
	clear bool
}

// peer is one connected viewer. Frames reach it through send, which only its
// writer drains; send is closed when the hub drops the peer.
type peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub mirrors every surface operation to connected websocket viewers as
// JSON. Viewers that join late first receive the operations issued since the
// last clear. Surface calls never block on the network, and a slow viewer is
// dropped rather than holding up the others.
type Hub struct {
	upgrader websocket.Upgrader
	out      chan frame
	log      *zap.Logger

	mu      sync.Mutex
	peers   map[*websocket.Conn]*peer
	backlog [][]byte
}

var _ render.Surface = (*Hub)(nil)

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		out:   make(chan frame, queueSize),
		log:   log,
		peers: make(map[*websocket.Conn]*peer),
	}
}

// Run delivers queued operations until ctx is done, then disconnects every
// viewer.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case f := <-h.out:
			h.broadcast(f)
		}
	}
}

// Serve accepts viewers on ln until ctx is done.
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(OpsPath, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	h.log.Info("mirror listening", zap.Stringer("addr", ln.Addr()), zap.String("path", OpsPath))
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mirror: %w", err)
	}
	return nil
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("mirror upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	p, replay := h.add(conn)
	defer h.remove(conn)
	go h.writer(p, replay)

	// Viewers are read-only; reading only detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debug("viewer disconnected", zap.String("remote", conn.RemoteAddr().String()), zap.Error(err))
			return
		}
	}
}

// Peers returns the number of connected viewers.
func (h *Hub) Peers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// add registers conn and returns the frames it must be sent before anything
// queued on its send channel. Both are taken under one lock, so the viewer
// sees every frame exactly once and in order.
func (h *Hub) add(conn *websocket.Conn) (*peer, [][]byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := &peer{conn: conn, send: make(chan []byte, queueSize)}
	h.peers[conn] = p
	replay := append([][]byte(nil), h.backlog...)
	h.log.Info("viewer connected",
		zap.String("remote", conn.RemoteAddr().String()),
		zap.Int("replay", len(replay)),
	)
	return p, replay
}

func (h *Hub) writer(p *peer, replay [][]byte) {
	for _, data := range replay {
		if err := h.write(p.conn, data); err != nil {
			h.log.Warn("replay to viewer failed", zap.String("remote", p.conn.RemoteAddr().String()), zap.Error(err))
			h.remove(p.conn)
			return
		}
	}
	for data := range p.send {
		if err := h.write(p.conn, data); err != nil {
			h.log.Warn("write to viewer failed", zap.String("remote", p.conn.RemoteAddr().String()), zap.Error(err))
			h.remove(p.conn)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(conn)
}

// drop must be called with h.mu held.
func (h *Hub) drop(conn *websocket.Conn) {
	p, ok := h.peers[conn]
	if !ok {
		return
	}
	delete(h.peers, conn)
	close(p.send)
	conn.Close()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.peers {
		h.drop(conn)
	}
}

func (h *Hub) broadcast(f frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f.clear {
		h.backlog = nil
	}
	if len(h.backlog) >= maxBacklog {
		h.backlog = h.backlog[1:]
	}
	h.backlog = append(h.backlog, f.data)

	for conn, p := range h.peers {
		select {
		case p.send <- f.data:
		default:
			h.log.Warn("dropping slow viewer", zap.String("remote", conn.RemoteAddr().String()))
			h.drop(conn)
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, data []byte) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) publish(op render.Op) {
	data, err := json.Marshal(op)
	if err != nil {
		h.log.Error("encode op", zap.String("op", string(op.Kind)), zap.Error(err))
		return
	}
	f := frame{data: data, clear: op.Kind == render.OpClear}
	if f.clear {
		h.enqueueClear(f)
		return
	}
	select {
	case h.out <- f:
	default:
		h.log.Warn("mirror queue full, dropping op", zap.String("op", string(op.Kind)))
	}
}

// enqueueClear always queues f. Frames still waiting ahead of a clear are
// wiped by it anyway, so they are discarded to make room.
func (h *Hub) enqueueClear(f frame) {
	for {
		select {
		case h.out <- f:
			return
		default:
		}
		select {
		case <-h.out:
			h.log.Debug("discarding op superseded by clear")
		default:
		}
	}
}

func (h *Hub) Clear() { h.publish(render.NewOp(render.OpClear, nil)) }

func (h *Hub) FillPolygon(p state.Path, c color.Color) {
	h.publish(render.PathOp(render.OpFillPolygon, p, c))
}

func (h *Hub) StrokePolygon(p state.Path, c color.Color) {
	h.publish(render.PathOp(render.OpStrokePolygon, p, c))
}

func (h *Hub) FillRect(r state.Rect, c color.Color) {
	h.publish(render.RectOp(render.OpFillRect, r, c))
}

func (h *Hub) StrokeRect(r state.Rect, c color.Color) {
	h.publish(render.RectOp(render.OpStrokeRect, r, c))
}
