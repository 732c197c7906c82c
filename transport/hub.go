package transport

import (
	"encoding/json"
	"log/slog"
	"sync"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"

	"github.com/samber/lo"
)

var _ contract.Emitter = (*Hub)(nil)

// Peer is the sending side of a live connection.
type Peer interface {
	Handle() domain.ConnectionHandle
	UserID() string
	Send(message []byte) bool
	Close(err error)
}

// Hub indexes live peers by handle and by identity, and fans outbound events out to them.
// A user's private channel is the set of all its connections.
type Hub struct {
	mu     sync.RWMutex
	log    *slog.Logger
	peers  map[domain.ConnectionHandle]Peer
	byUser map[string]map[domain.ConnectionHandle]struct{}
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:    log.With("component", "hub"),
		peers:  make(map[domain.ConnectionHandle]Peer),
		byUser: make(map[string]map[domain.ConnectionHandle]struct{}),
	}
}

func (h *Hub) Add(peer Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.peers[peer.Handle()] = peer
	handles, ok := h.byUser[peer.UserID()]
	if !ok {
		handles = make(map[domain.ConnectionHandle]struct{})
		h.byUser[peer.UserID()] = handles
	}
	handles[peer.Handle()] = struct{}{}
}

// Remove forgets the peer, unknown handles are ignored.
func (h *Hub) Remove(handle domain.ConnectionHandle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	peer, ok := h.peers[handle]
	if !ok {
		return
	}
	delete(h.peers, handle)
	handles := h.byUser[peer.UserID()]
	delete(handles, handle)
	if len(handles) == 0 {
		delete(h.byUser, peer.UserID())
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

func (h *Hub) Broadcast(e event.Outbound) {
	message, ok := h.encode(e)
	if !ok {
		return
	}
	for _, peer := range h.snapshot(allPeers) {
		peer.Send(message)
	}
}

func (h *Hub) ToUser(userID string, e event.Outbound) {
	peers := h.snapshot(func(all map[domain.ConnectionHandle]Peer) []Peer {
		return lo.Map(lo.Keys(h.byUser[userID]), func(handle domain.ConnectionHandle, _ int) Peer {
			return all[handle]
		})
	})
	if len(peers) == 0 {
		h.log.Debug("No live connection for user, dropping event", "userID", userID, "event", e.Name)
		return
	}
	message, ok := h.encode(e)
	if !ok {
		return
	}
	for _, peer := range peers {
		peer.Send(message)
	}
}

func (h *Hub) ToConnection(handle domain.ConnectionHandle, e event.Outbound) {
	h.mu.RLock()
	peer, ok := h.peers[handle]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if message, ok := h.encode(e); ok {
		peer.Send(message)
	}
}

// CloseAll terminates every live connection, used on shutdown.
func (h *Hub) CloseAll(reason error) {
	for _, peer := range h.snapshot(allPeers) {
		peer.Close(reason)
	}
}

// snapshot copies peers under the read lock so sends never hold it.
func (h *Hub) snapshot(pick func(all map[domain.ConnectionHandle]Peer) []Peer) []Peer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return pick(h.peers)
}

func allPeers(all map[domain.ConnectionHandle]Peer) []Peer {
	return lo.Values(all)
}

func (h *Hub) encode(e event.Outbound) ([]byte, bool) {
	message, err := json.Marshal(e)
	if err != nil {
		h.log.Error("Error encoding outbound event", "event", e.Name, "error", err)
		return nil, false
	}
	return message, true
}
