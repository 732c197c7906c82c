package runtime

import (
	"log/slog"
	"sync"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/observability"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry tracks live connections and the wave each one was assigned to.
// Entries are keyed by connection handle: one identity may hold several
// connections, each assigned independently.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	waveCount   func() int
	now         func() time.Time
	counter     uint64
	connections map[domain.ConnectionHandle]domain.Connection
}

func NewRegistry(log *slog.Logger, waveCount func() int) *Registry {
	return &Registry{
		log:         log.With("component", "connection_registry"),
		waveCount:   waveCount,
		now:         time.Now,
		connections: make(map[domain.ConnectionHandle]domain.Connection),
	}
}

// Register assigns the connection to the next wave in round-robin order.
// History of the identity is ignored, the global counter alone decides.
func (r *Registry) Register(userID string, handle domain.ConnectionHandle) int {
	count := r.waveCount()
	if count < 1 {
		count = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.connections[handle]; ok {
		observability.ConnectionsOnline.WithLabelValues(observability.WaveLabel(previous.Wave)).Dec()
	}
	wave := int(r.counter%uint64(count)) + 1
	r.counter++

	r.connections[handle] = domain.Connection{
		UserID:      userID,
		Handle:      handle,
		Wave:        wave,
		ConnectedAt: r.now(),
	}
	observability.ConnectionsOnline.WithLabelValues(observability.WaveLabel(wave)).Inc()
	r.log.Debug("Connection registered", "userID", userID, "connID", handle.String(), "wave", wave)
	return wave
}

// Unregister removes the connection, unknown handles are ignored.
func (r *Registry) Unregister(handle domain.ConnectionHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[handle]
	if !ok {
		return
	}
	delete(r.connections, handle)
	observability.ConnectionsOnline.WithLabelValues(observability.WaveLabel(conn.Wave)).Dec()
	r.log.Debug("Connection unregistered", "userID", conn.UserID, "wave", conn.Wave)
}

// MembersOfWave lists identities in a wave, with one entry per connection.
func (r *Registry) MembersOfWave(wave int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []string
	for _, conn := range r.connections {
		if conn.Wave == wave {
			members = append(members, conn.UserID)
		}
	}
	return members
}

func (r *Registry) AllConnected() []domain.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Connection, 0, len(r.connections))
	for _, conn := range r.connections {
		all = append(all, conn)
	}
	return all
}

// WaveOf returns the wave of the first connection found for the identity.
func (r *Registry) WaveOf(userID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conn := range r.connections {
		if conn.UserID == userID {
			return conn.Wave, true
		}
	}
	return 0, false
}

func (r *Registry) Stats() domain.WaveStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := domain.WaveStats{
		TotalOnline:      len(r.connections),
		WaveDistribution: make(map[int]int),
	}
	for _, conn := range r.connections {
		stats.WaveDistribution[conn.Wave]++
	}
	return stats
}
