package transport

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"traffic-lab/domain"
	"traffic-lab/domain/event"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fakePeer struct {
	mu     sync.Mutex
	handle domain.ConnectionHandle
	userID string
	frames [][]byte
	closed error
}

func newFakePeer(userID string) *fakePeer {
	return &fakePeer{handle: uuid.New(), userID: userID}
}

func (p *fakePeer) Handle() domain.ConnectionHandle { return p.handle }
func (p *fakePeer) UserID() string                  { return p.userID }

func (p *fakePeer) Send(message []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, message)
	return true
}

func (p *fakePeer) Close(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = err
}

func (p *fakePeer) events(t *testing.T) []string {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.frames))
	for _, frame := range p.frames {
		var decoded event.Frame
		require.NoError(t, json.Unmarshal(frame, &decoded))
		names = append(names, decoded.Event)
	}
	return names
}

func TestHub_Routes_Events(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	aliceTab1 := newFakePeer("alice")
	aliceTab2 := newFakePeer("alice")
	bob := newFakePeer("bob")
	hub.Add(aliceTab1)
	hub.Add(aliceTab2)
	hub.Add(bob)

	// When
	hub.Broadcast(event.NewPostViewUpdate("p1", event.ViewIncrement))
	hub.ToUser("alice", event.NewWaveAssignment(2))
	hub.ToConnection(bob.Handle(), event.NewViewStarted("v1"))
	hub.ToUser("nobody", event.NewWaveAssignment(1))

	// Then
	req.Equal([]string{"post_view_update", "wave_assignment"}, aliceTab1.events(t))
	req.Equal([]string{"post_view_update", "wave_assignment"}, aliceTab2.events(t))
	req.Equal([]string{"post_view_update", "view_started"}, bob.events(t))
}

func TestHub_Remove(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	first := newFakePeer("alice")
	second := newFakePeer("alice")
	hub.Add(first)
	hub.Add(second)

	hub.Remove(first.Handle())
	hub.Remove(first.Handle())
	hub.ToUser("alice", event.NewWaveAssignment(1))

	req.Equal(1, hub.Count())
	req.Empty(first.events(t))
	req.Equal([]string{"wave_assignment"}, second.events(t))

	hub.Remove(second.Handle())
	req.Zero(hub.Count())
	req.Empty(hub.byUser)
}

func TestHub_Frame_Shape(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	peer := newFakePeer("alice")
	hub.Add(peer)

	hub.ToConnection(peer.Handle(), event.NewViewStarted("v1"))

	req.Len(peer.frames, 1)
	req.JSONEq(`{"event":"view_started","payload":{"viewId":"v1"}}`, string(peer.frames[0]))
}

func TestHub_CloseAll(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	peers := []*fakePeer{newFakePeer("a"), newFakePeer("b")}
	for _, peer := range peers {
		hub.Add(peer)
	}

	hub.CloseAll(errShutdown)

	for _, peer := range peers {
		req.ErrorIs(peer.closed, errShutdown)
	}
}
