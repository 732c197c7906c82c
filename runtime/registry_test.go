package runtime

import (
	"log/slog"
	"testing"

	"traffic-lab/domain"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func fixedWaveCount(n int) func() int {
	return func() int { return n }
}

func TestRegistry_Register_Round_Robin(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(3))

	// Given no connection is registered
	req.Empty(registry.AllConnected())

	// When 7 connections register in a row
	var waves []int
	for i := 0; i < 7; i++ {
		waves = append(waves, registry.Register(uuid.NewString(), uuid.New()))
	}

	// Then waves are assigned in a cycle starting at 1
	req.Equal([]int{1, 2, 3, 1, 2, 3, 1}, waves)
	req.Len(registry.AllConnected(), 7)
}

func TestRegistry_Register_Ignores_Identity_History(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(3))
	userID := uuid.NewString()

	// Given the same user reconnects three times
	first := registry.Register(userID, uuid.New())
	second := registry.Register(userID, uuid.New())
	third := registry.Register(userID, uuid.New())

	// Then each connection lands in the next wave
	req.Equal(1, first)
	req.Equal(2, second)
	req.Equal(3, third)
}

func TestRegistry_Register_Follows_Wave_Count_Changes(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	count := 2
	registry := NewRegistry(log, func() int { return count })

	// Given two connections with a wave count of 2
	req.Equal(1, registry.Register(uuid.NewString(), uuid.New()))
	req.Equal(2, registry.Register(uuid.NewString(), uuid.New()))

	// When the wave count becomes 5
	count = 5

	// Then the counter keeps going over the new count
	req.Equal(3, registry.Register(uuid.NewString(), uuid.New()))
	req.Equal(4, registry.Register(uuid.NewString(), uuid.New()))
}

func TestRegistry_Register_Clamps_Invalid_Wave_Count(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(0))

	req.Equal(1, registry.Register(uuid.NewString(), uuid.New()))
	req.Equal(1, registry.Register(uuid.NewString(), uuid.New()))
}

func TestRegistry_Unregister_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(3))
	handle := uuid.New()

	// Given a registered connection
	registry.Register(uuid.NewString(), handle)

	// When it is unregistered twice
	registry.Unregister(handle)
	registry.Unregister(handle)

	// Then nothing is left and no panic happened
	req.Empty(registry.AllConnected())

	// And an unknown handle is ignored
	registry.Unregister(uuid.New())
	req.Empty(registry.AllConnected())
}

func TestRegistry_MembersOfWave_One_Entry_Per_Connection(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(1))
	alice := uuid.NewString()
	bob := uuid.NewString()

	// Given alice holds two connections and bob one, all in the single wave
	registry.Register(alice, uuid.New())
	registry.Register(alice, uuid.New())
	registry.Register(bob, uuid.New())

	// Then alice appears twice
	members := registry.MembersOfWave(1)
	req.Len(members, 3)
	req.ElementsMatch([]string{alice, alice, bob}, members)

	// And an unknown wave is empty
	req.Empty(registry.MembersOfWave(2))
}

func TestRegistry_Stats(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(3))

	handles := make([]domain.ConnectionHandle, 0, 4)
	for i := 0; i < 4; i++ {
		handle := uuid.New()
		handles = append(handles, handle)
		registry.Register(uuid.NewString(), handle)
	}

	// When the wave 2 connection leaves
	registry.Unregister(handles[1])

	// Then
	stats := registry.Stats()
	req.Equal(3, stats.TotalOnline)
	req.Equal(map[int]int{1: 2, 3: 1}, stats.WaveDistribution)
	req.Len(registry.AllConnected(), 3)
}

func TestRegistry_WaveOf(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log, fixedWaveCount(3))
	userID := uuid.NewString()

	_, ok := registry.WaveOf(userID)
	req.False(ok)

	registry.Register(uuid.NewString(), uuid.New())
	registry.Register(userID, uuid.New())

	wave, ok := registry.WaveOf(userID)
	req.True(ok)
	req.Equal(2, wave)
}
