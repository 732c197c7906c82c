package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"
	"traffic-lab/mocks"
	"traffic-lab/runtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_ReupSettings(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	env.seedUser(t, domain.User{ID: "u"})
	service := NewSettingsService(env.log, env.users, env.settings, mocks.NewMockIDistributor(env.ctrl),
		runtime.NewRegistry(env.log, func() int { return 3 }), env.emitter)

	defaults, err := service.GetReupSettings(context.Background(), "u")
	req.NoError(err)
	req.Equal(domain.ReupSettings{Mode: domain.ReupModeNormal, SpecificPostIDs: []string{}}, defaults)

	_, err = service.PutReupSettings(context.Background(), "u", domain.ReupSettings{Mode: "loud"})
	req.ErrorIs(err, errors.ErrInvalidReupMode)

	_, err = service.PutReupSettings(context.Background(), "u", domain.ReupSettings{Mode: domain.ReupModeSpecific})
	req.ErrorIs(err, errors.ErrEmptySpecificSet)

	// Ids are dropped outside specific mode
	saved, err := service.PutReupSettings(context.Background(), "u", domain.ReupSettings{
		Mode:            domain.ReupModeOneUser,
		SpecificPostIDs: []string{"p1"},
	})
	req.NoError(err)
	req.Equal(domain.ReupSettings{Mode: domain.ReupModeOneUser, SpecificPostIDs: []string{}}, saved)

	got, err := service.GetReupSettings(context.Background(), "u")
	req.NoError(err)
	req.Equal(saved, got)
}

func TestSettingsService_PutSetting_Reloads_Distribution(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	registry := runtime.NewRegistry(env.log, func() int { return 3 })
	distributor := runtime.NewDistributor(env.log, registry, runtime.NewConfigProvider(env.log, env.settings),
		runtime.NewTimerScheduler())
	service := NewSettingsService(env.log, env.users, env.settings, distributor, registry, env.emitter)
	_, err := distributor.ReloadConfig()
	req.NoError(err)
	req.Equal(domain.DefaultDistributionConfig(), distributor.Config())

	// When
	_, err = service.PutSetting(context.Background(), PutSettingRequest{
		Key:   domain.DistributionSettingKey,
		Value: json.RawMessage(`{"enabled":true,"waveCount":5,"waveDelayMs":500}`),
	})

	// Then the live config follows without a restart
	req.NoError(err)
	req.Equal(domain.DistributionConfig{Enabled: true, WaveCount: 5, WaveDelay: 500 * time.Millisecond}, distributor.Config())

	overview := service.Distribution(context.Background())
	req.Equal(5, overview.WaveCount)
	req.Equal(int64(500), overview.WaveDelayMs)

	all, err := service.GetAllSettings(context.Background())
	req.NoError(err)
	req.JSONEq(`{"enabled":true,"waveCount":5,"waveDelayMs":500}`, string(all[domain.DistributionSettingKey]))
}

func TestSettingsService_PutSetting_Rejects(t *testing.T) {
	env := newTestEnv(t)
	service := NewSettingsService(env.log, env.users, env.settings, mocks.NewMockIDistributor(env.ctrl),
		runtime.NewRegistry(env.log, func() int { return 3 }), env.emitter)

	tests := []struct {
		name    string
		request PutSettingRequest
	}{
		{name: "missing key", request: PutSettingRequest{Value: json.RawMessage(`1`)}},
		{name: "invalid json", request: PutSettingRequest{Key: "k", Value: json.RawMessage(`{`)}},
		{
			name:    "wrong distribution shape",
			request: PutSettingRequest{Key: domain.DistributionSettingKey, Value: json.RawMessage(`{"waveCount":"many"}`)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.PutSetting(context.Background(), tt.request)
			require.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Distribution_Stats(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	registry := runtime.NewRegistry(env.log, func() int { return 2 })
	registry.Register("a", uuid.New())
	registry.Register("b", uuid.New())
	registry.Register("c", uuid.New())
	distributor := mocks.NewMockIDistributor(env.ctrl)
	distributor.EXPECT().Config().Return(domain.DistributionConfig{Enabled: true, WaveCount: 2, WaveDelay: time.Second})
	service := NewSettingsService(env.log, env.users, env.settings, distributor, registry, env.emitter)

	overview := service.Distribution(context.Background())

	req.Equal(3, overview.TotalOnlineUsers)
	req.Equal(map[int]int{1: 2, 2: 1}, overview.WaveDistribution)
	req.Equal(int64(1000), overview.WaveDelayMs)
}

func TestSettingsService_AnnounceRelease(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	service := NewSettingsService(env.log, env.users, env.settings, mocks.NewMockIDistributor(env.ctrl),
		runtime.NewRegistry(env.log, func() int { return 3 }), env.emitter)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	_, err := service.LatestRelease(context.Background())
	req.ErrorIs(err, errors.ErrReleaseNotFound)

	env.emitter.EXPECT().Broadcast(event.NewExtensionUpdate(domain.ExtensionRelease{
		Version:     "1.2.0",
		Description: "faster",
		UploadedAt:  now,
	})).Times(1)

	// When
	release, err := service.AnnounceRelease(context.Background(), ReleaseRequest{
		Version: "1.2.0", Description: "faster", UploadedBy: "admin",
	})

	// Then
	req.NoError(err)
	req.Equal("admin", release.UploadedBy)
	latest, err := service.LatestRelease(context.Background())
	req.NoError(err)
	req.Equal("1.2.0", latest.Version)

	// And the same version cannot be announced twice
	_, err = service.AnnounceRelease(context.Background(), ReleaseRequest{Version: "1.2.0"})
	req.ErrorIs(err, errors.ErrVersionExists)
	_, err = service.AnnounceRelease(context.Background(), ReleaseRequest{})
	req.ErrorIs(err, errors.ErrInvalidInput)
}

func TestSettingsService_Unknown_User(t *testing.T) {
	env := newTestEnv(t)
	service := NewSettingsService(env.log, env.users, env.settings, mocks.NewMockIDistributor(env.ctrl),
		runtime.NewRegistry(env.log, func() int { return 3 }), env.emitter)
	env.emitter.EXPECT().Broadcast(gomock.Any()).Times(0)

	_, err := service.GetReupSettings(context.Background(), "ghost")
	require.ErrorIs(t, err, errors.ErrUserNotFound)
}
