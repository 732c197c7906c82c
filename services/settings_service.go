package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"

	"github.com/go-playground/validator/v10"
)

type PutSettingRequest struct {
	Key   string          `json:"key" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type ReleaseRequest struct {
	Version     string `json:"version" validate:"required,max=32"`
	Description string `json:"description" validate:"max=2000"`
	UploadedBy  string `json:"-"`
}

// DistributionOverview is what admins see of the live coordinator.
type DistributionOverview struct {
	Enabled          bool        `json:"enabled"`
	WaveCount        int         `json:"waveCount"`
	WaveDelayMs      int64       `json:"waveDelayMs"`
	TotalOnlineUsers int         `json:"totalOnlineUsers"`
	WaveDistribution map[int]int `json:"waveDistribution"`
}

type ISettingsService interface {
	GetReupSettings(ctx context.Context, userID string) (domain.ReupSettings, error)
	PutReupSettings(ctx context.Context, userID string, settings domain.ReupSettings) (domain.ReupSettings, error)
	GetAllSettings(ctx context.Context) (map[string]json.RawMessage, error)
	PutSetting(ctx context.Context, request PutSettingRequest) (domain.SystemSetting, error)
	Distribution(ctx context.Context) DistributionOverview
	AnnounceRelease(ctx context.Context, request ReleaseRequest) (domain.ExtensionRelease, error)
	LatestRelease(ctx context.Context) (domain.ExtensionRelease, error)
}

type SettingsService struct {
	log         *slog.Logger
	users       contract.IUserRepository
	settings    contract.ISettingRepository
	distributor contract.IDistributor
	registry    contract.IRegistry
	emitter     contract.Emitter
	validate    *validator.Validate
	now         func() time.Time
}

func NewSettingsService(log *slog.Logger, users contract.IUserRepository, settings contract.ISettingRepository,
	distributor contract.IDistributor, registry contract.IRegistry, emitter contract.Emitter) *SettingsService {
	return &SettingsService{
		log:         log.With("component", "settings"),
		users:       users,
		settings:    settings,
		distributor: distributor,
		registry:    registry,
		emitter:     emitter,
		validate:    validator.New(),
		now:         time.Now,
	}
}

func (s *SettingsService) GetReupSettings(ctx context.Context, userID string) (domain.ReupSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReupSettings{}, err
	}
	user, err := s.users.GetUser(userID)
	if err != nil {
		return domain.ReupSettings{}, err
	}
	return user.ReupSettings.Effective(), nil
}

// PutReupSettings validates the mode; the id set is kept only in specific mode.
func (s *SettingsService) PutReupSettings(ctx context.Context, userID string,
	settings domain.ReupSettings) (domain.ReupSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReupSettings{}, err
	}
	if !settings.Mode.Valid() {
		return domain.ReupSettings{}, errors.ErrInvalidReupMode
	}
	if settings.Mode == domain.ReupModeSpecific {
		if len(settings.SpecificPostIDs) == 0 {
			return domain.ReupSettings{}, errors.ErrEmptySpecificSet
		}
	} else {
		settings.SpecificPostIDs = []string{}
	}

	user, err := s.users.UpdateUser(userID, func(user *domain.User) error {
		user.ReupSettings = settings
		return nil
	})
	if err != nil {
		return domain.ReupSettings{}, err
	}
	return user.ReupSettings, nil
}

func (s *SettingsService) GetAllSettings(ctx context.Context) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings, err := s.settings.ListSettings()
	if err != nil {
		return nil, err
	}
	all := make(map[string]json.RawMessage, len(settings))
	for _, setting := range settings {
		all[setting.Key] = setting.Value
	}
	return all, nil
}

// PutSetting upserts a setting, writing postDistribution reloads the live config.
func (s *SettingsService) PutSetting(ctx context.Context, request PutSettingRequest) (domain.SystemSetting, error) {
	if err := ctx.Err(); err != nil {
		return domain.SystemSetting{}, err
	}
	if err := s.validate.Struct(request); err != nil {
		return domain.SystemSetting{}, fmt.Errorf("%w: key and value are required", errors.ErrInvalidInput)
	}
	if !json.Valid(request.Value) {
		return domain.SystemSetting{}, fmt.Errorf("%w: value must be valid JSON", errors.ErrInvalidInput)
	}
	if request.Key == domain.DistributionSettingKey {
		var stored domain.DistributionSetting
		if err := json.Unmarshal(request.Value, &stored); err != nil {
			return domain.SystemSetting{}, fmt.Errorf("%w: %s must be {enabled, waveCount, waveDelayMs}",
				errors.ErrInvalidInput, domain.DistributionSettingKey)
		}
	}

	setting := domain.SystemSetting{Key: request.Key, Value: request.Value, UpdatedAt: s.now().UTC()}
	if err := s.settings.PutSetting(setting); err != nil {
		return domain.SystemSetting{}, err
	}
	if request.Key == domain.DistributionSettingKey {
		if _, err := s.distributor.ReloadConfig(); err != nil {
			return domain.SystemSetting{}, err
		}
	}
	s.log.Info("Setting updated", "key", request.Key)
	return setting, nil
}

func (s *SettingsService) Distribution(_ context.Context) DistributionOverview {
	cfg := s.distributor.Config()
	stats := s.registry.Stats()
	return DistributionOverview{
		Enabled:          cfg.Enabled,
		WaveCount:        cfg.WaveCount,
		WaveDelayMs:      cfg.WaveDelay.Milliseconds(),
		TotalOnlineUsers: stats.TotalOnline,
		WaveDistribution: stats.WaveDistribution,
	}
}

// AnnounceRelease records a new extension version and tells every connected client.
func (s *SettingsService) AnnounceRelease(ctx context.Context, request ReleaseRequest) (domain.ExtensionRelease, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExtensionRelease{}, err
	}
	if err := s.validate.Struct(request); err != nil {
		return domain.ExtensionRelease{}, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	release := domain.ExtensionRelease{
		Version:     request.Version,
		Description: request.Description,
		UploadedBy:  request.UploadedBy,
		UploadedAt:  s.now().UTC(),
	}
	if err := s.settings.SaveRelease(release); err != nil {
		return domain.ExtensionRelease{}, err
	}
	s.emitter.Broadcast(event.NewExtensionUpdate(release))
	s.log.Info("Extension release announced", "version", release.Version)
	return release, nil
}

func (s *SettingsService) LatestRelease(ctx context.Context) (domain.ExtensionRelease, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExtensionRelease{}, err
	}
	return s.settings.LatestRelease()
}
