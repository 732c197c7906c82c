package repositories

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

var (
	_ contract.ISettingRepository = (*SettingRepository)(nil)
	_ contract.ConfigSource       = (*SettingRepository)(nil)
)

// Keys:
//
//	setting:{key}                       -> SystemSetting
//	release:{uploadedPadded}:{version}  -> ExtensionRelease
//	release_version:{version}           -> empty, uniqueness index
type SettingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSettingRepository(db *badger.DB, log *slog.Logger) *SettingRepository {
	return &SettingRepository{db: db, log: log}
}

const (
	settingPrefix = "setting:"
	releasePrefix = "release:"
)

func settingKey(key string) []byte {
	return []byte(settingPrefix + key)
}

func releaseVersionKey(version string) []byte {
	return []byte("release_version:" + version)
}

func (s SettingRepository) GetSetting(key string) (domain.SystemSetting, error) {
	var setting domain.SystemSetting
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, settingKey(key), errors.ErrSettingNotFound, &setting)
	})
	return setting, err
}

func (s SettingRepository) PutSetting(setting domain.SystemSetting) error {
	if setting.UpdatedAt.IsZero() {
		setting.UpdatedAt = time.Now().UTC()
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, settingKey(setting.Key), setting)
	})
}

func (s SettingRepository) ListSettings() ([]domain.SystemSetting, error) {
	var settings []domain.SystemSetting
	err := s.db.View(func(txn *badger.Txn) error {
		for _, key := range collectKeys(txn, []byte(settingPrefix), false) {
			var setting domain.SystemSetting
			if err := getJSON(txn, settingKey(key), errors.ErrSettingNotFound, &setting); err != nil {
				return err
			}
			settings = append(settings, setting)
		}
		return nil
	})
	return settings, err
}

// LoadDistributionConfig reads the postDistribution setting.
// A missing setting yields the defaults, a stored one falls back field by field.
func (s SettingRepository) LoadDistributionConfig() (domain.DistributionConfig, error) {
	setting, err := s.GetSetting(domain.DistributionSettingKey)
	if stderrors.Is(err, errors.ErrSettingNotFound) {
		return domain.DefaultDistributionConfig(), nil
	}
	if err != nil {
		return domain.DistributionConfig{}, err
	}
	var stored domain.DistributionSetting
	if err = json.Unmarshal(setting.Value, &stored); err != nil {
		s.log.Warn("Malformed distribution setting, using defaults", "error", err)
		return domain.DefaultDistributionConfig(), nil
	}
	return stored.ToConfig(), nil
}

// SaveRelease stores a release, a version can only be announced once.
func (s SettingRepository) SaveRelease(release domain.ExtensionRelease) error {
	if release.UploadedAt.IsZero() {
		release.UploadedAt = time.Now().UTC()
	}
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(releaseVersionKey(release.Version))
		if err == nil {
			return errors.ErrVersionExists
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err = txn.Set(releaseVersionKey(release.Version), nil); err != nil {
			return err
		}
		key := releasePrefix + paddedTime(release.UploadedAt) + ":" + release.Version
		return setJSON(txn, []byte(key), release)
	})
}

func (s SettingRepository) LatestRelease() (domain.ExtensionRelease, error) {
	var release domain.ExtensionRelease
	err := s.db.View(func(txn *badger.Txn) error {
		suffixes := collectKeys(txn, []byte(releasePrefix), true)
		if len(suffixes) == 0 {
			return errors.ErrReleaseNotFound
		}
		return getJSON(txn, []byte(releasePrefix+suffixes[0]), errors.ErrReleaseNotFound, &release)
	})
	return release, err
}
