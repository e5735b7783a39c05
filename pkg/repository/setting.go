package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/politrend/pkg/domain"
)

// alertSettingsKey is the settings row holding the JSON encoded domain.Settings
const alertSettingsKey = "alert_settings"

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	return withLockRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("set setting: %w", err)
		}
		return nil
	})
}

// LoadSettings returns stored alert settings, ok is false if nothing was stored yet
func (r *SettingRepository) LoadSettings(ctx context.Context) (settings domain.Settings, ok bool, err error) {
	value, err := r.GetSetting(ctx, alertSettingsKey)
	if err != nil {
		return domain.Settings{}, false, err
	}
	if value == "" {
		return domain.Settings{}, false, nil
	}
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return domain.Settings{}, false, fmt.Errorf("decode settings: %w", err)
	}
	return settings, true, nil
}

// SaveSettings stores alert settings
func (r *SettingRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.SetSetting(ctx, alertSettingsKey, string(data))
}
