package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSettings wraps all settings validation failures
var ErrInvalidSettings = errors.New("invalid settings")

// Frequency controls how qualifying alerts of one update cycle are delivered
type Frequency string

// notification frequency modes
const (
	FrequencyInstant Frequency = "instant" // one message per new trend
	FrequencyBatch   Frequency = "batch"   // one message per update cycle
)

// Settings holds the alerting preferences
type Settings struct {
	Recipient         string     `json:"recipient"`
	MinRank           int        `json:"min_rank"`
	EnabledCategories []Category `json:"enabled_categories"`
	Frequency         Frequency  `json:"frequency"`
}

// CategoryEnabled checks if alerts are enabled for the category
func (s Settings) CategoryEnabled(c Category) bool {
	for _, enabled := range s.EnabledCategories {
		if enabled == c {
			return true
		}
	}
	return false
}

// Validate checks settings for correctness
func (s Settings) Validate() error {
	if s.MinRank < 1 {
		return fmt.Errorf("%w: min_rank must be at least 1", ErrInvalidSettings)
	}
	for _, c := range s.EnabledCategories {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidSettings, c)
		}
	}
	switch s.Frequency {
	case FrequencyInstant, FrequencyBatch:
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidSettings, s.Frequency)
	}
	if s.Recipient != "" && !strings.Contains(s.Recipient, "@") && strings.TrimLeft(s.Recipient, "-0123456789") != "" {
		return fmt.Errorf("%w: recipient %q is neither an email nor a chat id", ErrInvalidSettings, s.Recipient)
	}
	return nil
}

// SettingsUpdate is a partial settings replacement, nil fields keep the current value
type SettingsUpdate struct {
	Recipient         *string     `json:"recipient,omitempty"`
	MinRank           *int        `json:"min_rank,omitempty"`
	EnabledCategories *[]Category `json:"enabled_categories,omitempty"`
	Frequency         *Frequency  `json:"frequency,omitempty"`
}

// Apply merges the update into a copy of settings
func (u SettingsUpdate) Apply(s Settings) Settings {
	res := s
	res.EnabledCategories = append([]Category(nil), s.EnabledCategories...)
	if u.Recipient != nil {
		res.Recipient = strings.TrimSpace(*u.Recipient)
	}
	if u.MinRank != nil {
		res.MinRank = *u.MinRank
	}
	if u.EnabledCategories != nil {
		res.EnabledCategories = append([]Category{}, (*u.EnabledCategories)...)
	}
	if u.Frequency != nil {
		res.Frequency = *u.Frequency
	}
	return res
}
