package domain

import "time"

// SortKey defines the ordering of entity queries
type SortKey string

// supported sort keys
const (
	SortFirstSeen SortKey = "first_seen" // newest first, default
	SortDuration  SortKey = "duration"   // longest first
	SortRank      SortKey = "rank"       // best (lowest number) first
)

// EntityFilter represents filtering criteria for entity queries
type EntityFilter struct {
	Category   Category
	ActiveOnly bool
	Sort       SortKey
	Limit      int
}

// UpdateSummary is the result of a single update cycle
type UpdateSummary struct {
	Total       int           `json:"total"`
	New         int           `json:"new"`
	Active      int           `json:"active"`
	Deactivated int           `json:"deactivated"`
	Alerts      int           `json:"alerts"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
}

// Stats are aggregate timeline statistics
type Stats struct {
	Total               int              `json:"total"`
	Active              int              `json:"active"`
	Inactive            int              `json:"inactive"`
	ByCategory          map[Category]int `json:"by_category"`
	AvgActiveDuration   float64          `json:"avg_active_duration_minutes"`
	LongestRunningTrend *TrackedEntity   `json:"longest_running,omitempty"`
}

// Snapshot is a full export of the tracker state
type Snapshot struct {
	ExportedAt time.Time        `json:"exported_at"`
	Source     string           `json:"source"`
	Settings   Settings         `json:"settings"`
	Entities   []*TrackedEntity `json:"entities"`
	Alerts     []AlertRecord    `json:"alerts"`
}
