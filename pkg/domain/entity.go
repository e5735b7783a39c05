package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a tracked entity doesn't exist
var ErrNotFound = errors.New("not found")

// Category is a political topic category
type Category string

// categories in classification priority order, CategoryGeneral is the fallback
const (
	CategoryElections     Category = "Elections"
	CategoryCongress      Category = "Congress"
	CategoryWhiteHouse    Category = "White House"
	CategoryJudicial      Category = "Judicial"
	CategoryStateLocal    Category = "State & Local"
	CategoryForeignPolicy Category = "Foreign Policy"
	CategoryEconomy       Category = "Economy"
	CategoryGeneral       Category = "General Politics"
)

// AllCategories returns every known category, fallback last
func AllCategories() []Category {
	return []Category{
		CategoryElections, CategoryCongress, CategoryWhiteHouse, CategoryJudicial,
		CategoryStateLocal, CategoryForeignPolicy, CategoryEconomy, CategoryGeneral,
	}
}

// Valid checks if category is one of the known values
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// SentimentLabel is a categorical sentiment derived from the score
type SentimentLabel string

// sentiment labels
const (
	SentimentPositive         SentimentLabel = "Positive"
	SentimentSlightlyPositive SentimentLabel = "Slightly Positive"
	SentimentNeutral          SentimentLabel = "Neutral"
	SentimentSlightlyNegative SentimentLabel = "Slightly Negative"
	SentimentNegative         SentimentLabel = "Negative"
)

// Sentiment is a keyword-based sentiment estimate
type Sentiment struct {
	Score float64        `json:"score"`
	Label SentimentLabel `json:"label"`
}

// RankedTopic is a single entry of a scraped trend list
type RankedTopic struct {
	Rank   int    `json:"rank"`
	Topic  string `json:"topic"`
	Source string `json:"source,omitempty"`
}

// TrackedEntity is the timeline of a single trending topic.
// Identity is the normalized topic key, Topic keeps the casing of the first sighting.
type TrackedEntity struct {
	ID              string         `json:"id"`
	Key             string         `json:"-"`
	Topic           string         `json:"topic"`
	Category        Category       `json:"category"`
	FirstSeen       time.Time      `json:"first_seen"`
	LastSeen        time.Time      `json:"last_seen"`
	DurationMinutes int            `json:"duration_minutes"`
	CheckCount      int            `json:"check_count"`
	CurrentRank     int            `json:"current_rank"`
	LowestRank      int            `json:"lowest_rank"`
	HighestRank     int            `json:"highest_rank"`
	SentimentScore  float64        `json:"sentiment_score"`
	SentimentLabel  SentimentLabel `json:"sentiment_label"`
	IsActive        bool           `json:"is_active"`
	Source          string         `json:"source"`
}

// Clone returns a copy of the entity
func (e *TrackedEntity) Clone() *TrackedEntity {
	c := *e
	return &c
}

// TopicKey normalizes a topic string into the identity key
func TopicKey(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
