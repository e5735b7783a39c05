package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/politrend/pkg/domain"
)

// EntityRepository handles tracked entity database operations
type EntityRepository struct {
	db *sqlx.DB
}

// entitySQL represents a tracked entity for SQL operations
type entitySQL struct {
	ID              string    `db:"id"`
	TopicKey        string    `db:"topic_key"`
	Topic           string    `db:"topic"`
	Category        string    `db:"category"`
	FirstSeen       time.Time `db:"first_seen"`
	LastSeen        time.Time `db:"last_seen"`
	DurationMinutes int       `db:"duration_minutes"`
	CheckCount      int       `db:"check_count"`
	CurrentRank     int       `db:"current_rank"`
	LowestRank      int       `db:"lowest_rank"`
	HighestRank     int       `db:"highest_rank"`
	SentimentScore  float64   `db:"sentiment_score"`
	SentimentLabel  string    `db:"sentiment_label"`
	IsActive        bool      `db:"is_active"`
	Source          string    `db:"source"`
}

const entityColumns = `id, topic_key, topic, category, first_seen, last_seen, duration_minutes, check_count,
	current_rank, lowest_rank, highest_rank, sentiment_score, sentiment_label, is_active, source`

// NewEntityRepository creates a new entity repository
func NewEntityRepository(db *sqlx.DB) *EntityRepository {
	return &EntityRepository{db: db}
}

// LoadEntities returns all tracked entities keyed by normalized topic
func (r *EntityRepository) LoadEntities(ctx context.Context) (map[string]*domain.TrackedEntity, error) {
	var rows []entitySQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+entityColumns+" FROM entities"); err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}

	res := make(map[string]*domain.TrackedEntity, len(rows))
	for i := range rows {
		e := toDomainEntity(&rows[i])
		res[e.Key] = e
	}
	return res, nil
}

// SaveEntities upserts all entities in a single transaction.
// Immutable fields (id, first_seen, category, display topic, sentiment) are written on insert only.
func (r *EntityRepository) SaveEntities(ctx context.Context, entities map[string]*domain.TrackedEntity) error {
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES (:id, :topic_key, :topic, :category, :first_seen, :last_seen, :duration_minutes, :check_count,
			:current_rank, :lowest_rank, :highest_rank, :sentiment_score, :sentiment_label, :is_active, :source)
		ON CONFLICT(topic_key) DO UPDATE SET
			last_seen = excluded.last_seen,
			duration_minutes = excluded.duration_minutes,
			check_count = excluded.check_count,
			current_rank = excluded.current_rank,
			lowest_rank = excluded.lowest_rank,
			highest_rank = excluded.highest_rank,
			is_active = excluded.is_active,
			updated_at = CURRENT_TIMESTAMP
	`

	return withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for key, e := range entities {
			row := fromDomainEntity(e)
			row.TopicKey = key
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("upsert entity %q: %w", e.Topic, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// GetEntity retrieves an entity by id, domain.ErrNotFound if missing
func (r *EntityRepository) GetEntity(ctx context.Context, id string) (*domain.TrackedEntity, error) {
	var row entitySQL
	err := r.db.GetContext(ctx, &row, "SELECT "+entityColumns+" FROM entities WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return toDomainEntity(&row), nil
}

// ListEntities returns entities matching the filter, sorted by filter.Sort
func (r *EntityRepository) ListEntities(ctx context.Context, filter domain.EntityFilter) ([]*domain.TrackedEntity, error) {
	qb := sq.Select(entityColumns).From("entities")
	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.ActiveOnly {
		qb = qb.Where(sq.Eq{"is_active": true})
	}

	switch filter.Sort {
	case domain.SortDuration:
		qb = qb.OrderBy("duration_minutes DESC", "first_seen DESC")
	case domain.SortRank:
		qb = qb.OrderBy("current_rank ASC", "first_seen DESC")
	default:
		qb = qb.OrderBy("first_seen DESC")
	}
	qb = qb.OrderBy("topic_key")

	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entities query: %w", err)
	}

	var rows []entitySQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	res := make([]*domain.TrackedEntity, len(rows))
	for i := range rows {
		res[i] = toDomainEntity(&rows[i])
	}
	return res, nil
}

// toDomainEntity converts entitySQL to domain.TrackedEntity
func toDomainEntity(row *entitySQL) *domain.TrackedEntity {
	return &domain.TrackedEntity{
		ID:              row.ID,
		Key:             row.TopicKey,
		Topic:           row.Topic,
		Category:        domain.Category(row.Category),
		FirstSeen:       row.FirstSeen.UTC(),
		LastSeen:        row.LastSeen.UTC(),
		DurationMinutes: row.DurationMinutes,
		CheckCount:      row.CheckCount,
		CurrentRank:     row.CurrentRank,
		LowestRank:      row.LowestRank,
		HighestRank:     row.HighestRank,
		SentimentScore:  row.SentimentScore,
		SentimentLabel:  domain.SentimentLabel(row.SentimentLabel),
		IsActive:        row.IsActive,
		Source:          row.Source,
	}
}

// fromDomainEntity converts domain.TrackedEntity to entitySQL
func fromDomainEntity(e *domain.TrackedEntity) *entitySQL {
	return &entitySQL{
		ID:              e.ID,
		TopicKey:        e.Key,
		Topic:           e.Topic,
		Category:        string(e.Category),
		FirstSeen:       e.FirstSeen.UTC(),
		LastSeen:        e.LastSeen.UTC(),
		DurationMinutes: e.DurationMinutes,
		CheckCount:      e.CheckCount,
		CurrentRank:     e.CurrentRank,
		LowestRank:      e.LowestRank,
		HighestRank:     e.HighestRank,
		SentimentScore:  e.SentimentScore,
		SentimentLabel:  string(e.SentimentLabel),
		IsActive:        e.IsActive,
		Source:          e.Source,
	}
}
