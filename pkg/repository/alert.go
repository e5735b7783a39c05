package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/politrend/pkg/domain"
)

// AlertRepository handles the append-only alert log
type AlertRepository struct {
	db *sqlx.DB
}

// alertSQL represents an alert record for SQL operations
type alertSQL struct {
	ID         int64     `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	EntityID   string    `db:"entity_id"`
	Topic      string    `db:"topic"`
	Category   string    `db:"category"`
	Rank       int       `db:"trend_rank"`
	Status     string    `db:"status"`
	DeliveryID string    `db:"delivery_id"`
	Error      string    `db:"error"`
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// AppendAlert inserts a new alert record and sets its id
func (r *AlertRepository) AppendAlert(ctx context.Context, rec *domain.AlertRecord) error {
	row := &alertSQL{
		CreatedAt:  rec.Timestamp.UTC(),
		EntityID:   rec.EntityID,
		Topic:      rec.Topic,
		Category:   string(rec.Category),
		Rank:       rec.Rank,
		Status:     string(rec.Status),
		DeliveryID: rec.DeliveryID,
		Error:      rec.Error,
	}
	query := `
		INSERT INTO alerts (created_at, entity_id, topic, category, trend_rank, status, delivery_id, error)
		VALUES (:created_at, :entity_id, :topic, :category, :trend_rank, :status, :delivery_id, :error)
	`

	return withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("append alert: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		rec.ID = id
		return nil
	})
}

// GetAlerts returns the alert log, newest first. Zero limit returns all records.
func (r *AlertRepository) GetAlerts(ctx context.Context, limit int) ([]domain.AlertRecord, error) {
	query := `SELECT id, created_at, entity_id, topic, category, trend_rank, status, delivery_id, error
		FROM alerts ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []alertSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get alerts: %w", err)
	}

	res := make([]domain.AlertRecord, len(rows))
	for i, row := range rows {
		res[i] = domain.AlertRecord{
			ID:         row.ID,
			Timestamp:  row.CreatedAt.UTC(),
			EntityID:   row.EntityID,
			Topic:      row.Topic,
			Category:   domain.Category(row.Category),
			Rank:       row.Rank,
			Status:     domain.AlertStatus(row.Status),
			DeliveryID: row.DeliveryID,
			Error:      row.Error,
		}
	}
	return res, nil
}
