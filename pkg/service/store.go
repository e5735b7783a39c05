// Package service combines repositories into the store used by the tracker.
package service

import (
	"context"

	"github.com/umputun/politrend/pkg/domain"
	"github.com/umputun/politrend/pkg/repository"
)

// Store provides unified access to entity, alert and settings repositories
type Store struct {
	entityRepo  *repository.EntityRepository
	alertRepo   *repository.AlertRepository
	settingRepo *repository.SettingRepository
}

// NewStore creates a store over the given repositories
func NewStore(repos *repository.Repositories) *Store {
	return &Store{
		entityRepo:  repos.Entity,
		alertRepo:   repos.Alert,
		settingRepo: repos.Setting,
	}
}

// Entity methods

func (s *Store) LoadEntities(ctx context.Context) (map[string]*domain.TrackedEntity, error) {
	return s.entityRepo.LoadEntities(ctx)
}

func (s *Store) SaveEntities(ctx context.Context, entities map[string]*domain.TrackedEntity) error {
	return s.entityRepo.SaveEntities(ctx, entities)
}

func (s *Store) GetEntity(ctx context.Context, id string) (*domain.TrackedEntity, error) {
	return s.entityRepo.GetEntity(ctx, id)
}

func (s *Store) ListEntities(ctx context.Context, filter domain.EntityFilter) ([]*domain.TrackedEntity, error) {
	return s.entityRepo.ListEntities(ctx, filter)
}

// Alert methods

func (s *Store) AppendAlert(ctx context.Context, rec *domain.AlertRecord) error {
	return s.alertRepo.AppendAlert(ctx, rec)
}

func (s *Store) GetAlerts(ctx context.Context, limit int) ([]domain.AlertRecord, error) {
	return s.alertRepo.GetAlerts(ctx, limit)
}

// Settings methods

func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	return s.settingRepo.LoadSettings(ctx)
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.settingRepo.SaveSettings(ctx, settings)
}
