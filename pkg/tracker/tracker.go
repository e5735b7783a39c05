// Package tracker runs update cycles over the trend timeline and serves its queries.
// All update cycles and settings changes are serialized by a single mutex, so a manual
// trigger arriving during a scheduled cycle waits for it to finish.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/politrend/pkg/alert"
	"github.com/umputun/politrend/pkg/classifier"
	"github.com/umputun/politrend/pkg/domain"
	"github.com/umputun/politrend/pkg/notify"
	"github.com/umputun/politrend/pkg/timeline"
)

//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Scraper returns ranked topics, empty on any failure
type Scraper interface {
	Fetch(ctx context.Context) []domain.RankedTopic
}

// Store persists entities, alerts and settings
type Store interface {
	LoadEntities(ctx context.Context) (map[string]*domain.TrackedEntity, error)
	SaveEntities(ctx context.Context, entities map[string]*domain.TrackedEntity) error
	GetEntity(ctx context.Context, id string) (*domain.TrackedEntity, error)
	ListEntities(ctx context.Context, filter domain.EntityFilter) ([]*domain.TrackedEntity, error)
	AppendAlert(ctx context.Context, rec *domain.AlertRecord) error
	GetAlerts(ctx context.Context, limit int) ([]domain.AlertRecord, error)
	LoadSettings(ctx context.Context) (domain.Settings, bool, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// Notifier delivers alerts for one or more entities in a single message.
// It returns notify.ErrNotConfigured when the transport can't be used.
type Notifier interface {
	Deliver(ctx context.Context, entities []*domain.TrackedEntity, settings domain.Settings) (string, error)
}

// Params for New
type Params struct {
	Scraper  Scraper
	Store    Store
	Notifier Notifier        // optional, nil records alerts as would-send
	Settings domain.Settings // used when nothing is stored yet
	Source   string          // provenance tag for new entities and exports
}

// Tracker orchestrates update cycles
type Tracker struct {
	scraper  Scraper
	store    Store
	notifier Notifier
	source   string

	mu       sync.Mutex
	settings domain.Settings

	now    func() time.Time
	idFunc func() string // nil uses timeline default
}

// New creates a tracker. Stored settings take precedence over p.Settings.
func New(ctx context.Context, p Params) (*Tracker, error) {
	if p.Scraper == nil || p.Store == nil {
		return nil, errors.New("scraper and store are required")
	}
	t := &Tracker{
		scraper:  p.Scraper,
		store:    p.Store,
		notifier: p.Notifier,
		source:   p.Source,
		settings: p.Settings,
		now:      time.Now,
	}

	stored, ok, err := p.Store.LoadSettings(ctx)
	switch {
	case err != nil:
		lgr.Printf("[WARN] failed to load stored settings, using configured defaults: %v", err)
	case ok:
		t.settings = stored
		lgr.Printf("[DEBUG] loaded stored alert settings: %+v", stored)
	}
	return t, nil
}

// Update runs one cycle: scrape, filter, reconcile, persist, alert.
// Only a failed save fails the cycle.
func (t *Tracker) Update(ctx context.Context) (domain.UpdateSummary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	started := t.now()
	summary := domain.UpdateSummary{StartedAt: started}

	scraped := t.scraper.Fetch(ctx)
	political := classifier.Filter(scraped)
	lgr.Printf("[DEBUG] scraped %d topics, %d political", len(scraped), len(political))

	prior, err := t.store.LoadEntities(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load entities, starting from empty timeline: %v", err)
		prior = map[string]*domain.TrackedEntity{}
	}

	opts := []timeline.Option{timeline.WithSource(t.source)}
	if t.idFunc != nil {
		opts = append(opts, timeline.WithIDFunc(t.idFunc))
	}
	res := timeline.Reconcile(political, prior, started, opts...)

	if err := t.store.SaveEntities(ctx, res.Entities); err != nil {
		return summary, fmt.Errorf("save entities: %w", err)
	}

	for _, e := range res.Deactivated {
		lgr.Printf("[DEBUG] trend %q ended after %d minutes", e.Topic, e.DurationMinutes)
	}

	summary.Total = len(res.Entities)
	summary.New = len(res.Created)
	summary.Active = activeCount(res.Entities)
	summary.Deactivated = len(res.Deactivated)
	summary.Alerts = t.dispatchAlerts(ctx, alert.Qualifying(res.Created, t.settings), started)
	summary.Duration = t.now().Sub(started)

	lgr.Printf("[INFO] update completed: total=%d, new=%d, active=%d, deactivated=%d, alerts=%d",
		summary.Total, summary.New, summary.Active, summary.Deactivated, summary.Alerts)
	return summary, nil
}

// dispatchAlerts delivers alerts for qualifying entities and records one alert per entity.
// Returns the number of recorded alerts.
func (t *Tracker) dispatchAlerts(ctx context.Context, entities []*domain.TrackedEntity, now time.Time) int {
	if len(entities) == 0 {
		return 0
	}

	groups := make([][]*domain.TrackedEntity, 0, len(entities))
	if t.settings.Frequency == domain.FrequencyBatch {
		groups = append(groups, entities)
	} else {
		for _, e := range entities {
			groups = append(groups, []*domain.TrackedEntity{e})
		}
	}

	recorded := 0
	for _, group := range groups {
		status, deliveryID, errMsg := t.deliver(ctx, group)
		for _, e := range group {
			rec := &domain.AlertRecord{
				Timestamp:  now,
				EntityID:   e.ID,
				Topic:      e.Topic,
				Category:   e.Category,
				Rank:       e.CurrentRank,
				Status:     status,
				DeliveryID: deliveryID,
				Error:      errMsg,
			}
			if err := t.store.AppendAlert(ctx, rec); err != nil {
				lgr.Printf("[WARN] failed to record alert for %q: %v", e.Topic, err)
				continue
			}
			recorded++
		}
	}
	return recorded
}

// deliver sends one message for the group and maps the outcome to an alert status
func (t *Tracker) deliver(ctx context.Context, group []*domain.TrackedEntity) (status domain.AlertStatus, deliveryID, errMsg string) {
	if t.notifier == nil {
		return domain.AlertWouldSend, "", ""
	}
	id, err := t.notifier.Deliver(ctx, group, t.settings)
	switch {
	case errors.Is(err, notify.ErrNotConfigured):
		lgr.Printf("[DEBUG] notifier not configured, %d alert(s) recorded as would-send", len(group))
		return domain.AlertWouldSend, "", ""
	case err != nil:
		lgr.Printf("[WARN] failed to deliver alert for %s: %v", groupTopics(group), err)
		return domain.AlertFailed, "", err.Error()
	default:
		lgr.Printf("[INFO] alert delivered for %s, id %s", groupTopics(group), id)
		return domain.AlertSent, id, ""
	}
}

// Entities returns entities matching the filter
func (t *Tracker) Entities(ctx context.Context, filter domain.EntityFilter) ([]*domain.TrackedEntity, error) {
	res, err := t.store.ListEntities(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return res, nil
}

// Entity returns an entity by id, domain.ErrNotFound when missing
func (t *Tracker) Entity(ctx context.Context, id string) (*domain.TrackedEntity, error) {
	e, err := t.store.GetEntity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity %s: %w", id, err)
	}
	return e, nil
}

// Alerts returns the alert log, newest first. Zero limit returns everything.
func (t *Tracker) Alerts(ctx context.Context, limit int) ([]domain.AlertRecord, error) {
	res, err := t.store.GetAlerts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get alerts: %w", err)
	}
	return res, nil
}

// Settings returns a copy of the current settings
func (t *Tracker) Settings() domain.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySettings(t.settings)
}

// UpdateSettings merges the update into current settings, validates and persists the result
func (t *Tracker) UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	merged := upd.Apply(t.settings)
	if err := merged.Validate(); err != nil {
		return domain.Settings{}, err
	}
	if err := t.store.SaveSettings(ctx, merged); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	t.settings = merged
	lgr.Printf("[INFO] alert settings updated: min_rank=%d, frequency=%s, categories=%v",
		merged.MinRank, merged.Frequency, merged.EnabledCategories)
	return copySettings(merged), nil
}

// Stats computes aggregate statistics over all entities
func (t *Tracker) Stats(ctx context.Context) (domain.Stats, error) {
	all, err := t.store.ListEntities(ctx, domain.EntityFilter{})
	if err != nil {
		return domain.Stats{}, fmt.Errorf("list entities: %w", err)
	}

	st := domain.Stats{Total: len(all), ByCategory: map[domain.Category]int{}}
	activeDuration := 0
	for _, e := range all {
		st.ByCategory[e.Category]++
		if e.IsActive {
			st.Active++
			activeDuration += e.DurationMinutes
		}
		if st.LongestRunningTrend == nil || e.DurationMinutes > st.LongestRunningTrend.DurationMinutes {
			st.LongestRunningTrend = e
		}
	}
	st.Inactive = st.Total - st.Active
	if st.Active > 0 {
		st.AvgActiveDuration = float64(activeDuration) / float64(st.Active)
	}
	return st, nil
}

// Export returns the full tracker state
func (t *Tracker) Export(ctx context.Context) (domain.Snapshot, error) {
	entities, err := t.store.ListEntities(ctx, domain.EntityFilter{})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("list entities: %w", err)
	}
	alerts, err := t.store.GetAlerts(ctx, 0)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("get alerts: %w", err)
	}
	return domain.Snapshot{
		ExportedAt: t.now().UTC(),
		Source:     t.source,
		Settings:   t.Settings(),
		Entities:   entities,
		Alerts:     alerts,
	}, nil
}

func activeCount(entities map[string]*domain.TrackedEntity) int {
	n := 0
	for _, e := range entities {
		if e.IsActive {
			n++
		}
	}
	return n
}

func copySettings(s domain.Settings) domain.Settings {
	s.EnabledCategories = append([]domain.Category(nil), s.EnabledCategories...)
	return s
}

func groupTopics(group []*domain.TrackedEntity) string {
	topics := make([]string, len(group))
	for i, e := range group {
		topics[i] = fmt.Sprintf("%q", e.Topic)
	}
	sort.Strings(topics)
	return fmt.Sprint(topics)
}
