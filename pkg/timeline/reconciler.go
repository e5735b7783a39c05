// Package timeline reconciles scraped trend snapshots against tracked entities.
package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/politrend/pkg/classifier"
	"github.com/umputun/politrend/pkg/domain"
)

// Result is the outcome of a single reconciliation pass
type Result struct {
	Entities    map[string]*domain.TrackedEntity // all entities by key, including untouched inactive ones
	Created     []*domain.TrackedEntity          // entities first seen in this pass, scrape order
	Deactivated []*domain.TrackedEntity          // entities active before and missing from this pass, by key
}

type options struct {
	idFunc func() string
	source string
}

// Option customizes Reconcile
type Option func(o *options)

// WithIDFunc sets the id generator for new entities, uuid v4 by default
func WithIDFunc(fn func() string) Option {
	return func(o *options) { o.idFunc = fn }
}

// WithSource sets provenance for new entities scraped without one
func WithSource(source string) Option {
	return func(o *options) { o.source = source }
}

// Reconcile applies a scraped snapshot to the prior entities and returns the updated timeline.
// Prior entities are never modified, the result holds copies. Entities are never dropped:
// missing topics are deactivated and kept for history.
//
// Continuing topics move both rank extremes, so LowestRank <= CurrentRank <= HighestRank holds
// for every active entity.
func Reconcile(scraped []domain.RankedTopic, prior map[string]*domain.TrackedEntity, now time.Time, opts ...Option) Result {
	o := options{idFunc: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Entities: make(map[string]*domain.TrackedEntity, len(prior)+len(scraped))}
	for key, e := range prior {
		c := e.Clone()
		c.Key = key
		res.Entities[key] = c
	}

	present := make(map[string]bool, len(scraped))
	for _, st := range scraped {
		key := domain.TopicKey(st.Topic)
		if key == "" || present[key] {
			continue // blank or duplicate in the same scrape, first occurrence wins
		}
		present[key] = true

		if e, ok := res.Entities[key]; ok {
			continueEntity(e, st.Rank, now)
			continue
		}

		e := newEntity(st, key, now, o)
		res.Entities[key] = e
		res.Created = append(res.Created, e)
	}

	for key, e := range res.Entities {
		if present[key] {
			continue
		}
		if e.IsActive {
			res.Deactivated = append(res.Deactivated, e)
		}
		e.IsActive = false
	}
	sort.Slice(res.Deactivated, func(i, j int) bool { return res.Deactivated[i].Key < res.Deactivated[j].Key })

	return res
}

func continueEntity(e *domain.TrackedEntity, rank int, now time.Time) {
	e.LastSeen = now
	e.DurationMinutes = elapsedMinutes(e.FirstSeen, now)
	e.CheckCount++
	e.CurrentRank = rank
	e.IsActive = true
	if rank < e.LowestRank {
		e.LowestRank = rank
	}
	if rank > e.HighestRank {
		e.HighestRank = rank
	}
}

func newEntity(st domain.RankedTopic, key string, now time.Time, o options) *domain.TrackedEntity {
	sentiment := classifier.ScoreSentiment(st.Topic)
	source := st.Source
	if source == "" {
		source = o.source
	}
	return &domain.TrackedEntity{
		ID:             o.idFunc(),
		Key:            key,
		Topic:          st.Topic,
		Category:       classifier.Categorize(st.Topic),
		FirstSeen:      now,
		LastSeen:       now,
		CheckCount:     1,
		CurrentRank:    st.Rank,
		LowestRank:     st.Rank,
		HighestRank:    st.Rank,
		SentimentScore: sentiment.Score,
		SentimentLabel: sentiment.Label,
		IsActive:       true,
		Source:         source,
	}
}

// elapsedMinutes returns whole minutes between from and to, never negative
func elapsedMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
