package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/politrend/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func testEntity(id, topic string, cat domain.Category, firstSeen time.Time, rank, duration int, active bool) *domain.TrackedEntity {
	return &domain.TrackedEntity{
		ID:              id,
		Key:             domain.TopicKey(topic),
		Topic:           topic,
		Category:        cat,
		FirstSeen:       firstSeen,
		LastSeen:        firstSeen.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		CheckCount:      1,
		CurrentRank:     rank,
		LowestRank:      rank,
		HighestRank:     rank,
		SentimentScore:  0.3,
		SentimentLabel:  domain.SentimentSlightlyPositive,
		IsActive:        active,
		Source:          "test",
	}
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Ping(context.Background()))

	var count int
	err := repos.DB.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('entities', 'alerts', 'settings')`)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestEntityRepository_SaveAndLoad(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	empty, err := repos.Entity.LoadEntities(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	e := testEntity("id-1", "Election Results", domain.CategoryElections, t0, 2, 0, true)
	require.NoError(t, repos.Entity.SaveEntities(ctx, map[string]*domain.TrackedEntity{e.Key: e}))

	loaded, err := repos.Entity.LoadEntities(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, e, loaded["election results"])

	// continuation updates mutable fields only
	upd := e.Clone()
	upd.LastSeen = t0.Add(30 * time.Minute)
	upd.DurationMinutes = 30
	upd.CheckCount = 2
	upd.CurrentRank = 7
	upd.HighestRank = 7
	upd.IsActive = false
	upd.Topic = "ELECTION RESULTS"
	upd.Category = domain.CategoryGeneral
	require.NoError(t, repos.Entity.SaveEntities(ctx, map[string]*domain.TrackedEntity{upd.Key: upd}))

	loaded, err = repos.Entity.LoadEntities(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	got := loaded["election results"]
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Election Results", got.Topic, "display topic is immutable")
	assert.Equal(t, domain.CategoryElections, got.Category, "category is immutable")
	assert.Equal(t, t0, got.FirstSeen)
	assert.Equal(t, t0.Add(30*time.Minute), got.LastSeen)
	assert.Equal(t, 30, got.DurationMinutes)
	assert.Equal(t, 2, got.CheckCount)
	assert.Equal(t, 7, got.CurrentRank)
	assert.Equal(t, 2, got.LowestRank)
	assert.Equal(t, 7, got.HighestRank)
	assert.False(t, got.IsActive)
}

func TestEntityRepository_GetEntity(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	e := testEntity("abc", "NATO Summit", domain.CategoryForeignPolicy, t0, 4, 10, true)
	require.NoError(t, repos.Entity.SaveEntities(ctx, map[string]*domain.TrackedEntity{e.Key: e}))

	got, err := repos.Entity.GetEntity(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = repos.Entity.GetEntity(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEntityRepository_ListEntities(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	entities := []*domain.TrackedEntity{
		testEntity("1", "Election Night", domain.CategoryElections, t0, 5, 120, true),
		testEntity("2", "Senate Hearing", domain.CategoryCongress, t0.Add(time.Hour), 1, 30, true),
		testEntity("3", "Primary Vote", domain.CategoryElections, t0.Add(2*time.Hour), 9, 300, false),
		testEntity("4", "Supreme Court", domain.CategoryJudicial, t0.Add(3*time.Hour), 3, 0, true),
	}
	m := map[string]*domain.TrackedEntity{}
	for _, e := range entities {
		m[e.Key] = e
	}
	require.NoError(t, repos.Entity.SaveEntities(ctx, m))

	ids := func(list []*domain.TrackedEntity) []string {
		res := make([]string, len(list))
		for i, e := range list {
			res[i] = e.ID
		}
		return res
	}

	tests := []struct {
		name   string
		filter domain.EntityFilter
		want   []string
	}{
		{"default sort first seen desc", domain.EntityFilter{}, []string{"4", "3", "2", "1"}},
		{"duration desc", domain.EntityFilter{Sort: domain.SortDuration}, []string{"3", "1", "2", "4"}},
		{"rank asc", domain.EntityFilter{Sort: domain.SortRank}, []string{"2", "4", "1", "3"}},
		{"category", domain.EntityFilter{Category: domain.CategoryElections}, []string{"3", "1"}},
		{"active only", domain.EntityFilter{ActiveOnly: true, Sort: domain.SortRank}, []string{"2", "4", "1"}},
		{"category and active", domain.EntityFilter{Category: domain.CategoryElections, ActiveOnly: true}, []string{"1"}},
		{"limit", domain.EntityFilter{Limit: 2}, []string{"4", "3"}},
		{"no match", domain.EntityFilter{Category: domain.CategoryEconomy}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := repos.Entity.ListEntities(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestSplitStatements(t *testing.T) {
	sqlText := `
-- comment
CREATE TABLE a (id INTEGER);

CREATE TRIGGER t BEFORE DELETE ON a
BEGIN
    SELECT RAISE(ABORT, 'no');
END;
CREATE INDEX i ON a(id);
`
	stmts := splitStatements(sqlText)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE a (id INTEGER);", stmts[0])
	assert.Contains(t, stmts[1], "SELECT RAISE(ABORT, 'no');")
	assert.True(t, strings.HasSuffix(stmts[1], "END;"))
	assert.Equal(t, "CREATE INDEX i ON a(id);", stmts[2])
}
