package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/politrend/pkg/domain"
)

func seqIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func TestReconcile_NewEntities(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	scraped := []domain.RankedTopic{
		{Rank: 1, Topic: "Election Results", Source: "trends"},
		{Rank: 5, Topic: "Senate Scandal"},
	}

	res := Reconcile(scraped, nil, now, seqIDs(), WithSource("fallback"))
	require.Len(t, res.Entities, 2)
	require.Len(t, res.Created, 2)
	assert.Empty(t, res.Deactivated)

	e := res.Entities["election results"]
	require.NotNil(t, e)
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, "election results", e.Key)
	assert.Equal(t, "Election Results", e.Topic)
	assert.Equal(t, domain.CategoryElections, e.Category)
	assert.Equal(t, now, e.FirstSeen)
	assert.Equal(t, now, e.LastSeen)
	assert.Equal(t, 0, e.DurationMinutes)
	assert.Equal(t, 1, e.CheckCount)
	assert.Equal(t, 1, e.CurrentRank)
	assert.Equal(t, 1, e.LowestRank)
	assert.Equal(t, 1, e.HighestRank)
	assert.True(t, e.IsActive)
	assert.Equal(t, "trends", e.Source)
	assert.Same(t, e, res.Created[0])

	e2 := res.Entities["senate scandal"]
	require.NotNil(t, e2)
	assert.Equal(t, domain.CategoryCongress, e2.Category)
	assert.InDelta(t, -0.3, e2.SentimentScore, 0.0001)
	assert.Equal(t, domain.SentimentSlightlyNegative, e2.SentimentLabel)
	assert.Equal(t, "fallback", e2.Source)
}

func TestReconcile_DefaultIDIsUUID(t *testing.T) {
	res := Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "Trump"}, {Rank: 2, Topic: "Biden"}}, nil, time.Now())
	require.Len(t, res.Created, 2)
	assert.Len(t, res.Created[0].ID, 36)
	assert.NotEqual(t, res.Created[0].ID, res.Created[1].ID)
}

func TestReconcile_ContinuationAdvancesByDelta(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 30, 0, time.UTC)
	scraped := []domain.RankedTopic{{Rank: 3, Topic: "Supreme Court"}}

	pass1 := Reconcile(scraped, nil, t0, seqIDs())
	pass2 := Reconcile(scraped, pass1.Entities, t0.Add(17*time.Minute), seqIDs())
	pass3 := Reconcile(scraped, pass2.Entities, t0.Add(17*time.Minute+45*time.Minute), seqIDs())

	e1, e2, e3 := pass1.Entities["supreme court"], pass2.Entities["supreme court"], pass3.Entities["supreme court"]
	assert.Equal(t, 0, e1.DurationMinutes)
	assert.Equal(t, 17, e2.DurationMinutes)
	assert.Equal(t, 62, e3.DurationMinutes)
	assert.Equal(t, e1.CheckCount+1, e2.CheckCount)
	assert.Equal(t, e2.CheckCount+1, e3.CheckCount)
	assert.Equal(t, "id-1", e3.ID)
	assert.Equal(t, t0, e3.FirstSeen)
	assert.Empty(t, pass2.Created)
	assert.Empty(t, pass3.Created)
}

func TestReconcile_DoesNotMutatePrior(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	pass1 := Reconcile([]domain.RankedTopic{{Rank: 3, Topic: "NATO"}}, nil, t0)
	before := *pass1.Entities["nato"]

	Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "NATO"}}, pass1.Entities, t0.Add(time.Hour))
	Reconcile(nil, pass1.Entities, t0.Add(2*time.Hour))
	assert.Equal(t, before, *pass1.Entities["nato"])
}

func TestReconcile_RankExtremes(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	entities := Reconcile([]domain.RankedTopic{{Rank: 10, Topic: "Tariff news"}}, nil, t0).Entities

	ranks := []int{7, 15, 3, 12}
	lowest := 10
	for i, r := range ranks {
		entities = Reconcile([]domain.RankedTopic{{Rank: r, Topic: "tariff NEWS"}}, entities, t0.Add(time.Duration(i+1)*time.Minute)).Entities
		e := entities["tariff news"]
		assert.LessOrEqual(t, e.LowestRank, lowest, "lowest rank never goes up")
		lowest = e.LowestRank
		assert.LessOrEqual(t, e.LowestRank, e.CurrentRank)
		assert.LessOrEqual(t, e.CurrentRank, e.HighestRank)
		assert.Equal(t, r, e.CurrentRank)
	}

	e := entities["tariff news"]
	assert.Equal(t, 3, e.LowestRank)
	assert.Equal(t, 15, e.HighestRank)
	assert.Equal(t, 12, e.CurrentRank)
	assert.Equal(t, "Tariff news", e.Topic, "display topic keeps first casing")
	assert.Len(t, entities, 1, "case-insensitive identity")
}

func TestReconcile_ReappearingTopic(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	topic := []domain.RankedTopic{{Rank: 2, Topic: "Impeachment Vote"}}

	pass1 := Reconcile(topic, nil, t0)
	pass2 := Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "Governor race"}}, pass1.Entities, t0.Add(10*time.Minute))
	pass3 := Reconcile(topic, pass2.Entities, t0.Add(20*time.Minute))

	key := "impeachment vote"
	assert.True(t, pass1.Entities[key].IsActive)
	assert.False(t, pass2.Entities[key].IsActive)
	assert.True(t, pass3.Entities[key].IsActive)

	assert.Equal(t, t0, pass2.Entities[key].FirstSeen)
	assert.Equal(t, t0, pass3.Entities[key].FirstSeen)
	assert.Equal(t, 1, pass2.Entities[key].CheckCount, "not incremented while absent")
	assert.Equal(t, 2, pass3.Entities[key].CheckCount)
	assert.Equal(t, 20, pass3.Entities[key].DurationMinutes, "duration accumulates from first sighting")
	assert.Equal(t, t0, pass2.Entities[key].LastSeen)

	require.Len(t, pass2.Deactivated, 1)
	assert.Equal(t, key, pass2.Deactivated[0].Key)
	assert.Empty(t, pass3.Created, "reappearance is not a new entity")

	require.Len(t, pass3.Deactivated, 1)
	assert.Equal(t, "governor race", pass3.Deactivated[0].Key)
}

func TestReconcile_DeactivatedOnlyOnce(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	pass1 := Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "Budget"}, {Rank: 2, Topic: "Congress"}}, nil, t0)
	pass2 := Reconcile(nil, pass1.Entities, t0.Add(time.Minute))
	pass3 := Reconcile(nil, pass2.Entities, t0.Add(2*time.Minute))

	require.Len(t, pass2.Deactivated, 2)
	assert.Equal(t, "budget", pass2.Deactivated[0].Key)
	assert.Equal(t, "congress", pass2.Deactivated[1].Key)
	assert.Empty(t, pass3.Deactivated)
	assert.Len(t, pass3.Entities, 2, "history is retained")
	for _, e := range pass3.Entities {
		assert.False(t, e.IsActive)
		assert.GreaterOrEqual(t, e.CheckCount, 1)
	}
}

func TestReconcile_DuplicatesAndBlanks(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	scraped := []domain.RankedTopic{
		{Rank: 1, Topic: "  Senate Race "},
		{Rank: 4, Topic: "senate race"},
		{Rank: 5, Topic: "   "},
	}
	res := Reconcile(scraped, nil, t0)
	require.Len(t, res.Entities, 1)
	require.Len(t, res.Created, 1)
	e := res.Entities["senate race"]
	assert.Equal(t, 1, e.CurrentRank)
	assert.Equal(t, 1, e.CheckCount)
}

func TestReconcile_ClockSkewNeverNegative(t *testing.T) {
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	pass1 := Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "Mayor"}}, nil, t0)
	pass2 := Reconcile([]domain.RankedTopic{{Rank: 1, Topic: "Mayor"}}, pass1.Entities, t0.Add(-5*time.Minute))
	assert.Equal(t, 0, pass2.Entities["mayor"].DurationMinutes)
}
