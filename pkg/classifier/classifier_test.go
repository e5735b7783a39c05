package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/politrend/pkg/domain"
)

func TestIsPolitical(t *testing.T) {
	tests := []struct {
		topic string
		want  bool
	}{
		{"Election Results", true},
		{"ELECTION NIGHT", true},
		{"senate hearing", true},
		{"White House Briefing", true},
		{"GOP Debate", true},
		{"Trump rally", true},
		{"NBA Finals", false},
		{"Taylor Swift", false},
		{"Weather Forecast", false},
		{"", false},
		{"gopher conference", true}, // substring match, not word boundary
		{"Lighthouse Tour", true},   // "house" inside a longer word
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPolitical(tt.topic))
		})
	}
}

func TestIsPolitical_EveryKeywordMatchesAnyCase(t *testing.T) {
	for _, kw := range politicalKeywords {
		assert.True(t, IsPolitical("breaking "+kw+" news"), kw)
		assert.True(t, IsPolitical(strings.ToUpper(kw)), kw)
	}
	assert.True(t, IsPolitical("IMPEACHMENT"))
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		topic string
		want  domain.Category
	}{
		{"Election Results", domain.CategoryElections},
		{"Senate Vote on Budget", domain.CategoryElections}, // elections beats congress and economy
		{"Speaker Johnson", domain.CategoryCongress},
		{"House passes bill", domain.CategoryCongress},
		{"Trump", domain.CategoryWhiteHouse},
		{"Supreme Court Ruling", domain.CategoryJudicial},
		{"Governor Newsom", domain.CategoryStateLocal},
		{"NATO Summit", domain.CategoryForeignPolicy},
		{"Tariffs on steel", domain.CategoryEconomy},
		{"Democratic Party", domain.CategoryGeneral},
		{"", domain.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.topic))
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.CategoryElections, Categorize("congress election"))
	}
}

func TestScoreSentiment(t *testing.T) {
	tests := []struct {
		topic string
		score float64
		label domain.SentimentLabel
	}{
		{"election victory", 0.3, domain.SentimentSlightlyPositive},
		{"Senate passes budget", 0.3, domain.SentimentSlightlyPositive},
		{"victory win support", 0.9, domain.SentimentPositive},
		{"victory celebrate win support success", 1, domain.SentimentPositive},
		{"scandal", -0.3, domain.SentimentSlightlyNegative},
		{"scandal crisis", -0.6, domain.SentimentNegative},
		{"scandal crisis attack defeat controversy", -1, domain.SentimentNegative},
		{"governor wins amid scandal", 0, domain.SentimentNeutral},
		{"budget hearing", 0, domain.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			s := ScoreSentiment(tt.topic)
			assert.InDelta(t, tt.score, s.Score, 0.0001)
			assert.Equal(t, tt.label, s.Label)
			assert.GreaterOrEqual(t, s.Score, -1.0)
			assert.LessOrEqual(t, s.Score, 1.0)
		})
	}
}

func TestSentimentLabel(t *testing.T) {
	assert.Equal(t, domain.SentimentPositive, sentimentLabel(0.31))
	assert.Equal(t, domain.SentimentSlightlyPositive, sentimentLabel(0.3))
	assert.Equal(t, domain.SentimentSlightlyPositive, sentimentLabel(0.11))
	assert.Equal(t, domain.SentimentNeutral, sentimentLabel(0.1))
	assert.Equal(t, domain.SentimentNeutral, sentimentLabel(-0.1))
	assert.Equal(t, domain.SentimentSlightlyNegative, sentimentLabel(-0.3))
	assert.Equal(t, domain.SentimentNegative, sentimentLabel(-0.31))
}

func TestFilter(t *testing.T) {
	topics := []domain.RankedTopic{
		{Rank: 1, Topic: "NBA Finals"},
		{Rank: 2, Topic: "Election Results"},
		{Rank: 3, Topic: "Taylor Swift"},
		{Rank: 4, Topic: "Supreme Court"},
	}
	res := Filter(topics)
	assert.Equal(t, []domain.RankedTopic{{Rank: 2, Topic: "Election Results"}, {Rank: 4, Topic: "Supreme Court"}}, res)
	assert.Empty(t, Filter(nil))
}
