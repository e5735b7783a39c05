// Package classifier detects political topics, assigns categories and estimates sentiment.
// All functions are pure and keyword based. Matching is by lower-cased substring, not by word
// boundary, so a short keyword inside a longer word matches too ("gop" in "gopher"). This is
// accepted: trend titles are short and a false positive only costs one tracked entity.
package classifier

import (
	"math"
	"regexp"
	"strings"

	"github.com/umputun/politrend/pkg/domain"
)

// politicalKeywords is the curated list used by IsPolitical
var politicalKeywords = []string{
	// elections
	"election", "vote", "voting", "ballot", "primary", "caucus", "poll", "campaign", "midterm",
	// government bodies
	"congress", "senate", "house", "parliament", "cabinet", "supreme court", "court",
	// offices
	"president", "senator", "governor", "mayor", "speaker", "attorney general", "secretary of",
	// people
	"biden", "trump", "harris", "vance",
	// parties
	"democrat", "republican", "gop", "dnc", "rnc",
	// policy
	"policy", "bill", "legislation", "impeach", "tariff", "sanction", "immigration", "border",
	"tax", "budget", "shutdown", "filibuster",
	// institutional and geographic
	"white house", "capitol", "pentagon", "nato", "federal",
}

type categoryRule struct {
	category domain.Category
	re       *regexp.Regexp
}

// categoryRules are checked in order, first match wins
var categoryRules = []categoryRule{
	{domain.CategoryElections, regexp.MustCompile(`(?i)election|vote|voting|ballot|primar(y|ies)|caucus|poll|campaign|candidate|midterm`)},
	{domain.CategoryCongress, regexp.MustCompile(`(?i)congress|senate|senator|house|representative|speaker|filibuster|bill|legislation|impeach`)},
	{domain.CategoryWhiteHouse, regexp.MustCompile(`(?i)white house|president|biden|trump|harris|vance|cabinet|executive order|oval office`)},
	{domain.CategoryJudicial, regexp.MustCompile(`(?i)supreme court|court|judge|justice|scotus|ruling|lawsuit|indict`)},
	{domain.CategoryStateLocal, regexp.MustCompile(`(?i)governor|mayor|state legislature|city council|county|statehouse`)},
	{domain.CategoryForeignPolicy, regexp.MustCompile(`(?i)nato|sanction|foreign|ukraine|russia|china|israel|gaza|embassy|diplomat|treaty`)},
	{domain.CategoryEconomy, regexp.MustCompile(`(?i)tariff|tax|budget|shutdown|inflation|economy|debt ceiling|jobs report|trade`)},
}

var (
	positiveKeywords = []string{"win", "victory", "success", "pass", "approve", "support", "celebrate"}
	negativeKeywords = []string{"scandal", "crisis", "fail", "defeat", "attack", "controversy", "impeach"}
)

const sentimentStep = 0.3

// IsPolitical checks if the topic contains any political keyword
func IsPolitical(topic string) bool {
	lower := strings.ToLower(topic)
	for _, kw := range politicalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Categorize returns the category of the first matching rule, CategoryGeneral if none match
func Categorize(topic string) domain.Category {
	for _, rule := range categoryRules {
		if rule.re.MatchString(topic) {
			return rule.category
		}
	}
	return domain.CategoryGeneral
}

// ScoreSentiment estimates sentiment from keyword hits. Every matching keyword adds
// (or subtracts) one step, the result is clamped to [-1, 1].
func ScoreSentiment(topic string) domain.Sentiment {
	lower := strings.ToLower(topic)
	score := 0.0
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			score += sentimentStep
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			score -= sentimentStep
		}
	}
	score = math.Max(-1, math.Min(1, score))
	score = math.Round(score*100) / 100 // drop float noise from repeated steps
	return domain.Sentiment{Score: score, Label: sentimentLabel(score)}
}

func sentimentLabel(score float64) domain.SentimentLabel {
	switch {
	case score > 0.3:
		return domain.SentimentPositive
	case score < -0.3:
		return domain.SentimentNegative
	case score > 0.1:
		return domain.SentimentSlightlyPositive
	case score < -0.1:
		return domain.SentimentSlightlyNegative
	default:
		return domain.SentimentNeutral
	}
}

// Filter keeps political topics only, order preserved
func Filter(topics []domain.RankedTopic) []domain.RankedTopic {
	res := make([]domain.RankedTopic, 0, len(topics))
	for _, t := range topics {
		if IsPolitical(t.Topic) {
			res = append(res, t)
		}
	}
	return res
}
