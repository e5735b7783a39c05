// Package feed renders tracked trends as an RSS 2.0 feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/politrend/pkg/domain"
)

// Generator creates RSS feeds from tracked entities
type Generator struct {
	baseURL string
	ttl     time.Duration // update interval hint for readers
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string, ttl time.Duration) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed of entities in the given order, optionally limited to one category
func (g *Generator) GenerateRSS(entities []*domain.TrackedEntity, category domain.Category) (string, error) {
	title := "politrend - political trends"
	selfLink := g.baseURL + "/api/v1/rss"
	if category != "" {
		title = fmt.Sprintf("politrend - %s trends", category)
		selfLink += "?category=" + url.QueryEscape(string(category))
	}

	items := make([]*RSSItem, 0, len(entities))
	for _, e := range entities {
		items = append(items, g.convertToRSSItem(e))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Politically relevant trending topics with their first appearance and rank",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().UTC().Format(time.RFC1123Z),
			TTL:           int(g.ttl.Minutes()),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(e *domain.TrackedEntity) *RSSItem {
	status := "ended"
	if e.IsActive {
		status = "trending"
	}
	desc := fmt.Sprintf("%s, %s for %d min, rank #%d (best #%d, worst #%d), sentiment %s (%.2f)",
		e.Category, status, e.DurationMinutes, e.CurrentRank, e.LowestRank, e.HighestRank, e.SentimentLabel, e.SentimentScore)

	return &RSSItem{
		Title:       fmt.Sprintf("[#%d] %s", e.CurrentRank, e.Topic),
		Link:        fmt.Sprintf("%s/api/v1/entities/%s", g.baseURL, e.ID),
		GUID:        GUID{Value: e.ID},
		Description: desc,
		PubDate:     e.FirstSeen.UTC().Format(time.RFC1123Z),
		Categories:  []string{string(e.Category)},
	}
}
