package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/politrend/pkg/domain"
)

// RSSSource reads trends from a feed, item order is the rank
type RSSSource struct {
	cfg       SourceConfig
	client    *http.Client
	userAgent string
	parser    *gofeed.Parser
}

// NewRSSSource creates a feed source
func NewRSSSource(cfg SourceConfig, userAgent string, timeout time.Duration) *RSSSource {
	return &RSSSource{cfg: cfg, client: &http.Client{Timeout: timeout}, userAgent: userAgent, parser: gofeed.NewParser()}
}

// Name returns source name
func (r *RSSSource) Name() string { return r.cfg.Name }

// URL returns feed url
func (r *RSSSource) URL() string { return r.cfg.URL }

// Fetch parses the feed and ranks item titles by position
func (r *RSSSource) Fetch(ctx context.Context) ([]domain.RankedTopic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	addBrowserHeaders(req, acceptFeed)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	feed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", r.cfg.URL, err)
	}

	res := make([]domain.RankedTopic, 0, len(feed.Items))
	for _, item := range feed.Items {
		topic := cleanTopic(item.Title)
		if topic == "" {
			continue
		}
		if r.cfg.MaxItems > 0 && len(res) >= r.cfg.MaxItems {
			break
		}
		res = append(res, domain.RankedTopic{Rank: len(res) + 1, Topic: topic, Source: r.cfg.Name})
	}
	return res, nil
}
