// Package scraper fetches ranked trending topics from configured sources.
// Every failure degrades to an empty result for the failing source, a scrape never aborts an update cycle.
package scraper

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/politrend/pkg/domain"
)

// Source fetches ranked topics from one upstream
type Source interface {
	Name() string
	URL() string
	Fetch(ctx context.Context) ([]domain.RankedTopic, error)
}

// SourceConfig describes a trend source
type SourceConfig struct {
	Name          string
	Type          string // html or rss
	URL           string
	ItemSelector  string // html only, one element per trend
	TopicSelector string // html only, relative to item, item text if empty
	RankSelector  string // html only, relative to item, position if empty
	MaxItems      int    // stop after this many topics, unlimited if zero
}

// Scraper fetches all sources concurrently and merges their rankings
type Scraper struct {
	sources []Source
	timeout time.Duration
}

// New creates a scraper over the given sources
func New(sources []Source, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{sources: sources, timeout: timeout}
}

// NewSources builds sources from configs
func NewSources(cfgs []SourceConfig, userAgent string, timeout time.Duration) ([]Source, error) {
	res := make([]Source, 0, len(cfgs))
	for _, c := range cfgs {
		switch c.Type {
		case "", "html":
			res = append(res, NewHTMLSource(c, userAgent, timeout))
		case "rss":
			res = append(res, NewRSSSource(c, userAgent, timeout))
		default:
			return nil, fmt.Errorf("source %q: unknown type %q", c.Name, c.Type)
		}
	}
	return res, nil
}

// Fetch returns ranked topics from all sources. A failed source contributes nothing.
// With more than one source, topics are merged by key keeping the best rank and re-ranked 1..N.
func (s *Scraper) Fetch(ctx context.Context) []domain.RankedTopic {
	results := make([][]domain.RankedTopic, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(len(s.sources), 1))
	for i, src := range s.sources {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			topics, err := src.Fetch(fctx)
			if err != nil {
				lgr.Printf("[WARN] scrape %s (%s) failed: %v", src.Name(), src.URL(), err)
				return nil
			}
			lgr.Printf("[DEBUG] scraped %d topics from %s", len(topics), src.Name())
			results[i] = topics
			return nil
		})
	}
	_ = g.Wait() // source errors are logged and never returned

	if len(results) == 1 {
		return results[0]
	}
	return merge(results)
}

// merge combines per-source rankings, best rank per key wins, ties keep source order
func merge(results [][]domain.RankedTopic) []domain.RankedTopic {
	type entry struct {
		topic domain.RankedTopic
		order int
	}
	best := map[string]*entry{}
	order := 0
	for _, topics := range results {
		for _, t := range topics {
			key := domain.TopicKey(t.Topic)
			if key == "" {
				continue
			}
			order++
			if cur, ok := best[key]; !ok || t.Rank < cur.topic.Rank {
				best[key] = &entry{topic: t, order: order}
			}
		}
	}

	merged := make([]*entry, 0, len(best))
	for _, e := range best {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].topic.Rank != merged[j].topic.Rank {
			return merged[i].topic.Rank < merged[j].topic.Rank
		}
		return merged[i].order < merged[j].order
	})

	res := make([]domain.RankedTopic, len(merged))
	for i, e := range merged {
		res[i] = e.topic
		res[i].Rank = i + 1
	}
	return res
}

var textPolicy = bluemonday.StrictPolicy()

// cleanTopic strips markup and entities and collapses whitespace
func cleanTopic(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
