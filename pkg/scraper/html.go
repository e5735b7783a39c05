package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/umputun/politrend/pkg/domain"
)

const defaultItemSelector = "ol li"

// HTMLSource extracts ranked topics from a trend listing page
type HTMLSource struct {
	cfg       SourceConfig
	client    *http.Client
	userAgent string
}

// NewHTMLSource creates an html page source
func NewHTMLSource(cfg SourceConfig, userAgent string, timeout time.Duration) *HTMLSource {
	if cfg.ItemSelector == "" {
		cfg.ItemSelector = defaultItemSelector
	}
	return &HTMLSource{cfg: cfg, client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Name returns source name
func (h *HTMLSource) Name() string { return h.cfg.Name }

// URL returns page url
func (h *HTMLSource) URL() string { return h.cfg.URL }

// Fetch downloads the page and extracts topics in page order
func (h *HTMLSource) Fetch(ctx context.Context) ([]domain.RankedTopic, error) {
	doc, err := h.fetchDocument(ctx)
	if err != nil {
		return nil, err
	}
	return h.extract(doc), nil
}

func (h *HTMLSource) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.cfg.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	addBrowserHeaders(req, acceptHTML)
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// extract walks items in document order. Rank comes from the rank selector when it parses,
// otherwise from the position among extracted items.
func (h *HTMLSource) extract(doc *goquery.Document) []domain.RankedTopic {
	var res []domain.RankedTopic
	doc.Find(h.cfg.ItemSelector).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if h.cfg.MaxItems > 0 && len(res) >= h.cfg.MaxItems {
			return false
		}
		node := item
		if h.cfg.TopicSelector != "" {
			node = item.Find(h.cfg.TopicSelector).First()
		}
		topic := cleanTopic(node.Text())
		if topic == "" {
			return true
		}

		rank := len(res) + 1
		if h.cfg.RankSelector != "" {
			if r, ok := parseRank(item.Find(h.cfg.RankSelector).First().Text()); ok {
				rank = r
			}
		}
		res = append(res, domain.RankedTopic{Rank: rank, Topic: topic, Source: h.cfg.Name})
		return true
	})
	return res
}

// parseRank reads a positive rank from text like "#3" or "3."
func parseRank(s string) (int, bool) {
	digits := strings.TrimFunc(strings.TrimSpace(s), func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
