package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/politrend/pkg/domain"
	"github.com/umputun/politrend/pkg/feed"
)

const (
	defaultRSSLimit = 50
	defaultRSSTTL   = 15 * time.Minute
)

// rssHandler serves RSS feed of tracked trends, newest first.
// Optional category query param narrows the feed to one category.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.EntityFilter{Sort: domain.SortFirstSeen, Limit: defaultRSSLimit}
	if c := r.URL.Query().Get("category"); c != "" {
		filter.Category = domain.Category(c)
		if !filter.Category.Valid() {
			http.Error(w, fmt.Sprintf("unknown category %q", c), http.StatusBadRequest)
			return
		}
	}

	entities, err := s.tracker.Entities(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get entities for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	generator := feed.NewGenerator(s.config.GetBaseURL(), defaultRSSTTL)
	rss, err := generator.GenerateRSS(entities, filter.Category)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
