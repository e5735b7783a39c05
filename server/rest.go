package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/politrend/pkg/domain"
)

const (
	defaultAlertsLimit = 100
	maxListLimit       = 1000

	// updateWriteTimeout covers waiting for a running scheduled cycle plus our own
	updateWriteTimeout = 10 * time.Minute
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// entitiesHandler lists tracked entities, supports category, active, sort and limit query params
func (s *Server) entitiesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntityFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	entities, err := s.tracker.Entities(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to list entities: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if entities == nil {
		entities = []*domain.TrackedEntity{}
	}
	renderJSON(w, r, http.StatusOK, entities)
}

// entityHandler returns a single entity by id
func (s *Server) entityHandler(w http.ResponseWriter, r *http.Request) {
	entity, err := s.tracker.Entity(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get entity: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, entity)
}

// updateHandler runs an update cycle on demand
func (s *Server) updateHandler(w http.ResponseWriter, r *http.Request) {
	// the server write timeout is shorter than a cycle queued behind a scheduled one
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Now().Add(updateWriteTimeout)); err != nil {
		log.Printf("[DEBUG] can't extend write deadline for update: %v", err)
	}
	summary, err := s.tracker.Update(r.Context())
	if err != nil {
		log.Printf("[ERROR] on-demand update failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// getSettingsHandler returns current alert settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.tracker.Settings())
}

// putSettingsHandler merges a partial settings update
func (s *Server) putSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings payload: %w", err), http.StatusBadRequest)
		return
	}

	settings, err := s.tracker.UpdateSettings(r.Context(), upd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSettings) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

// statsHandler returns aggregate timeline statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tracker.Stats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// exportHandler sends the full tracker state as a downloadable json file
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.tracker.Export(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to export: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("politrend-%s.json", snapshot.ExportedAt.Format("20060102-150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	renderJSON(w, r, http.StatusOK, snapshot)
}

// alertsHandler returns the alert log, newest first
func (s *Server) alertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultAlertsLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	alerts, err := s.tracker.Alerts(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if alerts == nil {
		alerts = []domain.AlertRecord{}
	}
	renderJSON(w, r, http.StatusOK, alerts)
}

func parseEntityFilter(r *http.Request) (domain.EntityFilter, error) {
	q := r.URL.Query()
	filter := domain.EntityFilter{Sort: domain.SortFirstSeen}

	if c := q.Get("category"); c != "" {
		filter.Category = domain.Category(c)
		if !filter.Category.Valid() {
			return filter, fmt.Errorf("unknown category %q", c)
		}
	}

	if a := q.Get("active"); a != "" {
		active, err := strconv.ParseBool(a)
		if err != nil {
			return filter, fmt.Errorf("invalid active value %q", a)
		}
		filter.ActiveOnly = active
	}

	switch sk := domain.SortKey(q.Get("sort")); sk {
	case "":
	case domain.SortFirstSeen, domain.SortDuration, domain.SortRank:
		filter.Sort = sk
	default:
		return filter, fmt.Errorf("unknown sort key %q", sk)
	}

	limit, err := parseLimit(r, 0)
	if err != nil {
		return filter, err
	}
	filter.Limit = limit
	return filter, nil
}

// parseLimit reads the limit query param, capped by maxListLimit
func parseLimit(r *http.Request, def int) (int, error) {
	l := r.URL.Query().Get("limit")
	if l == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(l)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit %q", l)
	}
	return min(limit, maxListLimit), nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
