package stats

import (
	"net/http"
	"time"

	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler/shared"
	"github.com/chalklabs/tutorgate/internal/types"
)

// GetUsageStats handles GET /api/stats.
func (h *Handlers) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("stats", r)
	if h.Cache != nil {
		if cached, found := h.Cache.Get(key); found {
			w.Header().Set("X-Cache", "HIT")
			shared.WriteJSON(w, cached, http.StatusOK)
			return
		}
	}

	stats, err := h.Storage.GetUsageStats(parseStatsFilter(r))
	if err != nil {
		types.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to get usage stats", err.Error())
		return
	}

	if h.Cache != nil {
		h.Cache.SetWithTTL(key, stats, 1, statsCacheTTL)
	}

	w.Header().Set("X-Cache", "MISS")
	shared.WriteJSON(w, stats, http.StatusOK)
}

// GetDailyUsage handles GET /api/stats/daily.
func (h *Handlers) GetDailyUsage(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	// Default to the last 30 days
	if startDate == "" {
		startDate = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	if endDate == "" {
		endDate = time.Now().Format("2006-01-02")
	}

	key := "daily:" + startDate + ":" + endDate
	if h.Cache != nil {
		if cached, found := h.Cache.Get(key); found {
			w.Header().Set("X-Cache", "HIT")
			shared.WriteJSON(w, cached, http.StatusOK)
			return
		}
	}

	usage, err := h.Storage.GetDailyUsage(startDate, endDate)
	if err != nil {
		types.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to get daily usage", err.Error())
		return
	}

	payload := map[string]any{
		"daily_usage": usage,
		"start_date":  startDate,
		"end_date":    endDate,
	}

	if h.Cache != nil {
		h.Cache.SetWithTTL(key, payload, 1, statsCacheTTL)
	}

	w.Header().Set("X-Cache", "MISS")
	shared.WriteJSON(w, payload, http.StatusOK)
}

// parseStatsFilter creates a StatsFilter from query parameters.
func parseStatsFilter(r *http.Request) storage.StatsFilter {
	filter := storage.StatsFilter{}

	if v := r.URL.Query().Get("model"); v != "" {
		filter.Model = v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.EndDate = &t
		}
	}

	return filter
}
