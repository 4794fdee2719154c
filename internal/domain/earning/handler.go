package earning

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sawari/sawari-admin-api/internal/pkg/response"
)

const statsCacheKey = "earnings:stats"

// Handler handles earnings and revenue endpoints
type Handler struct {
	repo     *Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewHandler creates earnings handler. The cache client may be nil, in which
// case stats are computed on every request.
func NewHandler(repo *Repository, cache *redis.Client, cacheTTL time.Duration) *Handler {
	return &Handler{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// Routes mounts the earnings endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Get("/stats", h.GetStats)
	r.Get("/drivers", h.DriverTotals)
	r.Get("/drivers/{driverID}", h.ListByDriver)

	return r
}

// List handles GET /earnings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	from, to := parsePeriod(r)

	earnings, total, err := h.repo.List(r.Context(), from, to, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, earnings, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}

// GetStats handles GET /earnings/stats. Results are cached in Redis because
// the dashboard polls this endpoint.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if stats := h.cachedStats(r.Context()); stats != nil {
		response.OK(w, stats)
		return
	}

	stats, err := h.repo.GetStats(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	h.storeStats(r.Context(), stats)
	response.OK(w, stats)
}

// DriverTotals handles GET /earnings/drivers
func (h *Handler) DriverTotals(w http.ResponseWriter, r *http.Request) {
	from, to := parsePeriod(r)

	totals, err := h.repo.DriverTotals(r.Context(), from, to)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, totals)
}

// ListByDriver handles GET /earnings/drivers/{driverID}
func (h *Handler) ListByDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := uuid.Parse(chi.URLParam(r, "driverID"))
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	page, limit := parsePagination(r)
	from, to := parsePeriod(r)

	earnings, err := h.repo.ListByDriver(r.Context(), driverID, from, to, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, earnings)
}

func (h *Handler) cachedStats(ctx context.Context) *Stats {
	if h.cache == nil {
		return nil
	}

	raw, err := h.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (h *Handler) storeStats(ctx context.Context, stats *Stats) {
	if h.cache == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, statsCacheKey, raw, h.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to cache earnings stats")
	}
}

// parsePeriod reads from/to query params (YYYY-MM-DD), defaulting to the last
// 30 days.
func parsePeriod(r *http.Request) (from, to time.Time) {
	now := time.Now()
	from = now.AddDate(0, 0, -30)
	to = now

	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1)
		}
	}
	return from, to
}

func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
