package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/vietculture/vnlunar-calendar/internal/config"
	"github.com/vietculture/vnlunar-calendar/internal/database"
	"github.com/vietculture/vnlunar-calendar/vnlunar"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *Metrics
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger, metrics *Metrics) *Handlers {
	return &Handlers{
		db:       db,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Cache database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{"status": "healthy"})
}

// dateQuery is the common year/month/day/tz query shape shared by every
// conversion endpoint.
type dateQuery struct {
	Year  int     `validate:"required"`
	Month int     `validate:"required,min=1,max=12"`
	Day   int     `validate:"required,min=1,max=31"`
	TZ    float64 `validate:"min=-12,max=14"`
}

func (h *Handlers) parseDateQuery(r *http.Request) (dateQuery, error) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return dateQuery{}, fmt.Errorf("year must be an integer")
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return dateQuery{}, fmt.Errorf("month must be an integer")
	}
	day, err := strconv.Atoi(q.Get("day"))
	if err != nil {
		return dateQuery{}, fmt.Errorf("day must be an integer")
	}

	tz := h.cfg.DefaultTZ
	if raw := q.Get("tz"); raw != "" {
		tz, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return dateQuery{}, fmt.Errorf("tz must be a number")
		}
	}

	dq := dateQuery{Year: year, Month: month, Day: day, TZ: tz}
	if err := h.validate.Struct(dq); err != nil {
		return dateQuery{}, err
	}
	return dq, nil
}

// SolarToLunar handles GET /api/v1/solar-to-lunar?year=&month=&day=&tz=
func (h *Handlers) SolarToLunar(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDateQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	// The persisted year table is consulted purely to record cache
	// coverage for the /metrics endpoint; the conversion itself always
	// runs through the in-memory engine, which has its own LRU cache
	// (spec §4.8) and is the sole source of truth for correctness.
	if _, err := h.lookupYearTable(r.Context(), q.Year, q.TZ); err != nil {
		h.logger.Warn("year table lookup failed", slog.Any("error", err))
	}

	solar, err := vnlunar.NewSolarDate(q.Year, q.Month, q.Day)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	lunar, err := solar.ToLunar(q.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":       lunar.Year,
		"month":      lunar.Month,
		"day":        lunar.Day,
		"is_leap":    lunar.IsLeap,
		"year_name":  lunar.YearName(),
		"month_name": lunar.MonthName(),
		"display":    lunar.String(),
	})
}

// LunarToSolar handles GET /api/v1/lunar-to-solar?year=&month=&day=&leap=&tz=
func (h *Handlers) LunarToSolar(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDateQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	isLeap := r.URL.Query().Get("leap") == "true"

	lunar, err := vnlunar.NewLunarDate(q.Year, q.Month, q.Day, isLeap, q.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	solar, err := lunar.ToSolar(q.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":    solar.Year,
		"month":   solar.Month,
		"day":     solar.Day,
		"display": solar.String(),
	})
}

// SolarTerm handles GET /api/v1/solar-term?year=&month=&day=&tz=
func (h *Handlers) SolarTerm(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDateQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	solar, err := vnlunar.NewSolarDate(q.Year, q.Month, q.Day)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{
		"term": solar.SolarTerm(q.TZ),
	})
}

// LuckyHours handles GET /api/v1/lucky-hours?year=&month=&day=&tz=
func (h *Handlers) LuckyHours(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDateQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	solar, err := vnlunar.NewSolarDate(q.Year, q.Month, q.Day)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	lunar := vnlunar.FromSolar(solar, q.TZ)

	hours, err := lunar.LuckyHours(q.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"hours": hours})
}

// CanChi handles GET /api/v1/can-chi?year=&month=&day=&tz=
func (h *Handlers) CanChi(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDateQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	solar, err := vnlunar.NewSolarDate(q.Year, q.Month, q.Day)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	lunar := vnlunar.FromSolar(solar, q.TZ)

	dayName, err := lunar.DayName(q.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{
		"year_name":  lunar.YearName(),
		"month_name": lunar.MonthName(),
		"day_name":   dayName,
	})
}

func (h *Handlers) writeConversionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vnlunar.ErrInvalidDate):
		WriteBadRequest(w, err.Error())
	case errors.Is(err, vnlunar.ErrDateNotExist):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), "DATE_NOT_EXIST")
	case errors.Is(err, vnlunar.ErrOutOfRange):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), "OUT_OF_RANGE")
	case errors.Is(err, vnlunar.ErrUnknownTermName):
		WriteNotFound(w, err.Error())
	default:
		h.logger.Error("conversion failed", slog.Any("error", err))
		WriteInternalError(w, "Conversion failed")
	}
}

// SolarTermSearch handles GET /api/v1/solar-term/search?name=
// It resolves a user-supplied term name, tolerant of missing tone marks
// and case, to its canonical index and spelling.
func (h *Handlers) SolarTermSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteBadRequest(w, "name query parameter is required")
		return
	}

	idx, err := vnlunar.SolarTermIndexByName(name)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"index": idx,
		"name":  vnlunar.SolarTermName(idx),
		"major": idx%2 == 0,
	})
}

// warmCacheRequest is the admin request body for POST /api/v1/admin/cache/warm.
type warmCacheRequest struct {
	Year int     `json:"year" validate:"required"`
	TZ   float64 `json:"tz" validate:"min=-12,max=14"`
}

// WarmCache handles POST /api/v1/admin/cache/warm. It computes the year's
// lunar month table via the in-memory engine and persists it. Conversions
// never read the stored table back; later requests for that (year, tz) are
// only counted as cache hits on the /metrics endpoint.
func (h *Handlers) WarmCache(w http.ResponseWriter, r *http.Request) {
	var req warmCacheRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.TZ == 0 {
		req.TZ = h.cfg.DefaultTZ
	}
	if err := h.validate.Struct(req); err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	table, err := buildYearTable(req.Year, req.TZ)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	ctx := r.Context()
	if err := h.db.UpsertYearTable(ctx, table); err != nil {
		h.logger.Error("failed to persist year table", slog.Any("error", err))
		WriteInternalError(w, "Failed to warm cache")
		return
	}

	WriteSuccess(w, table)
}

// buildYearTable walks every day of the Gregorian year through the public
// conversion API, recording the day number each lunar month starts on and
// whether any of them is the intercalary month. It is the admin-only
// equivalent of `calendargen warm` for a single year.
func buildYearTable(year int, tz float64) (*database.YearTable, error) {
	start, err := vnlunar.NewSolarDate(year, 1, 1)
	if err != nil {
		return nil, err
	}
	end, err := vnlunar.NewSolarDate(year, 12, 31)
	if err != nil {
		return nil, err
	}

	var monthStarts []int64
	var month11Anchor int64
	leapOffset := 0

	for jdn := start.JDN(); jdn <= end.JDN(); jdn++ {
		d := vnlunar.SolarDateFromJDN(jdn)
		lunar, err := d.ToLunar(tz)
		if err != nil {
			return nil, err
		}
		if lunar.Day != 1 {
			continue
		}
		monthStarts = append(monthStarts, jdn)
		if lunar.Month == 11 && !lunar.IsLeap && month11Anchor == 0 {
			month11Anchor = jdn
		}
		if lunar.IsLeap {
			leapOffset = len(monthStarts)
		}
	}

	return &database.YearTable{
		GregorianYear:    year,
		TZ:               tz,
		Month11AnchorJDN: month11Anchor,
		LeapMonthOffset:  leapOffset,
		MonthStartJDNs:   monthStarts,
	}, nil
}

func (h *Handlers) lookupYearTable(ctx context.Context, year int, tz float64) (*database.YearTable, error) {
	table, err := h.db.GetYearTable(ctx, year, tz)
	if err == nil {
		h.metrics.RecordCacheOutcome(true)
		return table, nil
	}
	if !database.IsNotFound(err) {
		return nil, err
	}
	h.metrics.RecordCacheOutcome(false)
	return nil, nil
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
