package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"netbl/internal/model"
	"netbl/internal/netutil"
	"netbl/internal/service"

	"github.com/go-chi/chi/v5"
)

// Reports is the slice of the report service the handlers need.
type Reports interface {
	Summary(ctx context.Context) (*service.SummaryReport, error)
	DeviceList(ctx context.Context) ([]service.DeviceEntry, error)
	DeviceDetail(ctx context.Context, deviceID int64) (*service.DeviceDetailResult, error)
	UsageReport(ctx context.Context, period string) (*service.UsageReportResult, error)
	AcknowledgeAlert(ctx context.Context, id int64) error
}

// Rollups triggers recomputation on demand; the cadence is owned by an
// external cron-like caller.
type Rollups interface {
	RecomputeDaily(ctx context.Context, from, to time.Time) (*service.RollupResult, error)
	RecomputeMonthly(ctx context.Context, from, to model.YearMonth) (*service.RollupResult, error)
}

type APIHandler struct {
	reports Reports
	rollups Rollups
}

func NewAPIHandler(reports Reports, rollups Rollups) *APIHandler {
	return &APIHandler{reports: reports, rollups: rollups}
}

func (h *APIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *APIHandler) Devices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.reports.DeviceList(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (h *APIHandler) DeviceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid device id")
		return
	}

	detail, err := h.reports.DeviceDetail(r.Context(), id)
	if errors.Is(err, service.ErrDeviceNotFound) {
		writeMessage(w, http.StatusNotFound, "Device not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *APIHandler) UsageReport(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")

	report, err := h.reports.UsageReport(r.Context(), period)
	if errors.Is(err, service.ErrInvalidPeriod) {
		writeMessage(w, http.StatusBadRequest, "Invalid period. Use daily, weekly, or monthly")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *APIHandler) AckAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid alert id")
		return
	}

	err = h.reports.AcknowledgeAlert(r.Context(), id)
	if errors.Is(err, service.ErrAlertNotFound) {
		writeMessage(w, http.StatusNotFound, "Alert not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "acknowledged": true})
}

// RollupDaily recomputes daily_usage for the last N days (default 1,
// capped at 90). The window always includes today.
func (h *APIHandler) RollupDaily(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 1, 1, 90)

	now := time.Now().UTC()
	to := midnight(now).AddDate(0, 0, 1)
	from := midnight(now).AddDate(0, 0, -(days - 1))

	result, err := h.rollups.RecomputeDaily(r.Context(), from, to)
	if err != nil && result == nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err != nil {
		// partial failure: committed keys stay, failed keys are listed
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) RollupMonthly(w http.ResponseWriter, r *http.Request) {
	months := queryInt(r, "months", 1, 1, 24)

	now := time.Now().UTC()
	to := model.YearMonthOf(now)
	// step back from the first of the month so month-end days do not
	// skew the window
	from := model.YearMonthOf(to.Start().AddDate(0, -(months - 1), 0))

	result, err := h.rollups.RecomputeMonthly(r.Context(), from, to)
	if err != nil && result == nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) Ping(w http.ResponseWriter, r *http.Request) {
	host := chi.URLParam(r, "host")
	if host == "" {
		writeMessage(w, http.StatusBadRequest, "host is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	writeJSON(w, http.StatusOK, netutil.Ping(ctx, host))
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Printf("request failed: %v", err)
	writeMessage(w, status, err.Error())
}

func queryInt(r *http.Request, name string, def, min, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
