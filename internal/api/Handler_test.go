package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"netbl/internal/model"
	"netbl/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReports lets each test plug in just the method it exercises.
type stubReports struct {
	summary     func(ctx context.Context) (*service.SummaryReport, error)
	deviceList  func(ctx context.Context) ([]service.DeviceEntry, error)
	detail      func(ctx context.Context, deviceID int64) (*service.DeviceDetailResult, error)
	usageReport func(ctx context.Context, period string) (*service.UsageReportResult, error)
	ackAlert    func(ctx context.Context, id int64) error
}

func (s *stubReports) Summary(ctx context.Context) (*service.SummaryReport, error) {
	return s.summary(ctx)
}

func (s *stubReports) DeviceList(ctx context.Context) ([]service.DeviceEntry, error) {
	return s.deviceList(ctx)
}

func (s *stubReports) DeviceDetail(ctx context.Context, deviceID int64) (*service.DeviceDetailResult, error) {
	return s.detail(ctx, deviceID)
}

func (s *stubReports) UsageReport(ctx context.Context, period string) (*service.UsageReportResult, error) {
	return s.usageReport(ctx, period)
}

func (s *stubReports) AcknowledgeAlert(ctx context.Context, id int64) error {
	return s.ackAlert(ctx, id)
}

type stubRollups struct {
	daily   func(ctx context.Context, from, to time.Time) (*service.RollupResult, error)
	monthly func(ctx context.Context, from, to model.YearMonth) (*service.RollupResult, error)
}

func (s *stubRollups) RecomputeDaily(ctx context.Context, from, to time.Time) (*service.RollupResult, error) {
	return s.daily(ctx, from, to)
}

func (s *stubRollups) RecomputeMonthly(ctx context.Context, from, to model.YearMonth) (*service.RollupResult, error) {
	return s.monthly(ctx, from, to)
}

func serve(t *testing.T, reports Reports, rollups Rollups, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := SetupRouter(NewAPIHandler(reports, rollups))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, &stubReports{}, &stubRollups{}, http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestSummary_OK(t *testing.T) {
	reports := &stubReports{
		summary: func(context.Context) (*service.SummaryReport, error) {
			return &service.SummaryReport{
				CurrentUsage: service.CurrentUsage{DailyTotal: 1234},
			}, nil
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodGet, "/api/stats/summary")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rep service.SummaryReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, int64(1234), rep.CurrentUsage.DailyTotal)
}

func TestDevices_BareArray(t *testing.T) {
	reports := &stubReports{
		deviceList: func(context.Context) ([]service.DeviceEntry, error) {
			return []service.DeviceEntry{
				{ID: 1, Name: "Gaming PC", Synthetic: true},
			}, nil
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodGet, "/api/devices")

	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []service.DeviceEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Synthetic)
}

func TestDeviceDetail_NotFound(t *testing.T) {
	reports := &stubReports{
		detail: func(context.Context, int64) (*service.DeviceDetailResult, error) {
			return nil, service.ErrDeviceNotFound
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodGet, "/api/devices/9999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Device not found"}`, rec.Body.String())
}

func TestDeviceDetail_BadID(t *testing.T) {
	rec := serve(t, &stubReports{}, &stubRollups{}, http.MethodGet, "/api/devices/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsageReport_InvalidPeriod(t *testing.T) {
	reports := &stubReports{
		usageReport: func(_ context.Context, period string) (*service.UsageReportResult, error) {
			return nil, service.ErrInvalidPeriod
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodGet, "/api/reports/usage/yearly")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid period. Use daily, weekly, or monthly"}`, rec.Body.String())
}

func TestAckAlert_NotFound(t *testing.T) {
	reports := &stubReports{
		ackAlert: func(context.Context, int64) error {
			return service.ErrAlertNotFound
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodPost, "/api/alerts/42/ack")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Alert not found"}`, rec.Body.String())
}

func TestAckAlert_OK(t *testing.T) {
	var got int64
	reports := &stubReports{
		ackAlert: func(_ context.Context, id int64) error {
			got = id
			return nil
		},
	}

	rec := serve(t, reports, &stubRollups{}, http.MethodPost, "/api/alerts/42/ack")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), got)
}

func TestRollupDaily_WindowAndDefault(t *testing.T) {
	var gotFrom, gotTo time.Time
	rollups := &stubRollups{
		daily: func(_ context.Context, from, to time.Time) (*service.RollupResult, error) {
			gotFrom, gotTo = from, to
			return &service.RollupResult{RunID: uuid.New(), Upserts: 2}, nil
		},
	}

	rec := serve(t, &stubReports{}, rollups, http.MethodPost, "/api/rollup/daily")

	assert.Equal(t, http.StatusOK, rec.Code)
	// default window is exactly today
	assert.Equal(t, 24*time.Hour, gotTo.Sub(gotFrom))

	var result service.RollupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Upserts)
}

func TestRollupDaily_DaysCapped(t *testing.T) {
	var gotFrom, gotTo time.Time
	rollups := &stubRollups{
		daily: func(_ context.Context, from, to time.Time) (*service.RollupResult, error) {
			gotFrom, gotTo = from, to
			return &service.RollupResult{RunID: uuid.New()}, nil
		},
	}

	rec := serve(t, &stubReports{}, rollups, http.MethodPost, "/api/rollup/daily?days=500")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 90*24*time.Hour, gotTo.Sub(gotFrom))
}

func TestRollupDaily_PartialFailureCarriesResult(t *testing.T) {
	rollups := &stubRollups{
		daily: func(context.Context, time.Time, time.Time) (*service.RollupResult, error) {
			return &service.RollupResult{
				RunID:   uuid.New(),
				Upserts: 1,
				Failed:  []service.FailedKey{{Key: "2026-08-29/2", Reason: "deadlock detected"}},
			}, errors.New("daily rollup: 1 of 2 keys failed")
		},
	}

	rec := serve(t, &stubReports{}, rollups, http.MethodPost, "/api/rollup/daily")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var result service.RollupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Upserts)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "2026-08-29/2", result.Failed[0].Key)
}

func TestRollupMonthly_Window(t *testing.T) {
	var gotFrom, gotTo model.YearMonth
	rollups := &stubRollups{
		monthly: func(_ context.Context, from, to model.YearMonth) (*service.RollupResult, error) {
			gotFrom, gotTo = from, to
			return &service.RollupResult{RunID: uuid.New()}, nil
		},
	}

	rec := serve(t, &stubReports{}, rollups, http.MethodPost, "/api/rollup/monthly?months=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.YearMonthOf(time.Now().UTC()), gotTo)
	assert.Equal(t, gotTo, gotFrom.Next().Next())
}
