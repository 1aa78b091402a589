package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"netbl/internal/metrics"
	"netbl/internal/model"
	"netbl/internal/repository/postgres"
	"netbl/internal/repository/redis"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrAlertNotFound  = errors.New("alert not found")
	ErrInvalidPeriod  = errors.New("invalid period")
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Link capacity and quota constants surfaced on the summary. Byte rates.
const (
	maxDownloadRate = 50_000_000      // 50 Mbps
	maxUploadRate   = 10_000_000      // 10 Mbps
	monthlyLimit    = 500_000_000_000 // 500 GB
)

const (
	queryTimeout    = 5 * time.Second
	summaryCacheTTL = 30 * time.Second
	usageCacheTTL   = time.Minute
)

// RateSampler supplies the current bandwidth rate snapshot. The live
// sampler runs outside this package.
type RateSampler interface {
	Current() model.Totals
}

// ReportService assembles dashboard reports from rolled-up data, degrading
// to clearly-tagged synthetic data when the store is empty or unavailable.
type ReportService struct {
	postgresRepo postgres.PostgresRepo
	cache        redis.RedisRepo // nil when the cache is not configured
	sampler      RateSampler     // nil outside a running application
	values       ValueSource
}

func NewReportService(pgRepo postgres.PostgresRepo, cache redis.RedisRepo, sampler RateSampler, values ValueSource) *ReportService {
	if values == nil {
		values = NewRandomSource()
	}
	return &ReportService{
		postgresRepo: pgRepo,
		cache:        cache,
		sampler:      sampler,
		values:       values,
	}
}

/* --- Summary --- */

func (s *ReportService) Summary(ctx context.Context) (*SummaryReport, error) {
	metrics.SummaryCalls.Inc()

	timer := prometheus.NewTimer(metrics.SummaryHistogramm)
	defer timer.ObserveDuration()

	var cached SummaryReport
	if s.cacheGet(ctx, "summary", &cached) {
		return &cached, nil
	}

	now := time.Now().UTC()
	rep := &SummaryReport{}

	rep.CurrentUsage = s.currentUsage(ctx, now)
	rep.HistoricalData = s.hourlyBreakdown(ctx, now)
	rep.TopDevices = s.topDevices(ctx, now)

	alerts, err := s.unackedAlerts(ctx, 5)
	if err != nil {
		log.Printf("WARNING: failed to load alerts: %v", err)
		alerts = nil
	}
	rep.Alerts = toAlertViews(alerts)

	if !rep.synthetic() {
		s.cachePut(ctx, "summary", rep, summaryCacheTTL)
	}
	return rep, nil
}

func (s *ReportService) currentUsage(ctx context.Context, now time.Time) CurrentUsage {
	cu := CurrentUsage{
		MaxDownload:  maxDownloadRate,
		MaxUpload:    maxUploadRate,
		MonthlyLimit: monthlyLimit,
	}

	if s.sampler != nil {
		rate := s.sampler.Current()
		cu.Download = rate.Download
		cu.Upload = rate.Upload
	} else {
		cu.Download = s.values.Int63Between(1_000_000, 20_000_000)
		cu.Upload = s.values.Int63Between(500_000, 5_000_000)
		cu.Synthetic = true
	}

	daily, err := s.withTotals(ctx, func(qctx context.Context) (model.Totals, error) {
		return s.postgresRepo.DailyTotalOn(qctx, midnight(now))
	})
	if err != nil {
		log.Printf("WARNING: failed to load daily total, using synthetic value: %v", err)
		metrics.SyntheticFallbacks.Inc()
		cu.DailyTotal = s.values.Int63Between(1_000_000_000, 10_000_000_000)
		cu.Synthetic = true
	} else {
		cu.DailyTotal = daily.Download + daily.Upload
	}

	monthly, err := s.withTotals(ctx, func(qctx context.Context) (model.Totals, error) {
		return s.postgresRepo.MonthlyTotalFor(qctx, model.YearMonthOf(now))
	})
	if err != nil {
		log.Printf("WARNING: failed to load monthly total, using synthetic value: %v", err)
		metrics.SyntheticFallbacks.Inc()
		cu.MonthlyTotal = s.values.Int63Between(50_000_000_000, 200_000_000_000)
		cu.Synthetic = true
	} else {
		cu.MonthlyTotal = monthly.Download + monthly.Upload
	}

	return cu
}

func (s *ReportService) hourlyBreakdown(ctx context.Context, now time.Time) HistoricalData {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	points, err := s.postgresRepo.HourlyBreakdown(qctx, now.Add(-24*time.Hour))
	cancel()
	if err != nil {
		log.Printf("WARNING: failed to load hourly breakdown: %v", err)
		points = nil
	}

	if len(points) == 0 {
		metrics.SyntheticFallbacks.Inc()
		return HistoricalData{Hourly: s.syntheticHourly(now), Synthetic: true}
	}

	hourly := make([]TrafficPointView, 0, len(points))
	for _, p := range points {
		hourly = append(hourly, TrafficPointView{
			Time:     p.Hour.Format("15:04"),
			Download: p.Download,
			Upload:   p.Upload,
		})
	}
	return HistoricalData{Hourly: hourly}
}

func (s *ReportService) topDevices(ctx context.Context, now time.Time) TopDevices {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	top, err := s.postgresRepo.TopDevices(qctx, now.AddDate(0, 0, -7), 5)
	cancel()
	if err != nil {
		log.Printf("WARNING: failed to load top devices: %v", err)
		top = nil
	}

	if len(top) == 0 {
		metrics.SyntheticFallbacks.Inc()
		return TopDevices{Devices: s.syntheticTopDevices(), Synthetic: true}
	}

	devices := make([]TopDeviceView, 0, len(top))
	for _, d := range top {
		devices = append(devices, TopDeviceView{
			ID:    d.ID,
			Name:  d.Name,
			MAC:   d.MAC,
			IP:    d.IP,
			Type:  d.Type,
			Usage: d.Usage,
		})
	}
	return TopDevices{Devices: devices}
}

/* --- DeviceList --- */

func (s *ReportService) DeviceList(ctx context.Context) ([]DeviceEntry, error) {
	metrics.DeviceListCalls.Inc()

	timer := prometheus.NewTimer(metrics.DeviceListHistogramm)
	defer timer.ObserveDuration()

	now := time.Now().UTC()

	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	rows, err := s.postgresRepo.ListDevicesWithMonthlyUsage(qctx, model.YearMonthOf(now))
	cancel()
	if err != nil {
		log.Printf("WARNING: failed to load device list, using synthetic roster: %v", err)
		metrics.SyntheticFallbacks.Inc()
		return s.syntheticDeviceList(now), nil
	}

	entries := make([]DeviceEntry, 0, len(rows))
	for _, d := range rows {
		entries = append(entries, DeviceEntry{
			ID:            d.ID,
			Name:          d.Name,
			MAC:           d.MAC,
			IP:            d.IP,
			Type:          d.Type,
			FirstSeen:     d.FirstSeen,
			LastSeen:      d.LastSeen,
			MonthDownload: d.MonthDownload,
			MonthUpload:   d.MonthUpload,
		})
	}
	return entries, nil
}

/* --- DeviceDetail --- */

func (s *ReportService) DeviceDetail(ctx context.Context, deviceID int64) (*DeviceDetailResult, error) {
	metrics.DeviceDetailCalls.Inc()

	timer := prometheus.NewTimer(metrics.DeviceDetailHistogramm)
	defer timer.ObserveDuration()

	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	device, err := s.postgresRepo.FindDeviceByID(qctx, deviceID)
	cancel()
	if errors.Is(err, postgres.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load device %d: %w", deviceID, err)
	}

	now := time.Now().UTC()

	qctx, cancel = context.WithTimeout(ctx, queryTimeout)
	series, err := s.postgresRepo.DailySeries(qctx, deviceID, midnight(now).AddDate(0, 0, -30))
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to load usage for device %d: %w", deviceID, err)
	}

	qctx, cancel = context.WithTimeout(ctx, queryTimeout)
	alerts, err := s.postgresRepo.AlertsForDevice(qctx, deviceID, 10)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts for device %d: %w", deviceID, err)
	}

	usage := make([]DailyUsagePoint, 0, len(series))
	for _, du := range series {
		usage = append(usage, DailyUsagePoint{
			Date:     du.Date.Format("2006-01-02"),
			Download: du.TotalDownload,
			Upload:   du.TotalUpload,
			Total:    du.TotalDownload + du.TotalUpload,
		})
	}

	return &DeviceDetailResult{
		Device: DeviceEntry{
			ID:        device.ID,
			Name:      device.Name,
			MAC:       device.MAC,
			IP:        device.IP,
			Type:      device.Type,
			FirstSeen: device.FirstSeen,
			LastSeen:  device.LastSeen,
		},
		Usage:  usage,
		Alerts: toAlertViews(alerts),
	}, nil
}

/* --- UsageReport --- */

func (s *ReportService) UsageReport(ctx context.Context, period string) (*UsageReportResult, error) {
	metrics.UsageReportCalls.Inc()

	timer := prometheus.NewTimer(metrics.UsageReportHistogramm)
	defer timer.ObserveDuration()

	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	cacheKey := "usage:" + period
	var cached UsageReportResult
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	now := time.Now().UTC()
	var points []ReportPoint
	var err error

	switch period {
	case PeriodDaily:
		points, err = s.hourlyReport(ctx, now)
	case PeriodWeekly:
		points, err = s.dailyReport(ctx, midnight(now).AddDate(0, 0, -7), "Mon")
	case PeriodMonthly:
		points, err = s.dailyReport(ctx, midnight(now).AddDate(0, 0, -30), "02")
	}
	if err != nil {
		log.Printf("WARNING: failed to load %s usage report: %v", period, err)
		points = nil
	}

	result := &UsageReportResult{Period: period, Data: points}
	if len(points) == 0 {
		metrics.SyntheticFallbacks.Inc()
		result.Data = s.syntheticSeries(period, now)
		result.Synthetic = true
	}

	if !result.Synthetic {
		s.cachePut(ctx, cacheKey, result, usageCacheTTL)
	}
	return result, nil
}

func (s *ReportService) hourlyReport(ctx context.Context, now time.Time) ([]ReportPoint, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	raw, err := s.postgresRepo.HourlyBreakdown(qctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	points := make([]ReportPoint, 0, len(raw))
	for _, p := range raw {
		points = append(points, ReportPoint{
			Date:     p.Hour.Format("15:04"),
			Download: p.Download,
			Upload:   p.Upload,
			Total:    p.Download + p.Upload,
		})
	}
	return points, nil
}

func (s *ReportService) dailyReport(ctx context.Context, since time.Time, format string) ([]ReportPoint, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	raw, err := s.postgresRepo.DailyTotalsSince(qctx, since)
	if err != nil {
		return nil, err
	}

	points := make([]ReportPoint, 0, len(raw))
	for _, p := range raw {
		points = append(points, ReportPoint{
			Date:     p.Date.Format(format),
			Download: p.Download,
			Upload:   p.Upload,
			Total:    p.Download + p.Upload,
		})
	}
	return points, nil
}

/* --- alerts --- */

// AcknowledgeAlert is the only mutation alerts support.
func (s *ReportService) AcknowledgeAlert(ctx context.Context, id int64) error {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := s.postgresRepo.AcknowledgeAlert(qctx, id)
	if errors.Is(err, postgres.ErrNoRows) {
		return ErrAlertNotFound
	}
	return err
}

func (s *ReportService) unackedAlerts(ctx context.Context, limit int) ([]model.Alert, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.postgresRepo.UnacknowledgedAlerts(qctx, limit)
}

/* --- helpers --- */

func (s *ReportService) withTotals(ctx context.Context, query func(context.Context) (model.Totals, error)) (model.Totals, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return query(qctx)
}

func (s *ReportService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.FindReport(ctx, key, dest)
	if err != nil {
		log.Printf("WARNING: report cache read failed for %q: %v", key, err)
		return false
	}
	return found
}

func (s *ReportService) cachePut(ctx context.Context, key string, report any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveReport(ctx, key, report, ttl); err != nil {
		log.Printf("WARNING: report cache write failed for %q: %v", key, err)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
