//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"netbl/internal/model"
	"netbl/internal/repository/postgres"
	"netbl/testhelper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(name, mac string, seen time.Time) *model.Device {
	return &model.Device{
		Name:      name,
		MAC:       mac,
		IP:        "192.168.1.100",
		Type:      "computer",
		FirstSeen: seen,
		LastSeen:  seen,
	}
}

func TestUpsertDevice_Idempotence(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)
	ctx := context.Background()

	seen := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	d := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", seen)
	require.NoError(t, tp.Repo.UpsertDevice(ctx, d))
	require.NotZero(t, d.ID)

	firstID := d.ID
	firstSeen := d.FirstSeen

	// same MAC again with a newer sighting and a new address
	again := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", seen.Add(time.Hour))
	again.IP = "192.168.1.101"
	require.NoError(t, tp.Repo.UpsertDevice(ctx, again))

	assert.Equal(t, firstID, again.ID, "same MAC must keep the same id")
	assert.True(t, firstSeen.Equal(again.FirstSeen), "first_seen must survive re-upserts")

	loaded, err := tp.Repo.FindDeviceByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.101", loaded.IP)
	assert.True(t, loaded.LastSeen.After(firstSeen))
}

func TestFindDeviceByID_NotFound(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)

	_, err := tp.Repo.FindDeviceByID(context.Background(), 424242)
	assert.ErrorIs(t, err, postgres.ErrNoRows)
}

func insertSample(t *testing.T, repo postgres.PostgresRepo, deviceID *int64, ts time.Time, down, up int64) {
	t.Helper()
	require.NoError(t, repo.InsertSample(context.Background(), &model.BandwidthSample{
		DeviceID:      deviceID,
		Timestamp:     ts,
		DownloadBytes: down,
		UploadBytes:   up,
	}))
}

func TestDailyRollupFlow(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)
	ctx := context.Background()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	pc := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", day)
	tv := newDevice("Smart TV", "11:2A:3B:4C:5D:6E", day)
	require.NoError(t, tp.Repo.UpsertDevice(ctx, pc))
	require.NoError(t, tp.Repo.UpsertDevice(ctx, tv))

	insertSample(t, tp.Repo, &pc.ID, day.Add(9*time.Hour), 1_000, 100)
	insertSample(t, tp.Repo, &pc.ID, day.Add(15*time.Hour), 2_000, 200)
	insertSample(t, tp.Repo, &tv.ID, day.Add(20*time.Hour), 5_000, 500)
	// whole-network sample with no attributed device
	insertSample(t, tp.Repo, nil, day.Add(12*time.Hour), 9_000, 900)

	rows, err := tp.Repo.AggregateDaily(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, rows, 2, "unattributed samples stay out of per-device rollups")

	for _, du := range rows {
		require.NoError(t, tp.Repo.UpsertDailyUsage(ctx, du))
	}

	// a rerun over the same window must not double-count
	for _, du := range rows {
		require.NoError(t, tp.Repo.UpsertDailyUsage(ctx, du))
	}

	total, err := tp.Repo.DailyTotalOn(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(8_000), total.Download)
	assert.Equal(t, int64(800), total.Upload)

	// day-boundary reads go by the argument's wall-clock date, not the
	// session timezone
	offset := time.FixedZone("UTC+3", 3*60*60)
	total, err = tp.Repo.DailyTotalOn(ctx, time.Date(2026, 8, 28, 23, 30, 0, 0, offset))
	require.NoError(t, err)
	assert.Equal(t, int64(8_000), total.Download)

	series, err := tp.Repo.DailySeries(ctx, pc.ID, day.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, int64(3_000), series[0].TotalDownload)

	// network totals do include the unattributed sample
	network, err := tp.Repo.NetworkTotals(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(17_000), network.Download)
	assert.Equal(t, int64(1_700), network.Upload)
}

func TestMonthlyRollupFromDaily(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)
	ctx := context.Background()

	pc := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", time.Now().UTC())
	require.NoError(t, tp.Repo.UpsertDevice(ctx, pc))

	july := model.YearMonth{Year: 2026, Month: time.July}
	august := model.YearMonth{Year: 2026, Month: time.August}

	for _, du := range []model.DailyUsage{
		{Date: time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), DeviceID: pc.ID, TotalDownload: 100, TotalUpload: 10},
		{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), DeviceID: pc.ID, TotalDownload: 200, TotalUpload: 20},
		{Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), DeviceID: pc.ID, TotalDownload: 300, TotalUpload: 30},
	} {
		require.NoError(t, tp.Repo.UpsertDailyUsage(ctx, du))
	}

	rows, err := tp.Repo.AggregateMonthly(ctx, july, august)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, mu := range rows {
		require.NoError(t, tp.Repo.UpsertMonthlyUsage(ctx, mu))
	}
	// rerun converges
	for _, mu := range rows {
		require.NoError(t, tp.Repo.UpsertMonthlyUsage(ctx, mu))
	}

	julyTotal, err := tp.Repo.MonthlyTotalFor(ctx, july)
	require.NoError(t, err)
	assert.Equal(t, int64(100), julyTotal.Download)

	augustTotal, err := tp.Repo.MonthlyTotalFor(ctx, august)
	require.NoError(t, err)
	assert.Equal(t, int64(500), augustTotal.Download)
	assert.Equal(t, int64(50), augustTotal.Upload)

	// absent month reads as zero
	june, err := tp.Repo.MonthlyTotalFor(ctx, model.YearMonth{Year: 2026, Month: time.June})
	require.NoError(t, err)
	assert.Zero(t, june.Download)
	assert.Zero(t, june.Upload)

	devices, err := tp.Repo.ListDevicesWithMonthlyUsage(ctx, august)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, int64(500), devices[0].MonthDownload)

	// a month with no rollup rows keeps the device, zero-filled
	devices, err = tp.Repo.ListDevicesWithMonthlyUsage(ctx, model.YearMonth{Year: 2026, Month: time.June})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Zero(t, devices[0].MonthDownload)
}

func TestTopDevicesAndHourlyBreakdown(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Hour)

	pc := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", now)
	phone := newDevice("iPhone", "22:3A:4B:5C:6D:7E", now)
	require.NoError(t, tp.Repo.UpsertDevice(ctx, pc))
	require.NoError(t, tp.Repo.UpsertDevice(ctx, phone))

	insertSample(t, tp.Repo, &pc.ID, now.Add(-2*time.Hour), 1_000, 100)
	insertSample(t, tp.Repo, &phone.ID, now.Add(-time.Hour), 10_000, 1_000)

	top, err := tp.Repo.TopDevices(ctx, now.AddDate(0, 0, -7), 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "iPhone", top[0].Name, "ordered by usage, busiest first")
	assert.Equal(t, int64(11_000), top[0].Usage)

	points, err := tp.Repo.HourlyBreakdown(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(1_000), points[0].Download)
	assert.Equal(t, int64(10_000), points[1].Download)
}

func TestAlerts(t *testing.T) {
	tp := testhelper.SetupTestPostgres(t)
	ctx := context.Background()

	pc := newDevice("Gaming PC", "00:1A:2B:3C:4D:5E", time.Now().UTC())
	require.NoError(t, tp.Repo.UpsertDevice(ctx, pc))

	a := &model.Alert{
		Timestamp: time.Now().UTC(),
		Type:      "usage",
		Severity:  "warning",
		Message:   "Monthly usage at 75% of limit",
		DeviceID:  &pc.ID,
	}
	require.NoError(t, tp.Repo.InsertAlert(ctx, a))
	require.NotZero(t, a.ID)

	unacked, err := tp.Repo.UnacknowledgedAlerts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, unacked, 1)
	assert.Equal(t, "warning", unacked[0].Severity)

	forDevice, err := tp.Repo.AlertsForDevice(ctx, pc.ID, 10)
	require.NoError(t, err)
	require.Len(t, forDevice, 1)

	require.NoError(t, tp.Repo.AcknowledgeAlert(ctx, a.ID))

	unacked, err = tp.Repo.UnacknowledgedAlerts(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, unacked)

	assert.ErrorIs(t, tp.Repo.AcknowledgeAlert(ctx, 424242), postgres.ErrNoRows)
}
