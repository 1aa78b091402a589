package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"netbl/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows is returned by single-row lookups when nothing matched.
var ErrNoRows = pgx.ErrNoRows

type PostgresRepo interface {
	/* devices */
	UpsertDevice(ctx context.Context, d *model.Device) error
	FindDeviceByID(ctx context.Context, id int64) (*model.Device, error)
	ListDevicesWithMonthlyUsage(ctx context.Context, ym model.YearMonth) ([]model.DeviceMonthlyUsage, error)

	/* raw samples */
	InsertSample(ctx context.Context, s *model.BandwidthSample) error
	HourlyBreakdown(ctx context.Context, since time.Time) ([]model.TrafficPoint, error)
	TopDevices(ctx context.Context, since time.Time, limit int) ([]model.DeviceTraffic, error)

	/* rollup aggregation */
	AggregateDaily(ctx context.Context, from, to time.Time) ([]model.DailyUsage, error)
	UpsertDailyUsage(ctx context.Context, du model.DailyUsage) error
	AggregateMonthly(ctx context.Context, from, to model.YearMonth) ([]model.MonthlyUsage, error)
	UpsertMonthlyUsage(ctx context.Context, mu model.MonthlyUsage) error
	NetworkTotals(ctx context.Context, from, to time.Time) (model.Totals, error)

	/* rolled-up reads */
	DailyTotalOn(ctx context.Context, date time.Time) (model.Totals, error)
	MonthlyTotalFor(ctx context.Context, ym model.YearMonth) (model.Totals, error)
	DailySeries(ctx context.Context, deviceID int64, since time.Time) ([]model.DailyUsage, error)
	DailyTotalsSince(ctx context.Context, since time.Time) ([]model.DailyPoint, error)

	/* alerts */
	InsertAlert(ctx context.Context, a *model.Alert) error
	UnacknowledgedAlerts(ctx context.Context, limit int) ([]model.Alert, error)
	AlertsForDevice(ctx context.Context, deviceID int64, limit int) ([]model.Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64) error
}

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) PostgresRepo {
	return &PostgresRepository{pool: pool}
}

// IsUniqueViolation reports whether err is a unique-constraint failure.
// Upserts never hit this path; a raw-sample insert that does is rejected.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* --- work with devices table --- */

// UpsertDevice inserts the device or, when the MAC is already known,
// refreshes its address, type and last_seen. The generated id and original
// first_seen are written back into d.
func (r *PostgresRepository) UpsertDevice(ctx context.Context, d *model.Device) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO devices (name, mac_address, ip_address, device_type, first_seen, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (mac_address) DO UPDATE SET
			name = EXCLUDED.name,
			ip_address = EXCLUDED.ip_address,
			device_type = EXCLUDED.device_type,
			last_seen = EXCLUDED.last_seen
		RETURNING id, first_seen`,
		d.Name,
		d.MAC,
		d.IP,
		d.Type,
		d.FirstSeen,
		d.LastSeen,
	).Scan(&d.ID, &d.FirstSeen)
	if err != nil {
		return fmt.Errorf("failed to upsert device %s: %w", d.MAC, err)
	}
	return nil
}

func (r *PostgresRepository) FindDeviceByID(ctx context.Context, id int64) (*model.Device, error) {
	var d model.Device
	err := r.pool.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), mac_address, COALESCE(ip_address, ''),
			COALESCE(device_type, ''), first_seen, last_seen
		FROM devices
		WHERE id = $1`,
		id).Scan(
		&d.ID,
		&d.Name,
		&d.MAC,
		&d.IP,
		&d.Type,
		&d.FirstSeen,
		&d.LastSeen,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDevicesWithMonthlyUsage returns every device left-joined with its
// rollup totals for the given month. Devices without a rollup row are kept
// with zero totals, not omitted.
func (r *PostgresRepository) ListDevicesWithMonthlyUsage(ctx context.Context, ym model.YearMonth) ([]model.DeviceMonthlyUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
			d.id, COALESCE(d.name, ''), d.mac_address, COALESCE(d.ip_address, ''),
			COALESCE(d.device_type, ''), d.first_seen, d.last_seen,
			COALESCE(SUM(m.total_download), 0) AS month_download,
			COALESCE(SUM(m.total_upload), 0) AS month_upload
		FROM devices d
		LEFT JOIN monthly_usage m ON d.id = m.device_id
			AND m.year = $1 AND m.month = $2
		GROUP BY d.id
		ORDER BY d.name`,
		ym.Year, int(ym.Month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []model.DeviceMonthlyUsage
	for rows.Next() {
		var du model.DeviceMonthlyUsage
		err := rows.Scan(
			&du.ID,
			&du.Name,
			&du.MAC,
			&du.IP,
			&du.Type,
			&du.FirstSeen,
			&du.LastSeen,
			&du.MonthDownload,
			&du.MonthUpload,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		devices = append(devices, du)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return devices, nil
}

/* --- work with bandwidth_data table --- */

func (r *PostgresRepository) InsertSample(ctx context.Context, s *model.BandwidthSample) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bandwidth_data (device_id, timestamp, download_bytes, upload_bytes, session_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.DeviceID,
		s.Timestamp,
		s.DownloadBytes,
		s.UploadBytes,
		s.SessionDuration,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to insert bandwidth sample: %w", err)
	}
	return nil
}

func (r *PostgresRepository) HourlyBreakdown(ctx context.Context, since time.Time) ([]model.TrafficPoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
			date_trunc('hour', timestamp) AS hour,
			SUM(download_bytes) AS download,
			SUM(upload_bytes) AS upload
		FROM bandwidth_data
		WHERE timestamp > $1
		GROUP BY hour
		ORDER BY hour`,
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.TrafficPoint
	for rows.Next() {
		var p model.TrafficPoint
		if err := rows.Scan(&p.Hour, &p.Download, &p.Upload); err != nil {
			return nil, fmt.Errorf("failed to scan hourly row: %w", err)
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return points, nil
}

func (r *PostgresRepository) TopDevices(ctx context.Context, since time.Time, limit int) ([]model.DeviceTraffic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
			d.id, COALESCE(d.name, ''), d.mac_address, COALESCE(d.ip_address, ''),
			COALESCE(d.device_type, ''),
			SUM(bd.download_bytes) + SUM(bd.upload_bytes) AS total_usage
		FROM devices d
		JOIN bandwidth_data bd ON d.id = bd.device_id
		WHERE bd.timestamp > $1
		GROUP BY d.id
		ORDER BY total_usage DESC
		LIMIT $2`,
		since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []model.DeviceTraffic
	for rows.Next() {
		var dt model.DeviceTraffic
		err := rows.Scan(&dt.ID, &dt.Name, &dt.MAC, &dt.IP, &dt.Type, &dt.Usage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top device row: %w", err)
		}
		devices = append(devices, dt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return devices, nil
}

/* --- rollup aggregation --- */

// AggregateDaily computes per-(date, device) sample sums for [from, to).
// Read-only over bandwidth_data; unattributed samples are excluded.
func (r *PostgresRepository) AggregateDaily(ctx context.Context, from, to time.Time) ([]model.DailyUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
			DATE(timestamp) AS date,
			device_id,
			SUM(download_bytes) AS total_download,
			SUM(upload_bytes) AS total_upload
		FROM bandwidth_data
		WHERE device_id IS NOT NULL
			AND timestamp >= $1 AND timestamp < $2
		GROUP BY DATE(timestamp), device_id
		ORDER BY date, device_id`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []model.DailyUsage
	for rows.Next() {
		var du model.DailyUsage
		err := rows.Scan(&du.Date, &du.DeviceID, &du.TotalDownload, &du.TotalUpload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily aggregate row: %w", err)
		}
		usage = append(usage, du)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return usage, nil
}

// UpsertDailyUsage replaces the totals for one (date, device) key in a
// single atomic statement. Reruns converge instead of accumulating.
func (r *PostgresRepository) UpsertDailyUsage(ctx context.Context, du model.DailyUsage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO daily_usage (date, device_id, total_download, total_upload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date, device_id) DO UPDATE SET
			total_download = EXCLUDED.total_download,
			total_upload = EXCLUDED.total_upload`,
		du.Date,
		du.DeviceID,
		du.TotalDownload,
		du.TotalUpload,
	)
	return err
}

// AggregateMonthly computes per-(year, month, device) sums over daily_usage
// for months in [from, to].
func (r *PostgresRepository) AggregateMonthly(ctx context.Context, from, to model.YearMonth) ([]model.MonthlyUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
			EXTRACT(YEAR FROM date)::int AS year,
			EXTRACT(MONTH FROM date)::int AS month,
			device_id,
			SUM(total_download) AS total_download,
			SUM(total_upload) AS total_upload
		FROM daily_usage
		WHERE date >= $1::date AND date < $2::date
		GROUP BY 1, 2, device_id
		ORDER BY year, month, device_id`,
		from.Start(), to.Next().Start())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []model.MonthlyUsage
	for rows.Next() {
		var mu model.MonthlyUsage
		var month int
		err := rows.Scan(&mu.Year, &month, &mu.DeviceID, &mu.TotalDownload, &mu.TotalUpload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly aggregate row: %w", err)
		}
		mu.Month = time.Month(month)
		usage = append(usage, mu)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return usage, nil
}

func (r *PostgresRepository) UpsertMonthlyUsage(ctx context.Context, mu model.MonthlyUsage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO monthly_usage (year, month, device_id, total_download, total_upload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month, device_id) DO UPDATE SET
			total_download = EXCLUDED.total_download,
			total_upload = EXCLUDED.total_upload`,
		mu.Year,
		int(mu.Month),
		mu.DeviceID,
		mu.TotalDownload,
		mu.TotalUpload,
	)
	return err
}

// NetworkTotals sums every sample in [from, to), including unattributed
// rows that per-device rollups exclude.
func (r *PostgresRepository) NetworkTotals(ctx context.Context, from, to time.Time) (model.Totals, error) {
	var t model.Totals
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(download_bytes), 0), COALESCE(SUM(upload_bytes), 0)
		FROM bandwidth_data
		WHERE timestamp >= $1 AND timestamp < $2`,
		from, to).Scan(&t.Download, &t.Upload)
	return t, err
}

/* --- rolled-up reads --- */

func (r *PostgresRepository) DailyTotalOn(ctx context.Context, date time.Time) (model.Totals, error) {
	var t model.Totals
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_download), 0), COALESCE(SUM(total_upload), 0)
		FROM daily_usage
		WHERE date = $1::date`,
		date).Scan(&t.Download, &t.Upload)
	return t, err
}

func (r *PostgresRepository) MonthlyTotalFor(ctx context.Context, ym model.YearMonth) (model.Totals, error) {
	var t model.Totals
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_download), 0), COALESCE(SUM(total_upload), 0)
		FROM monthly_usage
		WHERE year = $1 AND month = $2`,
		ym.Year, int(ym.Month)).Scan(&t.Download, &t.Upload)
	return t, err
}

func (r *PostgresRepository) DailySeries(ctx context.Context, deviceID int64, since time.Time) ([]model.DailyUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date, device_id, total_download, total_upload
		FROM daily_usage
		WHERE device_id = $1 AND date >= $2::date
		ORDER BY date`,
		deviceID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []model.DailyUsage
	for rows.Next() {
		var du model.DailyUsage
		err := rows.Scan(&du.Date, &du.DeviceID, &du.TotalDownload, &du.TotalUpload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily usage row: %w", err)
		}
		series = append(series, du)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return series, nil
}

func (r *PostgresRepository) DailyTotalsSince(ctx context.Context, since time.Time) ([]model.DailyPoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date, SUM(total_download) AS download, SUM(total_upload) AS upload
		FROM daily_usage
		WHERE date >= $1::date
		GROUP BY date
		ORDER BY date`,
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.DailyPoint
	for rows.Next() {
		var p model.DailyPoint
		if err := rows.Scan(&p.Date, &p.Download, &p.Upload); err != nil {
			return nil, fmt.Errorf("failed to scan daily totals row: %w", err)
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return points, nil
}

/* --- work with alerts table --- */

// InsertAlert records an alert raised by an external threshold check.
func (r *PostgresRepository) InsertAlert(ctx context.Context, a *model.Alert) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO alerts (timestamp, alert_type, severity, message, device_id, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		a.Timestamp,
		a.Type,
		a.Severity,
		a.Message,
		a.DeviceID,
		a.Acknowledged,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UnacknowledgedAlerts(ctx context.Context, limit int) ([]model.Alert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, timestamp, alert_type, severity, message, device_id, acknowledged
		FROM alerts
		WHERE acknowledged = FALSE
		ORDER BY timestamp DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *PostgresRepository) AlertsForDevice(ctx context.Context, deviceID int64, limit int) ([]model.Alert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, timestamp, alert_type, severity, message, device_id, acknowledged
		FROM alerts
		WHERE device_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`,
		deviceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *PostgresRepository) AcknowledgeAlert(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE alerts SET acknowledged = TRUE WHERE id = $1`,
		id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func scanAlerts(rows pgx.Rows) ([]model.Alert, error) {
	var alerts []model.Alert
	for rows.Next() {
		var a model.Alert
		err := rows.Scan(
			&a.ID,
			&a.Timestamp,
			&a.Type,
			&a.Severity,
			&a.Message,
			&a.DeviceID,
			&a.Acknowledged,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return alerts, nil
}
