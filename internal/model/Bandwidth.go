package model

import (
	"time"
)

// BandwidthSample is one raw counter reading. Samples are append-only and
// never mutated by the rollup process. DeviceID is nil when the traffic
// could not be attributed to a known device.
type BandwidthSample struct {
	ID              int64     `db:"id"`
	DeviceID        *int64    `db:"device_id"`
	Timestamp       time.Time `db:"timestamp"`
	DownloadBytes   int64     `db:"download_bytes"`
	UploadBytes     int64     `db:"upload_bytes"`
	SessionDuration int32     `db:"session_duration"`
}

// Totals is a download/upload byte pair.
type Totals struct {
	Download int64 `json:"download"`
	Upload   int64 `json:"upload"`
}

// TrafficPoint is traffic bucketed by hour.
type TrafficPoint struct {
	Hour     time.Time `db:"hour"`
	Download int64     `db:"download"`
	Upload   int64     `db:"upload"`
}

// DailyPoint is traffic bucketed by date.
type DailyPoint struct {
	Date     time.Time `db:"date"`
	Download int64     `db:"download"`
	Upload   int64     `db:"upload"`
}
