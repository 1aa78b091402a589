package model

import (
	"time"
)

type Device struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	MAC       string    `db:"mac_address" json:"mac"`
	IP        string    `db:"ip_address" json:"ip"`
	Type      string    `db:"device_type" json:"type"`
	FirstSeen time.Time `db:"first_seen" json:"first_seen"`
	LastSeen  time.Time `db:"last_seen" json:"last_seen"`
}

// DeviceMonthlyUsage is a device row joined with its rollup totals for one
// month. A device without a rollup row carries zero totals.
type DeviceMonthlyUsage struct {
	Device
	MonthDownload int64 `db:"month_download" json:"month_download"`
	MonthUpload   int64 `db:"month_upload" json:"month_upload"`
}

// DeviceTraffic is a device row with its total traffic over some window,
// used for top-consumer listings.
type DeviceTraffic struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	MAC   string `db:"mac_address" json:"mac"`
	IP    string `db:"ip_address" json:"ip"`
	Type  string `db:"device_type" json:"type"`
	Usage int64  `db:"total_usage" json:"usage"`
}
