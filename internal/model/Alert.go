package model

import (
	"time"
)

type Alert struct {
	ID           int64     `db:"id" json:"id"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	Type         string    `db:"alert_type" json:"type"`
	Severity     string    `db:"severity" json:"severity"`
	Message      string    `db:"message" json:"message"`
	DeviceID     *int64    `db:"device_id" json:"device_id"`
	Acknowledged bool      `db:"acknowledged" json:"acknowledged"`
}
