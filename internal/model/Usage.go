package model

import (
	"fmt"
	"time"
)

// DailyUsage is the per-(date, device) rollup row. Date is truncated to
// midnight UTC of the day it covers.
type DailyUsage struct {
	Date          time.Time `db:"date"`
	DeviceID      int64     `db:"device_id"`
	TotalDownload int64     `db:"total_download"`
	TotalUpload   int64     `db:"total_upload"`
}

// MonthlyUsage is the per-(year, month, device) rollup row.
type MonthlyUsage struct {
	Year          int        `db:"year"`
	Month         time.Month `db:"month"`
	DeviceID      int64      `db:"device_id"`
	TotalDownload int64      `db:"total_download"`
	TotalUpload   int64      `db:"total_upload"`
}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Start returns midnight UTC on the first day of the month.
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(ym.Start().AddDate(0, 1, 0))
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}
