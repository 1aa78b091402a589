package service

import (
	"time"

	"netbl/internal/model"
)

// View types serialized by the API layer. Field names follow the dashboard
// frontend's expectations; byte quantities are always raw integers.
// Sections that can be served from placeholder data carry a synthetic flag
// so clients can tell generated values from measurements.

type CurrentUsage struct {
	Download     int64 `json:"download"`
	Upload       int64 `json:"upload"`
	MaxDownload  int64 `json:"maxDownload"`
	MaxUpload    int64 `json:"maxUpload"`
	DailyTotal   int64 `json:"dailyTotal"`
	MonthlyTotal int64 `json:"monthlyTotal"`
	MonthlyLimit int64 `json:"monthlyLimit"`
	Synthetic    bool  `json:"synthetic"`
}

type TrafficPointView struct {
	Time     string `json:"time"`
	Download int64  `json:"download"`
	Upload   int64  `json:"upload"`
}

type HistoricalData struct {
	Hourly    []TrafficPointView `json:"hourly"`
	Synthetic bool               `json:"synthetic"`
}

type TopDeviceView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	MAC   string `json:"mac"`
	IP    string `json:"ip"`
	Type  string `json:"type"`
	Usage int64  `json:"usage"`
}

type TopDevices struct {
	Devices   []TopDeviceView `json:"devices"`
	Synthetic bool            `json:"synthetic"`
}

type AlertView struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	DeviceID  *int64    `json:"device_id"`
}

type SummaryReport struct {
	CurrentUsage   CurrentUsage   `json:"currentUsage"`
	HistoricalData HistoricalData `json:"historicalData"`
	TopDevices     TopDevices     `json:"topDevices"`
	Alerts         []AlertView    `json:"alerts"`
}

func (r *SummaryReport) synthetic() bool {
	return r.CurrentUsage.Synthetic || r.HistoricalData.Synthetic || r.TopDevices.Synthetic
}

type DeviceEntry struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	MAC           string    `json:"mac"`
	IP            string    `json:"ip"`
	Type          string    `json:"type"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
	MonthDownload int64     `json:"month_download"`
	MonthUpload   int64     `json:"month_upload"`
	Synthetic     bool      `json:"synthetic,omitempty"`
}

type DailyUsagePoint struct {
	Date     string `json:"date"`
	Download int64  `json:"download"`
	Upload   int64  `json:"upload"`
	Total    int64  `json:"total"`
}

type DeviceDetailResult struct {
	Device DeviceEntry       `json:"device"`
	Usage  []DailyUsagePoint `json:"usage"`
	Alerts []AlertView       `json:"alerts"`
}

type ReportPoint struct {
	Date     string `json:"date"`
	Download int64  `json:"download"`
	Upload   int64  `json:"upload"`
	Total    int64  `json:"total"`
}

type UsageReportResult struct {
	Period    string        `json:"period"`
	Data      []ReportPoint `json:"data"`
	Synthetic bool          `json:"synthetic"`
}

func toAlertViews(alerts []model.Alert) []AlertView {
	views := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, AlertView{
			ID:        a.ID,
			Timestamp: a.Timestamp,
			Type:      a.Type,
			Severity:  a.Severity,
			Message:   a.Message,
			DeviceID:  a.DeviceID,
		})
	}
	return views
}
