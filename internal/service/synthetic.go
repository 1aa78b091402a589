package service

import (
	"math/rand"
	"sync"
	"time"
)

// ValueSource produces the magnitudes used for synthetic report data. It is
// injected into the ReportService so tests can substitute a deterministic
// generator.
type ValueSource interface {
	// Int63Between returns a value in [lo, hi).
	Int63Between(lo, hi int64) int64
}

type randSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSource() ValueSource {
	return &randSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *randSource) Int63Between(lo, hi int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Int63n(hi-lo)
}

// exampleDevices is the fixed roster shown when no real device has been
// observed yet.
var exampleDevices = []struct {
	id       int64
	name     string
	mac      string
	ip       string
	devType  string
	loUsage  int64
	hiUsage  int64
	daysSeen int
}{
	{1, "Gaming PC", "00:1A:2B:3C:4D:5E", "192.168.1.100", "computer", 10_000_000_000, 50_000_000_000, 30},
	{2, "Smart TV", "11:2A:3B:4C:5D:6E", "192.168.1.101", "entertainment", 20_000_000_000, 80_000_000_000, 60},
	{3, "iPhone", "22:3A:4B:5C:6D:7E", "192.168.1.102", "mobile", 5_000_000_000, 20_000_000_000, 45},
	{4, "Work Laptop", "33:4A:5B:6C:7D:8E", "192.168.1.103", "computer", 8_000_000_000, 30_000_000_000, 90},
	{5, "IoT Hub", "44:5A:6B:7C:8D:9E", "192.168.1.104", "iot", 1_000_000_000, 5_000_000_000, 120},
}

// syntheticHourly builds 24 hourly points ending at now.
func (s *ReportService) syntheticHourly(now time.Time) []TrafficPointView {
	points := make([]TrafficPointView, 0, 24)
	for i := 0; i < 24; i++ {
		t := now.Add(-time.Duration(23-i) * time.Hour)
		points = append(points, TrafficPointView{
			Time:     t.Format("15:04"),
			Download: s.values.Int63Between(1_000_000, 15_000_000),
			Upload:   s.values.Int63Between(500_000, 5_000_000),
		})
	}
	return points
}

func (s *ReportService) syntheticTopDevices() []TopDeviceView {
	devices := make([]TopDeviceView, 0, len(exampleDevices))
	for _, d := range exampleDevices {
		devices = append(devices, TopDeviceView{
			ID:    d.id,
			Name:  d.name,
			MAC:   d.mac,
			IP:    d.ip,
			Type:  d.devType,
			Usage: s.values.Int63Between(d.loUsage, d.hiUsage),
		})
	}
	return devices
}

func (s *ReportService) syntheticDeviceList(now time.Time) []DeviceEntry {
	entries := make([]DeviceEntry, 0, len(exampleDevices))
	for _, d := range exampleDevices {
		usage := s.values.Int63Between(d.loUsage, d.hiUsage)
		entries = append(entries, DeviceEntry{
			ID:            d.id,
			Name:          d.name,
			MAC:           d.mac,
			IP:            d.ip,
			Type:          d.devType,
			FirstSeen:     now.AddDate(0, 0, -d.daysSeen),
			LastSeen:      now,
			MonthDownload: usage * 4 / 5,
			MonthUpload:   usage / 5,
			Synthetic:     true,
		})
	}
	return entries
}

// syntheticSeries builds a placeholder usage series sized and labelled for
// the period: 24 hourly points, 7 or 30 daily points.
func (s *ReportService) syntheticSeries(period string, now time.Time) []ReportPoint {
	var (
		count    int
		format   string
		interval time.Duration
		loDown   int64 = 500_000_000
		hiDown   int64 = 5_000_000_000
		loUp     int64 = 100_000_000
		hiUp     int64 = 1_000_000_000
	)

	switch period {
	case PeriodDaily:
		count = 24
		format = "15:04"
		interval = time.Hour
		loDown, hiDown = 1_000_000, 15_000_000
		loUp, hiUp = 500_000, 5_000_000
	case PeriodWeekly:
		count = 7
		format = "Mon"
		interval = 24 * time.Hour
	case PeriodMonthly:
		count = 30
		format = "02"
		interval = 24 * time.Hour
	default:
		return nil
	}

	points := make([]ReportPoint, 0, count)
	cursor := now.Add(-time.Duration(count) * interval)
	for i := 0; i < count; i++ {
		download := s.values.Int63Between(loDown, hiDown)
		upload := s.values.Int63Between(loUp, hiUp)
		points = append(points, ReportPoint{
			Date:     cursor.Format(format),
			Download: download,
			Upload:   upload,
			Total:    download + upload,
		})
		cursor = cursor.Add(interval)
	}
	return points
}
