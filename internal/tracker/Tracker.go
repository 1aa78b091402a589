// Package tracker keeps the devices table in sync with what is currently
// visible on the network. Discovery itself is pluggable; the default source
// is a static roster standing in for an external scanner.
package tracker

import (
	"context"
	"log"
	"strings"
	"time"

	"netbl/internal/model"
	"netbl/internal/repository/postgres"
)

// DeviceSource lists the devices currently visible on the network.
type DeviceSource interface {
	Devices(ctx context.Context) ([]model.Device, error)
}

// StaticSource is the default roster used when no scanner is wired in.
type StaticSource struct{}

func (StaticSource) Devices(_ context.Context) ([]model.Device, error) {
	return []model.Device{
		{Name: "Gaming PC", MAC: "00:1A:2B:3C:4D:5E", IP: "192.168.1.100", Type: "computer"},
		{Name: "Smart TV", MAC: "11:2A:3B:4C:5D:6E", IP: "192.168.1.101", Type: "entertainment"},
		{Name: "iPhone", MAC: "22:3A:4B:5C:6D:7E", IP: "192.168.1.102", Type: "mobile"},
		{Name: "Work Laptop", MAC: "33:4A:5B:6C:7D:8E", IP: "192.168.1.103", Type: "computer"},
		{Name: "IoT Hub", MAC: "44:5A:6B:7C:8D:9E", IP: "192.168.1.104", Type: "iot"},
	}, nil
}

// vendor OUI prefixes we can classify without an external lookup
var ouiTypes = map[string]string{
	"00:1A:2B": "computer",
	"11:2A:3B": "entertainment",
	"22:3A:4B": "mobile",
	"33:4A:5B": "computer",
	"44:5A:6B": "iot",
}

// DetectDeviceType classifies a device by the OUI prefix of its MAC.
func DetectDeviceType(mac string) string {
	prefix := strings.ToUpper(mac)
	if len(prefix) >= 8 {
		prefix = prefix[:8]
	}
	if t, ok := ouiTypes[prefix]; ok {
		return t
	}
	return "unknown"
}

type Tracker struct {
	postgresRepo postgres.PostgresRepo
	source       DeviceSource
	interval     time.Duration
}

func New(pgRepo postgres.PostgresRepo, source DeviceSource, interval time.Duration) *Tracker {
	if source == nil {
		source = StaticSource{}
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Tracker{
		postgresRepo: pgRepo,
		source:       source,
		interval:     interval,
	}
}

// Run upserts the visible devices once per interval until ctx is cancelled.
// Devices are created on first observation and only their address, type and
// last_seen change afterwards; rows are never deleted.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.observe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.observe(ctx)
		}
	}
}

func (t *Tracker) observe(ctx context.Context) {
	devices, err := t.source.Devices(ctx)
	if err != nil {
		log.Printf("WARNING: device discovery failed: %v", err)
		return
	}

	now := time.Now().UTC()
	for i := range devices {
		d := &devices[i]
		if d.Type == "" {
			d.Type = DetectDeviceType(d.MAC)
		}
		d.FirstSeen = now
		d.LastSeen = now

		qctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := t.postgresRepo.UpsertDevice(qctx, d)
		cancel()
		if err != nil {
			log.Printf("WARNING: failed to upsert device %s: %v", d.MAC, err)
		}
	}
}
