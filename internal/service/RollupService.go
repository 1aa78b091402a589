package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"netbl/internal/metrics"
	"netbl/internal/model"
	"netbl/internal/netutil"
	"netbl/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// RollupService recomputes daily and monthly aggregates from raw samples.
// Recomputation is idempotent: every key is written with a replacing upsert,
// so reruns and concurrent runs converge instead of double-counting.
type RollupService struct {
	postgresRepo postgres.PostgresRepo
}

func NewRollupService(pgRepo postgres.PostgresRepo) *RollupService {
	return &RollupService{postgresRepo: pgRepo}
}

// FailedKey identifies one (date, device) or (year-month, device) key whose
// upsert failed and can be retried later.
type FailedKey struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

type RollupResult struct {
	RunID   uuid.UUID   `json:"runId"`
	Upserts int         `json:"upserts"`
	Failed  []FailedKey `json:"failed,omitempty"`
}

// RecomputeDaily aggregates samples in [from, to) into daily_usage. Keys
// already committed stay committed when a later key fails; the failed keys
// are reported in the result alongside the returned error.
func (s *RollupService) RecomputeDaily(ctx context.Context, from, to time.Time) (*RollupResult, error) {
	metrics.RollupRuns.Inc()

	timer := prometheus.NewTimer(metrics.RollupHistogramm)
	defer timer.ObserveDuration()

	result := &RollupResult{RunID: uuid.New()}

	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	rows, err := s.postgresRepo.AggregateDaily(qctx, from, to)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily samples: %w", err)
	}

	var totalDown, totalUp int64
	for _, du := range rows {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		err := s.postgresRepo.UpsertDailyUsage(qctx, du)
		cancel()
		if err != nil {
			metrics.RollupKeyFailures.Inc()
			result.Failed = append(result.Failed, FailedKey{
				Key:    fmt.Sprintf("%s/%d", du.Date.Format("2006-01-02"), du.DeviceID),
				Reason: err.Error(),
			})
			continue
		}
		result.Upserts++
		totalDown += du.TotalDownload
		totalUp += du.TotalUpload
	}

	log.Printf("daily rollup %s: %d keys, %s down / %s up",
		result.RunID, result.Upserts,
		netutil.FormatBytes(totalDown, 1), netutil.FormatBytes(totalUp, 1))

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("daily rollup: %d of %d keys failed", len(result.Failed), len(rows))
	}
	return result, nil
}

// RecomputeMonthly aggregates daily_usage for the months [from, to] into
// monthly_usage. Same failure semantics as RecomputeDaily.
func (s *RollupService) RecomputeMonthly(ctx context.Context, from, to model.YearMonth) (*RollupResult, error) {
	metrics.RollupRuns.Inc()

	timer := prometheus.NewTimer(metrics.RollupHistogramm)
	defer timer.ObserveDuration()

	result := &RollupResult{RunID: uuid.New()}

	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	rows, err := s.postgresRepo.AggregateMonthly(qctx, from, to)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly usage: %w", err)
	}

	for _, mu := range rows {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		err := s.postgresRepo.UpsertMonthlyUsage(qctx, mu)
		cancel()
		if err != nil {
			metrics.RollupKeyFailures.Inc()
			result.Failed = append(result.Failed, FailedKey{
				Key:    fmt.Sprintf("%s/%d", model.YearMonth{Year: mu.Year, Month: mu.Month}, mu.DeviceID),
				Reason: err.Error(),
			})
			continue
		}
		result.Upserts++
	}

	log.Printf("monthly rollup %s: %d keys", result.RunID, result.Upserts)

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("monthly rollup: %d of %d keys failed", len(result.Failed), len(rows))
	}
	return result, nil
}

// NetworkTotals sums all samples in [from, to), including rows with no
// attributed device, which per-device rollups exclude.
func (s *RollupService) NetworkTotals(ctx context.Context, from, to time.Time) (model.Totals, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.postgresRepo.NetworkTotals(qctx, from, to)
}
