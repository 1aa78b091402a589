package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"netbl/internal/model"
	"netbl/internal/repository/postgres"
	mockspg "netbl/internal/repository/postgres/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRollup(t *testing.T) (*RollupService, *mockspg.MockPostgresRepo, context.Context) {
	ctrl := gomock.NewController(t)
	mockPostgres := mockspg.NewMockPostgresRepo(ctrl)
	return NewRollupService(mockPostgres), mockPostgres, context.Background()
}

func TestRecomputeDaily_UpsertsEveryKey(t *testing.T) {
	s, mockPostgres, ctx := setupRollup(t)

	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	rows := []model.DailyUsage{
		{Date: from, DeviceID: 1, TotalDownload: 100, TotalUpload: 10},
		{Date: from, DeviceID: 2, TotalDownload: 200, TotalUpload: 20},
		{Date: from, DeviceID: 3, TotalDownload: 300, TotalUpload: 30},
	}

	mockPostgres.EXPECT().AggregateDaily(gomock.Any(), from, to).Return(rows, nil)
	for _, du := range rows {
		mockPostgres.EXPECT().UpsertDailyUsage(gomock.Any(), du).Return(nil)
	}

	result, err := s.RecomputeDaily(ctx, from, to)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Upserts)
	assert.Empty(t, result.Failed)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())
}

func TestRecomputeDaily_PartialFailureKeepsCommittedKeys(t *testing.T) {
	s, mockPostgres, ctx := setupRollup(t)

	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	rows := []model.DailyUsage{
		{Date: from, DeviceID: 1, TotalDownload: 100, TotalUpload: 10},
		{Date: from, DeviceID: 2, TotalDownload: 200, TotalUpload: 20},
		{Date: from, DeviceID: 3, TotalDownload: 300, TotalUpload: 30},
	}

	mockPostgres.EXPECT().AggregateDaily(gomock.Any(), from, to).Return(rows, nil)
	mockPostgres.EXPECT().UpsertDailyUsage(gomock.Any(), rows[0]).Return(nil)
	mockPostgres.EXPECT().UpsertDailyUsage(gomock.Any(), rows[1]).Return(errors.New("deadlock detected"))
	mockPostgres.EXPECT().UpsertDailyUsage(gomock.Any(), rows[2]).Return(nil)

	result, err := s.RecomputeDaily(ctx, from, to)

	require.Error(t, err)
	assert.EqualError(t, err, "daily rollup: 1 of 3 keys failed")
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Upserts)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "2026-08-29/2", result.Failed[0].Key)
	assert.Equal(t, "deadlock detected", result.Failed[0].Reason)
}

func TestRecomputeDaily_AggregateFailure(t *testing.T) {
	s, mockPostgres, ctx := setupRollup(t)

	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mockPostgres.EXPECT().AggregateDaily(gomock.Any(), from, to).Return(nil, errors.New("connection refused"))

	result, err := s.RecomputeDaily(ctx, from, to)

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to aggregate daily samples")
}

func TestRecomputeMonthly_KeyFormat(t *testing.T) {
	s, mockPostgres, ctx := setupRollup(t)

	from := model.YearMonth{Year: 2026, Month: time.July}
	to := model.YearMonth{Year: 2026, Month: time.August}

	rows := []model.MonthlyUsage{
		{Year: 2026, Month: time.July, DeviceID: 4, TotalDownload: 1_000, TotalUpload: 100},
	}

	mockPostgres.EXPECT().AggregateMonthly(gomock.Any(), from, to).Return(rows, nil)
	mockPostgres.EXPECT().UpsertMonthlyUsage(gomock.Any(), rows[0]).Return(errors.New("disk full"))

	result, err := s.RecomputeMonthly(ctx, from, to)

	require.Error(t, err)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "2026-07/4", result.Failed[0].Key)
}

// convergeRepo is an in-memory stand-in for the daily rollup tables. Only
// the two methods RecomputeDaily touches are implemented.
type convergeRepo struct {
	postgres.PostgresRepo

	mu    sync.Mutex
	rows  []model.DailyUsage
	daily map[string]model.DailyUsage
}

func (r *convergeRepo) AggregateDaily(_ context.Context, _, _ time.Time) ([]model.DailyUsage, error) {
	return r.rows, nil
}

func (r *convergeRepo) UpsertDailyUsage(_ context.Context, du model.DailyUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.daily[fmt.Sprintf("%s/%d", du.Date.Format("2006-01-02"), du.DeviceID)] = du
	return nil
}

func TestRecomputeDaily_ConcurrentRunsConverge(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	repo := &convergeRepo{
		rows: []model.DailyUsage{
			{Date: day, DeviceID: 1, TotalDownload: 100, TotalUpload: 10},
			{Date: day, DeviceID: 2, TotalDownload: 200, TotalUpload: 20},
		},
		daily: make(map[string]model.DailyUsage),
	}
	s := NewRollupService(repo)

	// sequential baseline
	_, err := s.RecomputeDaily(context.Background(), day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	want := make(map[string]model.DailyUsage, len(repo.daily))
	for k, v := range repo.daily {
		want[k] = v
	}

	repo.daily = make(map[string]model.DailyUsage)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RecomputeDaily(context.Background(), day, day.AddDate(0, 0, 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, want, repo.daily)
}
