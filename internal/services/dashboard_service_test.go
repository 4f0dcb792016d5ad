package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growdash/internal/dataset"
	"growdash/internal/shared/testutil"
	"growdash/internal/store"
	"growdash/pkg/contracts/domain"
	"growdash/pkg/contracts/events"
)

type recordingNotifier struct {
	payloads []events.DataReloaded
}

func (n *recordingNotifier) BroadcastDataReloaded(payload events.DataReloaded) {
	n.payloads = append(n.payloads, payload)
}

func newTestDashboard(t *testing.T, dir string) (*DashboardService, *recordingNotifier) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	st := store.New(dataset.NewLoader(logger), dir, logger)
	notifier := &recordingNotifier{}
	return NewDashboardService(st, notifier, logger), notifier
}

func TestOverview(t *testing.T) {
	svc, _ := newTestDashboard(t, testutil.PopulateDataDir(t))

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Metrics.Schools)
	assert.Equal(t, 6, resp.Metrics.EnvironmentRows)
	assert.Equal(t, 5, resp.Metrics.GrowthSamples)
	assert.Len(t, resp.EnvironmentMeans, 4)
	assert.Len(t, resp.GrowthMeans, 4)
	assert.Len(t, resp.ECComparison, 4)
	assert.False(t, resp.LoadedAt.IsZero())

	// 하늘고 (target EC 2.0) has the highest mean fresh weight
	require.NotNil(t, resp.BestEC)
	assert.Equal(t, 2.0, resp.BestEC.TargetEC)
}

func TestOverviewMissingDirectory(t *testing.T) {
	svc, _ := newTestDashboard(t, "/nonexistent/data")

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingDirectory)
}

func TestOverviewEmptyDirectory(t *testing.T) {
	svc, _ := newTestDashboard(t, t.TempDir())

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}

func TestOverviewGrowthOnlyFails(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteGrowthWorkbook(t, dir, "생육결과.xlsx", []testutil.GrowthSheet{
		{School: domain.SchoolSongdo, Rows: [][]interface{}{{12, 145.5, 5.2}}},
	})
	svc, _ := newTestDashboard(t, dir)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestViewsWithoutSpreadsheetFail(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteEnvironmentCSV(t, dir, "송도고.csv", testutil.SongdoEnvCSV)
	svc, _ := newTestDashboard(t, dir)

	_, err := svc.Growth(context.Background(), domain.AllSchools)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingSpreadsheet)

	// The partial snapshot gets cached; the stop must survive the cache.
	_, err = svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)

	_, err = svc.Environment(context.Background(), domain.AllSchools)
	require.Error(t, err)
}

func TestEnvironmentView(t *testing.T) {
	svc, _ := newTestDashboard(t, testutil.PopulateDataDir(t))

	t.Run("all schools", func(t *testing.T) {
		resp, err := svc.Environment(context.Background(), domain.AllSchools)
		require.NoError(t, err)

		assert.Len(t, resp.Means, 4)
		assert.Len(t, resp.Series, 4)
	})

	t.Run("single school", func(t *testing.T) {
		resp, err := svc.Environment(context.Background(), domain.SchoolSongdo)
		require.NoError(t, err)

		require.Len(t, resp.Series, 1)
		assert.Equal(t, domain.SchoolSongdo, resp.Series[0].School)
		assert.Equal(t, 1.0, resp.Series[0].TargetEC)
		assert.Len(t, resp.Series[0].Readings, 2)
	})
}

func TestGrowthView(t *testing.T) {
	svc, _ := newTestDashboard(t, testutil.PopulateDataDir(t))

	t.Run("all schools", func(t *testing.T) {
		resp, err := svc.Growth(context.Background(), domain.AllSchools)
		require.NoError(t, err)

		assert.Len(t, resp.Means, 4)
		assert.Len(t, resp.BoxSeries, 4)
		assert.Len(t, resp.Scatter, 5)
		require.NotNil(t, resp.BestEC)
		assert.Equal(t, 2.0, resp.BestEC.TargetEC)
	})

	t.Run("single school", func(t *testing.T) {
		resp, err := svc.Growth(context.Background(), domain.SchoolHaneul)
		require.NoError(t, err)

		require.Len(t, resp.BoxSeries, 1)
		assert.Equal(t, domain.SchoolHaneul, resp.BoxSeries[0].School)
		assert.Equal(t, []float64{8.1}, resp.BoxSeries[0].Weights)
		require.Len(t, resp.Scatter, 1)
	})
}

func TestSchools(t *testing.T) {
	svc, _ := newTestDashboard(t, testutil.PopulateDataDir(t))

	schools := svc.Schools(context.Background())
	require.Len(t, schools, 4)
	assert.Equal(t, domain.SchoolSongdo, schools[0].Name)
	assert.Equal(t, 8.0, schools[3].TargetEC)
}

func TestReloadBroadcastsEvent(t *testing.T) {
	dir := testutil.PopulateDataDir(t)
	svc, notifier := newTestDashboard(t, dir)

	// Prime the cache, then add another school's data and reload
	_, err := svc.Overview(context.Background())
	require.NoError(t, err)

	resp, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, resp.EnvironmentRows)
	assert.Equal(t, 5, resp.GrowthRows)
	assert.Equal(t, 4, resp.Schools)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, 6, notifier.payloads[0].EnvironmentRows)
	assert.Equal(t, resp.LoadedAt, notifier.payloads[0].LoadedAt)
}

func TestReloadPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteEnvironmentCSV(t, dir, "송도고.csv", testutil.SongdoEnvCSV)
	testutil.WriteGrowthWorkbook(t, dir, "생육결과.xlsx", []testutil.GrowthSheet{
		{School: domain.SchoolSongdo, Rows: [][]interface{}{{12, 145.5, 5.2}}},
	})

	svc, _ := newTestDashboard(t, dir)

	resp, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.EnvironmentRows)

	testutil.WriteEnvironmentCSV(t, dir, "하늘고.csv", testutil.HaneulEnvCSV)

	resp, err = svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, resp.EnvironmentRows)
	assert.Equal(t, 2, resp.Schools)
}

func TestReloadEmptyDirectoryFails(t *testing.T) {
	svc, notifier := newTestDashboard(t, t.TempDir())

	_, err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.Empty(t, notifier.payloads)
}
