package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"growdash/internal/dataset"
	"growdash/internal/shared/testutil"
	"growdash/internal/store"
)

func newTestExport(t *testing.T, dir string) *ExportService {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	st := store.New(dataset.NewLoader(logger), dir, logger)
	return NewExportService(st, nil, logger)
}

func TestEnvironmentCSVExport(t *testing.T) {
	svc := newTestExport(t, testutil.PopulateDataDir(t))

	var buf bytes.Buffer
	rows, err := svc.EnvironmentCSV(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 6, rows)

	// BOM prefix, then a parseable CSV with header + 6 rows
	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"school", "time", "temperature", "humidity", "ph", "ec"}, records[0])
	assert.Equal(t, "송도고", records[1][0])
}

func TestExportWithoutSpreadsheetFails(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteEnvironmentCSV(t, dir, "송도고.csv", testutil.SongdoEnvCSV)
	svc := newTestExport(t, dir)

	var buf bytes.Buffer
	_, err := svc.EnvironmentCSV(context.Background(), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingSpreadsheet)
	assert.Zero(t, buf.Len())
}

func TestGrowthXLSXExport(t *testing.T) {
	svc := newTestExport(t, testutil.PopulateDataDir(t))

	var buf bytes.Buffer
	rows, err := svc.GrowthXLSX(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 5, rows)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"전체"}, f.GetSheetList())
	cells, err := f.GetRows("전체")
	require.NoError(t, err)
	require.Len(t, cells, 6)
}

func TestGrowthSummaryCSVExport(t *testing.T) {
	svc := newTestExport(t, testutil.PopulateDataDir(t))

	var buf bytes.Buffer
	err := svc.GrowthSummaryCSV(context.Background(), &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)

	// header + 4 school rows + best row
	require.Len(t, records, 6)
	assert.Equal(t, "best", records[5][0])
}

func TestExportMissingDirectory(t *testing.T) {
	svc := newTestExport(t, "/nonexistent/data")

	var buf bytes.Buffer
	_, err := svc.EnvironmentCSV(context.Background(), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingDirectory)
	assert.Zero(t, buf.Len())
}
