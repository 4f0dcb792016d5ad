package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"growdash/pkg/contracts/domain"
)

type growthSheet struct {
	name string
	rows [][]interface{}
}

func writeGrowthXLSX(t *testing.T, dir, name string, sheets []growthSheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}

		header := []interface{}{
			domain.GrowthHeaderLeafCount,
			domain.GrowthHeaderShootLength,
			domain.GrowthHeaderFreshWeight,
		}
		require.NoError(t, f.SetSheetRow(sheet.name, "A1", &header))

		for j, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}

	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func TestDiscoverGrowth(t *testing.T) {
	dir := t.TempDir()
	writeGrowthXLSX(t, dir, "생육결과.xlsx", []growthSheet{
		{
			name: string(domain.SchoolSongdo),
			rows: [][]interface{}{
				{12, 85.5, 5.2},
				{14, 90.0, 6.1},
			},
		},
		{
			name: string(domain.SchoolHaneul),
			rows: [][]interface{}{
				{16, 101.3, 8.4},
			},
		},
	})

	loader := NewLoader(nil)
	records, err := loader.DiscoverGrowth(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sheets concatenate in declared order, rows keep their order.
	assert.Equal(t, domain.SchoolSongdo, records[0].School)
	assert.Equal(t, 12, records[0].LeafCount)
	assert.InDelta(t, 85.5, records[0].ShootLength, 1e-9)
	assert.InDelta(t, 5.2, records[0].FreshWeight, 1e-9)
	assert.InDelta(t, 1.0, records[0].TargetEC, 1e-9)

	assert.Equal(t, domain.SchoolSongdo, records[1].School)
	assert.Equal(t, domain.SchoolHaneul, records[2].School)
	assert.InDelta(t, 2.0, records[2].TargetEC, 1e-9)
}

func TestDiscoverGrowth_MissingSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고.csv", songdoCSV)

	loader := NewLoader(nil)
	records, err := loader.DiscoverGrowth(context.Background(), dir)

	assert.ErrorIs(t, err, ErrMissingSpreadsheet)
	assert.Empty(t, records)
}

func TestDiscoverGrowth_MissingDirectory(t *testing.T) {
	loader := NewLoader(nil)
	records, err := loader.DiscoverGrowth(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, ErrMissingDirectory)
	assert.Empty(t, records)
}

func TestDiscoverGrowth_UnknownSheetSkipped(t *testing.T) {
	dir := t.TempDir()
	writeGrowthXLSX(t, dir, "growth.xlsx", []growthSheet{
		{name: "template", rows: [][]interface{}{{1, 2.0, 3.0}}},
		{name: string(domain.SchoolAra), rows: [][]interface{}{{10, 70.0, 4.4}}},
	})

	loader := NewLoader(nil)
	records, err := loader.DiscoverGrowth(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.SchoolAra, records[0].School)
	assert.InDelta(t, 4.0, records[0].TargetEC, 1e-9)
}

func TestLoad_AssemblesSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고.csv", songdoCSV)
	writeGrowthXLSX(t, dir, "growth.xlsx", []growthSheet{
		{name: string(domain.SchoolSongdo), rows: [][]interface{}{{12, 85.5, 5.2}}},
	})

	loader := NewLoader(nil)
	snapshot, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.EnvironmentRows())
	assert.Equal(t, 1, snapshot.SchoolCount())
	assert.Len(t, snapshot.Growth, 1)
	assert.False(t, snapshot.Empty())
	assert.False(t, snapshot.LoadedAt.IsZero())
}

func TestLoad_PartialDataStillReturnsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고.csv", songdoCSV)

	loader := NewLoader(nil)
	snapshot, err := loader.Load(context.Background(), dir)

	// Growth spreadsheet is missing but the environment data still loads.
	assert.ErrorIs(t, err, ErrMissingSpreadsheet)
	assert.Equal(t, 2, snapshot.EnvironmentRows())
	assert.Empty(t, snapshot.Growth)
}

func TestSnapshot_EnvironmentAllOrdering(t *testing.T) {
	snapshot := &Snapshot{
		Environment: map[domain.School][]domain.EnvironmentReading{
			domain.SchoolHaneul: {{Time: "b", School: domain.SchoolHaneul}},
			domain.SchoolSongdo: {{Time: "a", School: domain.SchoolSongdo}},
		},
	}

	all := snapshot.EnvironmentAll()
	require.Len(t, all, 2)
	assert.Equal(t, domain.SchoolSongdo, all[0].School)
	assert.Equal(t, domain.SchoolHaneul, all[1].School)
}
