package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"growdash/pkg/contracts/domain"
)

// Sample sensor logs keyed by school, small but shaped like real input.
const (
	SongdoEnvCSV = `time,temperature,humidity,ph,ec
2024-05-01 09:00,19.5,61.2,6.1,0.9
2024-05-01 10:00,20.5,60.8,6.0,1.1
`

	HaneulEnvCSV = `time,temperature,humidity,ph,ec
2024-05-01 09:00,24.0,55.0,5.9,2.1
2024-05-01 10:00,26.0,54.5,5.8,1.9
`

	AraEnvCSV = `time,temperature,humidity,ph,ec
2024-05-01 09:00,22.0,58.0,6.0,4.2
`

	DongsanEnvCSV = `time,temperature,humidity,ph,ec
2024-05-01 09:00,23.0,57.0,6.2,7.8
`
)

// GrowthSheet is one school's worth of growth rows for a test workbook.
type GrowthSheet struct {
	School domain.School
	Rows   [][]interface{} // leaf count, shoot length, fresh weight
}

// WriteEnvironmentCSV writes one sensor log into dir under the given name.
func WriteEnvironmentCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// WriteGrowthWorkbook writes a multi-sheet growth spreadsheet into dir.
// Sheets appear in slice order, each named after its school.
func WriteGrowthWorkbook(t *testing.T, dir, name string, sheets []GrowthSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{
		domain.GrowthHeaderLeafCount,
		domain.GrowthHeaderShootLength,
		domain.GrowthHeaderFreshWeight,
	}

	for i, sheet := range sheets {
		sheetName := string(sheet.School)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				t.Fatalf("failed to add sheet %s: %v", sheetName, err)
			}
		}

		if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
			t.Fatalf("failed to write header: %v", err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				t.Fatalf("failed to compute cell: %v", err)
			}
			row := row
			if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
				t.Fatalf("failed to write row: %v", err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// PopulateDataDir builds a complete data directory with all four schools'
// sensor logs and a growth workbook, returning the directory path.
func PopulateDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	WriteEnvironmentCSV(t, dir, "송도고_환경데이터.csv", SongdoEnvCSV)
	WriteEnvironmentCSV(t, dir, "하늘고_환경데이터.csv", HaneulEnvCSV)
	WriteEnvironmentCSV(t, dir, "아라고_환경데이터.csv", AraEnvCSV)
	WriteEnvironmentCSV(t, dir, "동산고_환경데이터.csv", DongsanEnvCSV)

	WriteGrowthWorkbook(t, dir, "생육결과.xlsx", []GrowthSheet{
		{School: domain.SchoolSongdo, Rows: [][]interface{}{{12, 145.5, 5.2}, {10, 130.0, 4.8}}},
		{School: domain.SchoolHaneul, Rows: [][]interface{}{{15, 160.2, 8.1}}},
		{School: domain.SchoolAra, Rows: [][]interface{}{{9, 110.0, 3.1}}},
		{School: domain.SchoolDongsan, Rows: [][]interface{}{{7, 95.0, 2.2}}},
	})

	return dir
}
