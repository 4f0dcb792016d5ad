package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"growdash/pkg/contracts/domain"
)

// GrowthSheetName is the single sheet the combined growth workbook
// carries. All schools' measurements are concatenated under it.
const GrowthSheetName = "전체"

// GrowthXLSXHeaders returns the column order of the combined growth
// export. The school column tags each row with its source sheet.
func GrowthXLSXHeaders() []string {
	return []string{
		domain.GrowthHeaderSchool,
		domain.GrowthHeaderLeafCount,
		domain.GrowthHeaderShootLength,
		domain.GrowthHeaderFreshWeight,
	}
}

// WriteGrowthXLSX renders all growth records into a single-sheet
// workbook and writes it to w. Records keep their input order: sheets
// in school declaration order, rows in original sheet order.
func WriteGrowthXLSX(w io.Writer, records []domain.GrowthRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed rather than deleted so the workbook
	// always has an active sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, GrowthSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := GrowthXLSXHeaders()
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := setRow(f, 1, headerRow); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, record := range records {
		row := []interface{}{
			string(record.School),
			record.LeafCount,
			record.ShootLength,
			record.FreshWeight,
		}
		if err := setRow(f, i+2, row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(GrowthSheetName, cell, &values)
}
