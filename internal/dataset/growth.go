package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"growdash/internal/normalize"
	"growdash/pkg/contracts/domain"
)

// DiscoverGrowth finds the first spreadsheet in dir and parses every
// sheet into one concatenated growth collection. Sheet names are the
// school identifiers (the submission template fixes them, so no
// containment matching is needed); sheets are processed in the file's
// declared order and per-sheet row order is preserved.
//
// A missing directory or a directory with no spreadsheet is reported via
// the corresponding sentinel together with an empty collection.
func (l *Loader) DiscoverGrowth(ctx context.Context, dir string) ([]domain.GrowthRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.WarnContext(ctx, "growth data directory missing", slog.String("dir", dir))
			return nil, fmt.Errorf("%w: %s", ErrMissingDirectory, dir)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var spreadsheet string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".xlsx") {
			spreadsheet = entry.Name()
			break
		}
	}
	if spreadsheet == "" {
		return nil, fmt.Errorf("%w in %s", ErrMissingSpreadsheet, dir)
	}

	records, err := l.parseGrowthXLSX(ctx, filepath.Join(dir, spreadsheet))
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "growth spreadsheet loaded",
		slog.String("file", spreadsheet),
		slog.Int("rows", len(records)))

	return records, nil
}

// parseGrowthXLSX reads every sheet of the growth spreadsheet and tags
// each row with its sheet's school and that school's target EC.
func (l *Loader) parseGrowthXLSX(ctx context.Context, path string) ([]domain.GrowthRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var records []domain.GrowthRecord

	for _, sheet := range f.GetSheetList() {
		school := domain.School(normalize.NFC(strings.TrimSpace(sheet)))
		targetEC, known := domain.TargetEC(school)
		if !known {
			l.logger.WarnContext(ctx, "skipping sheet with unknown school name",
				slog.String("sheet", sheet))
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}

		sheetRecords := l.parseGrowthSheet(ctx, sheet, rows, school, targetEC)
		records = append(records, sheetRecords...)
	}

	return records, nil
}

// parseGrowthSheet converts one sheet's rows, preserving row order.
func (l *Loader) parseGrowthSheet(ctx context.Context, sheet string, rows [][]string, school domain.School, targetEC float64) []domain.GrowthRecord {
	headerRow, columnMap := findGrowthHeader(rows)
	if headerRow == -1 {
		l.logger.WarnContext(ctx, "sheet has no recognizable header row",
			slog.String("sheet", sheet))
		return nil
	}

	records := make([]domain.GrowthRecord, 0, len(rows)-headerRow-1)
	for i := headerRow + 1; i < len(rows); i++ {
		record, err := parseGrowthRow(rows[i], columnMap, school, targetEC)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping malformed growth row",
				slog.String("sheet", sheet),
				slog.Int("row", i),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, record)
	}

	return records
}

// findGrowthHeader locates the header row and maps column positions.
// Header labels are compared after NFC normalization because the template
// is edited on mixed platforms.
func findGrowthHeader(rows [][]string) (int, map[string]int) {
	required := []string{
		domain.GrowthHeaderLeafCount,
		domain.GrowthHeaderShootLength,
		domain.GrowthHeaderFreshWeight,
	}

	for i, row := range rows {
		columnMap := make(map[string]int)
		for j, header := range row {
			columnMap[normalize.NFC(strings.TrimSpace(header))] = j
		}

		complete := true
		for _, col := range required {
			if _, exists := columnMap[col]; !exists {
				complete = false
				break
			}
		}
		if complete {
			return i, columnMap
		}
	}

	return -1, nil
}

// parseGrowthRow converts one sheet row into a record.
func parseGrowthRow(row []string, columnMap map[string]int, school domain.School, targetEC float64) (domain.GrowthRecord, error) {
	cell := func(col string) (string, error) {
		idx := columnMap[col]
		if idx >= len(row) {
			return "", fmt.Errorf("missing column %s", col)
		}
		return strings.TrimSpace(row[idx]), nil
	}

	leafRaw, err := cell(domain.GrowthHeaderLeafCount)
	if err != nil {
		return domain.GrowthRecord{}, err
	}
	// Leaf counts sometimes arrive as "12.0" from spreadsheet autofill.
	leafFloat, err := strconv.ParseFloat(leafRaw, 64)
	if err != nil || leafFloat < 0 {
		return domain.GrowthRecord{}, fmt.Errorf("invalid %s value %q", domain.GrowthHeaderLeafCount, leafRaw)
	}

	shootRaw, err := cell(domain.GrowthHeaderShootLength)
	if err != nil {
		return domain.GrowthRecord{}, err
	}
	shoot, err := strconv.ParseFloat(shootRaw, 64)
	if err != nil {
		return domain.GrowthRecord{}, fmt.Errorf("invalid %s value %q", domain.GrowthHeaderShootLength, shootRaw)
	}

	weightRaw, err := cell(domain.GrowthHeaderFreshWeight)
	if err != nil {
		return domain.GrowthRecord{}, err
	}
	weight, err := strconv.ParseFloat(weightRaw, 64)
	if err != nil {
		return domain.GrowthRecord{}, fmt.Errorf("invalid %s value %q", domain.GrowthHeaderFreshWeight, weightRaw)
	}

	return domain.GrowthRecord{
		School:      school,
		LeafCount:   int(leafFloat),
		ShootLength: shoot,
		FreshWeight: weight,
		TargetEC:    targetEC,
	}, nil
}
