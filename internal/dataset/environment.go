package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"context"
	"log/slog"

	"growdash/internal/normalize"
	"growdash/pkg/contracts/domain"
)

// Loader discovers and parses the dashboard's input files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new loader instance
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "dataset.loader"))}
}

// ClassifyFileName resolves a file name to a school by testing containment
// of each normalized school name in the normalized file name. Schools are
// tried in declaration order, so a name matching several schools resolves
// deterministically to the first.
func ClassifyFileName(name string) (domain.SchoolInfo, bool) {
	for _, school := range domain.Schools {
		if normalize.Contains(name, string(school.Name)) {
			return school, true
		}
	}
	return domain.SchoolInfo{}, false
}

// DiscoverEnvironment enumerates the entries directly inside dir
// (non-recursive), classifies each CSV by school name containment, and
// parses the matches into per-school reading collections.
//
// If a school matches more than one file the last file wins; that is a
// documented edge case, not a merge. A missing directory is reported via
// ErrMissingDirectory together with an empty mapping so the caller can
// render a hard-stop state instead of crashing.
func (l *Loader) DiscoverEnvironment(ctx context.Context, dir string) (map[domain.School][]domain.EnvironmentReading, error) {
	result := make(map[domain.School][]domain.EnvironmentReading)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.WarnContext(ctx, "environment data directory missing", slog.String("dir", dir))
			return result, fmt.Errorf("%w: %s", ErrMissingDirectory, dir)
		}
		return result, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}

		school, ok := ClassifyFileName(name)
		if !ok {
			// Not an error: files from other projects share the directory.
			l.logger.DebugContext(ctx, "skipping CSV matching no school",
				slog.String("file", name))
			continue
		}

		readings, err := l.parseEnvironmentCSV(ctx, filepath.Join(dir, name), school.Name)
		if err != nil {
			l.logger.WarnContext(ctx, "failed to parse environment file",
				slog.String("file", name),
				slog.String("school", string(school.Name)),
				slog.String("error", err.Error()))
			continue
		}

		if _, exists := result[school.Name]; exists {
			l.logger.WarnContext(ctx, "school matched by multiple files, keeping the later one",
				slog.String("school", string(school.Name)),
				slog.String("file", name))
		}
		result[school.Name] = readings

		l.logger.InfoContext(ctx, "environment file loaded",
			slog.String("file", name),
			slog.String("school", string(school.Name)),
			slog.Int("rows", len(readings)))
	}

	return result, nil
}

// parseEnvironmentCSV reads one school's sensor log and stamps every row
// with the school. Rows whose numeric columns fail to parse are skipped
// with a warning so the returned collection stays well typed.
func (l *Loader) parseEnvironmentCSV(ctx context.Context, path string, school domain.School) ([]domain.EnvironmentReading, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headerRow, columnMap := findEnvironmentHeader(rows)
	if headerRow == -1 {
		return nil, fmt.Errorf("could not find header row with columns time, temperature, humidity, ph, ec")
	}

	readings := make([]domain.EnvironmentReading, 0, len(rows)-headerRow-1)
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		reading, err := parseEnvironmentRow(row, columnMap, school)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping malformed environment row",
				slog.String("file", filepath.Base(path)),
				slog.Int("row", i),
				slog.String("error", err.Error()))
			continue
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// findEnvironmentHeader locates the header row and maps column positions.
// The first cell may carry a UTF-8 BOM when the file was written by a
// spreadsheet tool.
func findEnvironmentHeader(rows [][]string) (int, map[string]int) {
	required := []string{
		domain.EnvHeaderTime,
		domain.EnvHeaderTemperature,
		domain.EnvHeaderHumidity,
		domain.EnvHeaderPH,
		domain.EnvHeaderEC,
	}

	for i, row := range rows {
		columnMap := make(map[string]int)
		for j, header := range row {
			header = strings.TrimPrefix(header, "\uFEFF")
			header = strings.ToLower(strings.TrimSpace(header))
			columnMap[header] = j
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

// parseEnvironmentRow converts one CSV row into a reading.
func parseEnvironmentRow(row []string, columnMap map[string]int, school domain.School) (domain.EnvironmentReading, error) {
	cell := func(col string) (string, error) {
		idx := columnMap[col]
		if idx >= len(row) {
			return "", fmt.Errorf("missing column %s", col)
		}
		return strings.TrimSpace(row[idx]), nil
	}

	parseFloat := func(col string) (float64, error) {
		raw, err := cell(col)
		if err != nil {
			return 0, err
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q", col, raw)
		}
		return val, nil
	}

	timestamp, err := cell(domain.EnvHeaderTime)
	if err != nil {
		return domain.EnvironmentReading{}, err
	}
	if timestamp == "" {
		return domain.EnvironmentReading{}, fmt.Errorf("empty %s value", domain.EnvHeaderTime)
	}

	temperature, err := parseFloat(domain.EnvHeaderTemperature)
	if err != nil {
		return domain.EnvironmentReading{}, err
	}
	humidity, err := parseFloat(domain.EnvHeaderHumidity)
	if err != nil {
		return domain.EnvironmentReading{}, err
	}
	ph, err := parseFloat(domain.EnvHeaderPH)
	if err != nil {
		return domain.EnvironmentReading{}, err
	}
	ec, err := parseFloat(domain.EnvHeaderEC)
	if err != nil {
		return domain.EnvironmentReading{}, err
	}

	return domain.EnvironmentReading{
		Time:        timestamp,
		Temperature: temperature,
		Humidity:    humidity,
		PH:          ph,
		EC:          ec,
		School:      school,
	}, nil
}
