package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"growdash/pkg/contracts/domain"
)

// Download file names offered by the dashboard. The names match what
// the research teams expect to share, so they stay in Korean.
const (
	EnvironmentFileName = "환경데이터_전체.csv"
	GrowthFileName      = "생육결과_전체.xlsx"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// EnvironmentCSVHeaders returns the column order of the combined
// environment export. The school column comes first so a sorted or
// filtered spreadsheet keeps rows attributable.
func EnvironmentCSVHeaders() []string {
	return []string{
		"school",
		domain.EnvHeaderTime,
		domain.EnvHeaderTemperature,
		domain.EnvHeaderHumidity,
		domain.EnvHeaderPH,
		domain.EnvHeaderEC,
	}
}

// WriteEnvironmentCSV writes the combined sensor log of all schools to w
// with a UTF-8 BOM prefix. Readings are expected in the caller's order;
// Snapshot.EnvironmentAll yields school declaration order, then original
// row order, which is the order this export documents.
func WriteEnvironmentCSV(w io.Writer, readings []domain.EnvironmentReading) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(EnvironmentCSVHeaders()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, reading := range readings {
		if err := writer.Write(environmentRow(reading)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// environmentRow converts one reading to its CSV representation. The
// timestamp is emitted verbatim and floats use the shortest exact form,
// so a re-imported export parses back to the same values.
func environmentRow(r domain.EnvironmentReading) []string {
	return []string{
		string(r.School),
		r.Time,
		formatFloat(r.Temperature),
		formatFloat(r.Humidity),
		formatFloat(r.PH),
		formatFloat(r.EC),
	}
}
