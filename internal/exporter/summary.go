package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"growdash/internal/analytics"
)

// WriteGrowthSummaryCSV writes the per-school growth means and, when
// available, the best performing target EC concentration. This is the
// report command's output format.
func WriteGrowthSummaryCSV(w io.Writer, means []analytics.GrowthGroupMean, best *analytics.BestEC) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	headers := []string{
		"school",
		"target_ec",
		"samples",
		"mean_leaf_count",
		"mean_shoot_length_mm",
		"mean_fresh_weight_g",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, mean := range means {
		row := []string{
			string(mean.School),
			formatFloat(mean.TargetEC),
			formatInt(mean.Count),
			formatFixed(mean.LeafCount),
			formatFixed(mean.ShootLength),
			formatFixed(mean.FreshWeight),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if best != nil {
		row := []string{
			"best",
			formatFloat(best.TargetEC),
			formatInt(best.SampleCount),
			"",
			"",
			formatFixed(best.MeanFreshWeight),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write best row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteEnvironmentSummaryCSV writes the per-school environment means.
func WriteEnvironmentSummaryCSV(w io.Writer, means []analytics.EnvironmentGroupMean) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	headers := []string{
		"school",
		"target_ec",
		"samples",
		"mean_temperature",
		"mean_humidity",
		"mean_ph",
		"mean_ec",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, mean := range means {
		row := []string{
			string(mean.School),
			formatFloat(mean.TargetEC),
			formatInt(mean.Count),
			formatFixed(mean.Temperature),
			formatFixed(mean.Humidity),
			formatFixed(mean.PH),
			formatFixed(mean.EC),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
