package analytics

import (
	"growdash/pkg/contracts/domain"
)

// selected reports whether a school passes the only filter. An empty
// filter or the all-schools selector selects every school.
func selected(school domain.School, only domain.School) bool {
	return only == "" || only == domain.AllSchools || only == school
}

// TimeSeries projects the environment readings into per-school series for
// the trend charts. Pass only == "" for all schools; series follow school
// declaration order and schools with no readings are omitted.
func TimeSeries(readings map[domain.School][]domain.EnvironmentReading, only domain.School) []SchoolSeries {
	var series []SchoolSeries
	for _, school := range domain.Schools {
		if !selected(school.Name, only) {
			continue
		}
		rows := readings[school.Name]
		if len(rows) == 0 {
			continue
		}
		series = append(series, SchoolSeries{
			School:   school.Name,
			TargetEC: school.TargetEC,
			Color:    school.Color,
			Readings: rows,
		})
	}
	return series
}

// FreshWeightSeries projects growth records into per-school raw weight
// series, the input for the box plot.
func FreshWeightSeries(records []domain.GrowthRecord, only domain.School) []WeightSeries {
	grouped := make(map[domain.School][]float64)
	for _, r := range records {
		grouped[r.School] = append(grouped[r.School], r.FreshWeight)
	}

	var series []WeightSeries
	for _, school := range domain.Schools {
		if !selected(school.Name, only) {
			continue
		}
		weights := grouped[school.Name]
		if len(weights) == 0 {
			continue
		}
		series = append(series, WeightSeries{
			School:   school.Name,
			TargetEC: school.TargetEC,
			Color:    school.Color,
			Weights:  weights,
		})
	}
	return series
}

// ScatterPoints projects growth records into points for the outcome
// scatter charts, preserving record order.
func ScatterPoints(records []domain.GrowthRecord, only domain.School) []ScatterPoint {
	var points []ScatterPoint
	for _, r := range records {
		if !selected(r.School, only) {
			continue
		}
		points = append(points, ScatterPoint{
			School:      r.School,
			LeafCount:   r.LeafCount,
			ShootLength: r.ShootLength,
			FreshWeight: r.FreshWeight,
		})
	}
	return points
}

// ECComparison builds the target-vs-measured EC table for the overview.
// Schools with no readings are omitted.
func ECComparison(readings map[domain.School][]domain.EnvironmentReading) []ECComparisonRow {
	var rows []ECComparisonRow
	for _, school := range domain.Schools {
		samples := readings[school.Name]
		if len(samples) == 0 {
			continue
		}

		sum := 0.0
		for _, r := range samples {
			sum += r.EC
		}

		rows = append(rows, ECComparisonRow{
			School:         school.Name,
			TargetEC:       school.TargetEC,
			MeanMeasuredEC: sum / float64(len(samples)),
			Count:          len(samples),
		})
	}
	return rows
}
