package analytics

import (
	"growdash/pkg/contracts/domain"
)

// Field names a numeric column of the environment dataset.
type Field string

const (
	FieldTemperature Field = "temperature"
	FieldHumidity    Field = "humidity"
	FieldPH          Field = "ph"
	FieldEC          Field = "ec"
)

// EnvironmentGroupMean holds the per-school arithmetic means of the
// environment readings. Schools with zero readings are omitted rather
// than emitted with null values.
type EnvironmentGroupMean struct {
	School      domain.School `json:"school"`
	TargetEC    float64       `json:"target_ec"`
	Count       int           `json:"count"`
	Temperature float64       `json:"temperature"`
	Humidity    float64       `json:"humidity"`
	PH          float64       `json:"ph"`
	EC          float64       `json:"ec"`
}

// GrowthGroupMean holds the per-school arithmetic means of the growth
// outcome metrics.
type GrowthGroupMean struct {
	School      domain.School `json:"school"`
	TargetEC    float64       `json:"target_ec"`
	Count       int           `json:"count"`
	LeafCount   float64       `json:"leaf_count"`
	ShootLength float64       `json:"shoot_length_mm"`
	FreshWeight float64       `json:"fresh_weight_g"`
}

// BestEC is the target EC concentration with the highest mean fresh
// weight across all growth records.
type BestEC struct {
	TargetEC        float64 `json:"target_ec"`
	MeanFreshWeight float64 `json:"mean_fresh_weight_g"`
	SampleCount     int     `json:"sample_count"`
}

// SchoolSeries is one school's environment readings in original order,
// with the school's target EC and color so the chart can draw the target
// line in the school's color.
type SchoolSeries struct {
	School   domain.School               `json:"school"`
	TargetEC float64                     `json:"target_ec"`
	Color    string                      `json:"color"`
	Readings []domain.EnvironmentReading `json:"readings"`
}

// WeightSeries is one school's raw fresh-weight values, the input for
// the growth box plot.
type WeightSeries struct {
	School   domain.School `json:"school"`
	TargetEC float64       `json:"target_ec"`
	Color    string        `json:"color"`
	Weights  []float64     `json:"weights"`
}

// ScatterPoint is one growth record projected for the outcome scatter
// charts (leaf count vs weight, shoot length vs weight).
type ScatterPoint struct {
	School      domain.School `json:"school"`
	LeafCount   int           `json:"leaf_count"`
	ShootLength float64       `json:"shoot_length_mm"`
	FreshWeight float64       `json:"fresh_weight_g"`
}

// ECComparisonRow compares a school's configured target EC with the mean
// EC its sensors actually measured.
type ECComparisonRow struct {
	School         domain.School `json:"school"`
	TargetEC       float64       `json:"target_ec"`
	MeanMeasuredEC float64       `json:"mean_measured_ec"`
	Count          int           `json:"count"`
}
