package analytics

import (
	"sort"

	"growdash/pkg/contracts/domain"
)

// EnvironmentMeans computes per-school means of every numeric environment
// field. Output rows follow school declaration order; schools with no
// readings yield no row.
func EnvironmentMeans(readings map[domain.School][]domain.EnvironmentReading) []EnvironmentGroupMean {
	means := make([]EnvironmentGroupMean, 0, len(readings))

	for _, school := range domain.Schools {
		rows := readings[school.Name]
		if len(rows) == 0 {
			continue
		}

		mean := EnvironmentGroupMean{
			School:   school.Name,
			TargetEC: school.TargetEC,
			Count:    len(rows),
		}
		for _, r := range rows {
			mean.Temperature += r.Temperature
			mean.Humidity += r.Humidity
			mean.PH += r.PH
			mean.EC += r.EC
		}
		n := float64(len(rows))
		mean.Temperature /= n
		mean.Humidity /= n
		mean.PH /= n
		mean.EC /= n

		means = append(means, mean)
	}

	return means
}

// GrowthMeans computes per-school means of the growth outcome metrics,
// with the same ordering and omission rules as EnvironmentMeans.
func GrowthMeans(records []domain.GrowthRecord) []GrowthGroupMean {
	grouped := make(map[domain.School][]domain.GrowthRecord)
	for _, r := range records {
		grouped[r.School] = append(grouped[r.School], r)
	}

	means := make([]GrowthGroupMean, 0, len(grouped))
	for _, school := range domain.Schools {
		rows := grouped[school.Name]
		if len(rows) == 0 {
			continue
		}

		mean := GrowthGroupMean{
			School:   school.Name,
			TargetEC: school.TargetEC,
			Count:    len(rows),
		}
		for _, r := range rows {
			mean.LeafCount += float64(r.LeafCount)
			mean.ShootLength += r.ShootLength
			mean.FreshWeight += r.FreshWeight
		}
		n := float64(len(rows))
		mean.LeafCount /= n
		mean.ShootLength /= n
		mean.FreshWeight /= n

		means = append(means, mean)
	}

	return means
}

// BestByWeight groups growth records by their target EC, computes the
// mean fresh weight per concentration, and returns the concentration with
// the strict maximum mean. Ties resolve to the smallest EC (lowest-dose
// preference). The second result is false when records is empty.
func BestByWeight(records []domain.GrowthRecord) (BestEC, bool) {
	if len(records) == 0 {
		return BestEC{}, false
	}

	type accumulator struct {
		sum   float64
		count int
	}
	byEC := make(map[float64]*accumulator)
	for _, r := range records {
		acc, ok := byEC[r.TargetEC]
		if !ok {
			acc = &accumulator{}
			byEC[r.TargetEC] = acc
		}
		acc.sum += r.FreshWeight
		acc.count++
	}

	// Ascending EC order makes the tie-break deterministic: the first
	// concentration with the maximum mean is the smallest one.
	ecs := make([]float64, 0, len(byEC))
	for ec := range byEC {
		ecs = append(ecs, ec)
	}
	sort.Float64s(ecs)

	best := BestEC{TargetEC: ecs[0]}
	first := byEC[ecs[0]]
	best.MeanFreshWeight = first.sum / float64(first.count)
	best.SampleCount = first.count

	for _, ec := range ecs[1:] {
		acc := byEC[ec]
		mean := acc.sum / float64(acc.count)
		if mean > best.MeanFreshWeight {
			best = BestEC{TargetEC: ec, MeanFreshWeight: mean, SampleCount: acc.count}
		}
	}

	return best, true
}

// OverallMean computes the mean of one field across the union of all
// readings. The second result is false when readings is empty.
func OverallMean(readings []domain.EnvironmentReading, field Field) (float64, bool) {
	if len(readings) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, r := range readings {
		switch field {
		case FieldTemperature:
			sum += r.Temperature
		case FieldHumidity:
			sum += r.Humidity
		case FieldPH:
			sum += r.PH
		case FieldEC:
			sum += r.EC
		}
	}

	return sum / float64(len(readings)), true
}
