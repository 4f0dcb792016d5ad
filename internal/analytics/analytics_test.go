package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growdash/pkg/contracts/domain"
)

func envReading(school domain.School, temp, humidity, ph, ec float64) domain.EnvironmentReading {
	return domain.EnvironmentReading{
		Time:        "2024-05-01 09:00",
		Temperature: temp,
		Humidity:    humidity,
		PH:          ph,
		EC:          ec,
		School:      school,
	}
}

func growthRecord(school domain.School, targetEC float64, leaves int, shoot, weight float64) domain.GrowthRecord {
	return domain.GrowthRecord{
		School:      school,
		LeafCount:   leaves,
		ShootLength: shoot,
		FreshWeight: weight,
		TargetEC:    targetEC,
	}
}

func TestEnvironmentMeans(t *testing.T) {
	readings := map[domain.School][]domain.EnvironmentReading{
		domain.SchoolSongdo: {
			envReading(domain.SchoolSongdo, 19.0, 60.0, 6.0, 0.9),
			envReading(domain.SchoolSongdo, 21.0, 62.0, 6.2, 1.1),
		},
		domain.SchoolHaneul: {
			envReading(domain.SchoolHaneul, 25.0, 55.0, 5.9, 2.0),
		},
	}

	means := EnvironmentMeans(readings)
	require.Len(t, means, 2)

	// Declaration order: 송도고 first.
	assert.Equal(t, domain.SchoolSongdo, means[0].School)
	assert.Equal(t, 2, means[0].Count)
	assert.InDelta(t, 20.0, means[0].Temperature, 1e-9)
	assert.InDelta(t, 61.0, means[0].Humidity, 1e-9)
	assert.InDelta(t, 6.1, means[0].PH, 1e-9)
	assert.InDelta(t, 1.0, means[0].EC, 1e-9)
	assert.InDelta(t, 1.0, means[0].TargetEC, 1e-9)

	assert.Equal(t, domain.SchoolHaneul, means[1].School)
	assert.InDelta(t, 25.0, means[1].Temperature, 1e-9)
}

func TestEnvironmentMeans_EmptyGroupOmitted(t *testing.T) {
	readings := map[domain.School][]domain.EnvironmentReading{
		domain.SchoolAra:     {envReading(domain.SchoolAra, 20.0, 50.0, 6.0, 4.0)},
		domain.SchoolDongsan: {},
	}

	means := EnvironmentMeans(readings)
	require.Len(t, means, 1)
	assert.Equal(t, domain.SchoolAra, means[0].School)
}

func TestEnvironmentMeans_Empty(t *testing.T) {
	assert.Empty(t, EnvironmentMeans(nil))
	assert.Empty(t, EnvironmentMeans(map[domain.School][]domain.EnvironmentReading{}))
}

func TestGrowthMeans(t *testing.T) {
	records := []domain.GrowthRecord{
		growthRecord(domain.SchoolHaneul, 2.0, 10, 80.0, 6.0),
		growthRecord(domain.SchoolHaneul, 2.0, 14, 100.0, 8.0),
		growthRecord(domain.SchoolSongdo, 1.0, 12, 90.0, 5.0),
	}

	means := GrowthMeans(records)
	require.Len(t, means, 2)

	assert.Equal(t, domain.SchoolSongdo, means[0].School)
	assert.Equal(t, 1, means[0].Count)

	assert.Equal(t, domain.SchoolHaneul, means[1].School)
	assert.Equal(t, 2, means[1].Count)
	assert.InDelta(t, 12.0, means[1].LeafCount, 1e-9)
	assert.InDelta(t, 90.0, means[1].ShootLength, 1e-9)
	assert.InDelta(t, 7.0, means[1].FreshWeight, 1e-9)
}

func TestBestByWeight(t *testing.T) {
	records := []domain.GrowthRecord{
		growthRecord(domain.SchoolSongdo, 1.0, 10, 80.0, 5.0),
		growthRecord(domain.SchoolHaneul, 2.0, 12, 90.0, 8.0),
		growthRecord(domain.SchoolAra, 4.0, 8, 70.0, 3.0),
	}

	best, ok := BestByWeight(records)
	require.True(t, ok)
	assert.InDelta(t, 2.0, best.TargetEC, 1e-9)
	assert.InDelta(t, 8.0, best.MeanFreshWeight, 1e-9)
	assert.Equal(t, 1, best.SampleCount)
}

func TestBestByWeight_TieBreaksToSmallestEC(t *testing.T) {
	records := []domain.GrowthRecord{
		growthRecord(domain.SchoolHaneul, 2.0, 12, 90.0, 6.0),
		growthRecord(domain.SchoolSongdo, 1.0, 10, 80.0, 6.0),
	}

	best, ok := BestByWeight(records)
	require.True(t, ok)
	assert.InDelta(t, 1.0, best.TargetEC, 1e-9)
	assert.InDelta(t, 6.0, best.MeanFreshWeight, 1e-9)
}

func TestBestByWeight_Empty(t *testing.T) {
	_, ok := BestByWeight(nil)
	assert.False(t, ok)
}

func TestOverallMean(t *testing.T) {
	readings := []domain.EnvironmentReading{
		envReading(domain.SchoolSongdo, 20.0, 60.0, 6.0, 1.0),
		envReading(domain.SchoolHaneul, 26.0, 50.0, 6.4, 2.0),
	}

	tests := []struct {
		field Field
		want  float64
	}{
		{field: FieldTemperature, want: 23.0},
		{field: FieldHumidity, want: 55.0},
		{field: FieldPH, want: 6.2},
		{field: FieldEC, want: 1.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got, ok := OverallMean(readings, tt.field)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestOverallMean_Empty(t *testing.T) {
	_, ok := OverallMean(nil, FieldTemperature)
	assert.False(t, ok)
}
