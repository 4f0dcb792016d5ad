package dataset

import (
	"context"
	"errors"
	"time"

	"growdash/pkg/contracts/domain"
)

// Snapshot is one immutable load of the data directory. It is shared
// between all dashboard requests; nothing mutates it after Load returns.
type Snapshot struct {
	Environment map[domain.School][]domain.EnvironmentReading
	Growth      []domain.GrowthRecord
	LoadedAt    time.Time
}

// Load runs both discoveries against dir and assembles a snapshot.
// Partial data is not fatal: a snapshot is returned alongside any
// discovery errors so one missing input still renders the rest of the
// dashboard. Callers inspect the error with errors.Is for the sentinels.
func (l *Loader) Load(ctx context.Context, dir string) (*Snapshot, error) {
	environment, envErr := l.DiscoverEnvironment(ctx, dir)
	growth, growthErr := l.DiscoverGrowth(ctx, dir)

	snapshot := &Snapshot{
		Environment: environment,
		Growth:      growth,
		LoadedAt:    time.Now(),
	}

	return snapshot, errors.Join(envErr, growthErr)
}

// EnvironmentAll returns the union of all schools' readings ordered by
// school declaration order, then original row order. This is the order
// the combined CSV export uses.
func (s *Snapshot) EnvironmentAll() []domain.EnvironmentReading {
	var all []domain.EnvironmentReading
	for _, school := range domain.Schools {
		all = append(all, s.Environment[school.Name]...)
	}
	return all
}

// EnvironmentRows returns the total number of environment readings.
func (s *Snapshot) EnvironmentRows() int {
	total := 0
	for _, readings := range s.Environment {
		total += len(readings)
	}
	return total
}

// SchoolCount returns the number of schools with at least one reading.
func (s *Snapshot) SchoolCount() int {
	count := 0
	for _, readings := range s.Environment {
		if len(readings) > 0 {
			count++
		}
	}
	return count
}

// Empty reports whether the snapshot holds no data at all.
func (s *Snapshot) Empty() bool {
	return s.EnvironmentRows() == 0 && len(s.Growth) == 0
}

// Complete reports whether both datasets are present. An empty
// environment mapping or an empty growth collection is a hard stop
// for the dashboard, even when the other dataset loaded.
func (s *Snapshot) Complete() bool {
	return s.EnvironmentRows() > 0 && len(s.Growth) > 0
}
