package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"growdash/internal/analytics"
	"growdash/internal/dataset"
	"growdash/internal/store"
	"growdash/pkg/contracts/domain"
	"growdash/pkg/contracts/events"
)

// ReloadNotifier broadcasts a reload event to connected dashboard clients.
type ReloadNotifier interface {
	BroadcastDataReloaded(payload events.DataReloaded)
}

// DashboardService assembles the three dashboard views from the cached
// dataset snapshot. All aggregation is delegated to the analytics
// package; this service only selects, orders, and packages.
type DashboardService struct {
	store    *store.Store
	notifier ReloadNotifier
	logger   *slog.Logger
}

// NewDashboardService creates a dashboard service. notifier may be nil
// when no websocket hub is running (the report CLI, most tests).
func NewDashboardService(st *store.Store, notifier ReloadNotifier, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &DashboardService{
		store:    st,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "dashboard_service")),
	}
}

// OverviewResponse is the payload of GET /api/overview.
type OverviewResponse struct {
	Metrics          OverviewMetrics                  `json:"metrics"`
	EnvironmentMeans []analytics.EnvironmentGroupMean `json:"environment_means"`
	GrowthMeans      []analytics.GrowthGroupMean      `json:"growth_means"`
	BestEC           *analytics.BestEC                `json:"best_ec,omitempty"`
	ECComparison     []analytics.ECComparisonRow      `json:"ec_comparison"`
	LoadedAt         time.Time                        `json:"loaded_at"`
}

// OverviewMetrics holds the headline metric cards.
type OverviewMetrics struct {
	Schools         int     `json:"schools"`
	EnvironmentRows int     `json:"environment_rows"`
	GrowthSamples   int     `json:"growth_samples"`
	MeanTemperature float64 `json:"mean_temperature"`
	MeanHumidity    float64 `json:"mean_humidity"`
	MeanPH          float64 `json:"mean_ph"`
	MeanEC          float64 `json:"mean_ec"`
}

// EnvironmentResponse is the payload of GET /api/environment.
type EnvironmentResponse struct {
	School   domain.School                    `json:"school"`
	Means    []analytics.EnvironmentGroupMean `json:"means"`
	Series   []analytics.SchoolSeries         `json:"series"`
	LoadedAt time.Time                        `json:"loaded_at"`
}

// GrowthResponse is the payload of GET /api/growth.
type GrowthResponse struct {
	School    domain.School               `json:"school"`
	Means     []analytics.GrowthGroupMean `json:"means"`
	BestEC    *analytics.BestEC           `json:"best_ec,omitempty"`
	BoxSeries []analytics.WeightSeries    `json:"box_series"`
	Scatter   []analytics.ScatterPoint    `json:"scatter"`
	LoadedAt  time.Time                   `json:"loaded_at"`
}

// ReloadResponse is the payload of POST /api/data/reload.
type ReloadResponse struct {
	EnvironmentRows int       `json:"environment_rows"`
	GrowthRows      int       `json:"growth_rows"`
	Schools         int       `json:"schools"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// Overview assembles the headline view across all schools.
func (s *DashboardService) Overview(ctx context.Context) (*OverviewResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	all := snap.EnvironmentAll()
	resp := &OverviewResponse{
		Metrics: OverviewMetrics{
			Schools:         snap.SchoolCount(),
			EnvironmentRows: len(all),
			GrowthSamples:   len(snap.Growth),
		},
		EnvironmentMeans: analytics.EnvironmentMeans(snap.Environment),
		GrowthMeans:      analytics.GrowthMeans(snap.Growth),
		ECComparison:     analytics.ECComparison(snap.Environment),
		LoadedAt:         snap.LoadedAt,
	}

	resp.Metrics.MeanTemperature, _ = analytics.OverallMean(all, analytics.FieldTemperature)
	resp.Metrics.MeanHumidity, _ = analytics.OverallMean(all, analytics.FieldHumidity)
	resp.Metrics.MeanPH, _ = analytics.OverallMean(all, analytics.FieldPH)
	resp.Metrics.MeanEC, _ = analytics.OverallMean(all, analytics.FieldEC)

	if best, ok := analytics.BestByWeight(snap.Growth); ok {
		resp.BestEC = &best
	}

	return resp, nil
}

// Environment assembles the environment view. school selects one school
// or, with AllSchools, every school.
func (s *DashboardService) Environment(ctx context.Context, school domain.School) (*EnvironmentResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &EnvironmentResponse{
		School:   school,
		Means:    analytics.EnvironmentMeans(snap.Environment),
		Series:   analytics.TimeSeries(snap.Environment, school),
		LoadedAt: snap.LoadedAt,
	}, nil
}

// Growth assembles the growth outcome view.
func (s *DashboardService) Growth(ctx context.Context, school domain.School) (*GrowthResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resp := &GrowthResponse{
		School:    school,
		Means:     analytics.GrowthMeans(snap.Growth),
		BoxSeries: analytics.FreshWeightSeries(snap.Growth, school),
		Scatter:   analytics.ScatterPoints(snap.Growth, school),
		LoadedAt:  snap.LoadedAt,
	}

	if best, ok := analytics.BestByWeight(snap.Growth); ok {
		resp.BestEC = &best
	}

	return resp, nil
}

// Schools returns the fixed school table, in declaration order.
func (s *DashboardService) Schools(ctx context.Context) []domain.SchoolInfo {
	return domain.Schools
}

// Reload drops the cached snapshot, loads a fresh one, and notifies
// connected dashboards on success.
func (s *DashboardService) Reload(ctx context.Context) (*ReloadResponse, error) {
	snap, err := s.store.Reload(ctx)
	if snap == nil || !snap.Complete() {
		if err != nil {
			return nil, fmt.Errorf("reload dataset: %w", err)
		}
		return nil, dataset.ErrEmptyDataset
	}

	resp := &ReloadResponse{
		EnvironmentRows: snap.EnvironmentRows(),
		GrowthRows:      len(snap.Growth),
		Schools:         snap.SchoolCount(),
		LoadedAt:        snap.LoadedAt,
	}

	if s.notifier != nil {
		s.notifier.BroadcastDataReloaded(events.DataReloaded{
			EnvironmentRows: resp.EnvironmentRows,
			GrowthRows:      resp.GrowthRows,
			Schools:         resp.Schools,
			LoadedAt:        resp.LoadedAt,
		})
	}

	s.logger.InfoContext(ctx, "dataset reloaded",
		slog.Int("environment_rows", resp.EnvironmentRows),
		slog.Int("growth_rows", resp.GrowthRows),
		slog.Int("schools", resp.Schools))

	return resp, nil
}

// snapshot fetches the cached snapshot. An empty environment mapping or
// an empty growth collection is a hard stop for every view: the load
// error surfaces when there is one, otherwise the empty-dataset sentinel.
func (s *DashboardService) snapshot(ctx context.Context) (*dataset.Snapshot, error) {
	snap, err := s.store.Get(ctx)
	if snap == nil || !snap.Complete() {
		if err != nil {
			return nil, err
		}
		return nil, dataset.ErrEmptyDataset
	}
	return snap, nil
}
