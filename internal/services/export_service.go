package services

import (
	"context"
	"io"
	"log/slog"

	"growdash/internal/analytics"
	"growdash/internal/dataset"
	"growdash/internal/exporter"
	"growdash/internal/infrastructure"
	"growdash/internal/store"
)

// ExportService streams the combined dataset downloads. It reads the
// same cached snapshot the dashboard views use, so an export always
// matches what the charts show.
type ExportService struct {
	store   *store.Store
	metrics *infrastructure.BusinessMetrics
	logger  *slog.Logger
}

// NewExportService creates an export service. metrics may be nil.
func NewExportService(st *store.Store, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ExportService{
		store:   st,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "export_service")),
	}
}

// EnvironmentCSV writes the combined environment CSV to w and returns
// the number of exported rows.
func (s *ExportService) EnvironmentCSV(ctx context.Context, w io.Writer) (int, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	readings := snap.EnvironmentAll()
	if err := exporter.WriteEnvironmentCSV(w, readings); err != nil {
		return 0, err
	}

	s.metrics.RecordExport(ctx, "environment_csv")
	s.logger.InfoContext(ctx, "environment export served",
		slog.Int("rows", len(readings)))

	return len(readings), nil
}

// GrowthXLSX writes the combined growth workbook to w and returns the
// number of exported rows.
func (s *ExportService) GrowthXLSX(ctx context.Context, w io.Writer) (int, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	if err := exporter.WriteGrowthXLSX(w, snap.Growth); err != nil {
		return 0, err
	}

	s.metrics.RecordExport(ctx, "growth_xlsx")
	s.logger.InfoContext(ctx, "growth export served",
		slog.Int("rows", len(snap.Growth)))

	return len(snap.Growth), nil
}

// GrowthSummaryCSV writes the per-school growth summary with the best
// EC row to w.
func (s *ExportService) GrowthSummaryCSV(ctx context.Context, w io.Writer) error {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	means := analytics.GrowthMeans(snap.Growth)
	var best *analytics.BestEC
	if b, ok := analytics.BestByWeight(snap.Growth); ok {
		best = &b
	}

	if err := exporter.WriteGrowthSummaryCSV(w, means, best); err != nil {
		return err
	}

	s.metrics.RecordExport(ctx, "growth_summary_csv")
	return nil
}

func (s *ExportService) snapshot(ctx context.Context) (*dataset.Snapshot, error) {
	snap, err := s.store.Get(ctx)
	if snap == nil || !snap.Complete() {
		if err != nil {
			return nil, err
		}
		return nil, dataset.ErrEmptyDataset
	}
	return snap, nil
}
