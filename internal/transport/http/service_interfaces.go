package http

import (
	"context"
	"io"

	"growdash/internal/services"
	"growdash/pkg/contracts/domain"
)

// DashboardServiceInterface defines the view assembly operations the
// dashboard handler depends on.
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*services.OverviewResponse, error)
	Environment(ctx context.Context, school domain.School) (*services.EnvironmentResponse, error)
	Growth(ctx context.Context, school domain.School) (*services.GrowthResponse, error)
	Schools(ctx context.Context) []domain.SchoolInfo
	Reload(ctx context.Context) (*services.ReloadResponse, error)
}

// ExportServiceInterface defines the download operations the export
// handler depends on.
type ExportServiceInterface interface {
	EnvironmentCSV(ctx context.Context, w io.Writer) (int, error)
	GrowthXLSX(ctx context.Context, w io.Writer) (int, error)
	GrowthSummaryCSV(ctx context.Context, w io.Writer) error
}
