package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growdash/internal/dataset"
	apierrors "growdash/internal/errors"
	"growdash/internal/services"
	"growdash/internal/shared/testutil"
	"growdash/pkg/contracts/domain"
)

// stubDashboardService returns canned responses or a fixed error.
type stubDashboardService struct {
	err         error
	lastSchool  domain.School
	reloadCalls int
}

func (s *stubDashboardService) Overview(ctx context.Context) (*services.OverviewResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.OverviewResponse{
		Metrics:  services.OverviewMetrics{Schools: 4, EnvironmentRows: 6, GrowthSamples: 5},
		LoadedAt: time.Now(),
	}, nil
}

func (s *stubDashboardService) Environment(ctx context.Context, school domain.School) (*services.EnvironmentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastSchool = school
	return &services.EnvironmentResponse{School: school}, nil
}

func (s *stubDashboardService) Growth(ctx context.Context, school domain.School) (*services.GrowthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastSchool = school
	return &services.GrowthResponse{School: school}, nil
}

func (s *stubDashboardService) Schools(ctx context.Context) []domain.SchoolInfo {
	return domain.Schools
}

func (s *stubDashboardService) Reload(ctx context.Context) (*services.ReloadResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.reloadCalls++
	return &services.ReloadResponse{EnvironmentRows: 6, GrowthRows: 5, Schools: 4, LoadedAt: time.Now()}, nil
}

func newDashboardServer(t *testing.T, svc *stubDashboardService) *httptest.Server {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := apierrors.NewErrorHandler(logger, false)
	handler := NewDashboardHandler(svc, logger, errorHandler)

	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestOverviewEndpoint(t *testing.T) {
	srv := newDashboardServer(t, &stubDashboardService{})

	resp, err := http.Get(srv.URL + "/overview")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body services.OverviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body.Metrics.Schools)
}

func TestOverviewEndpointDatasetErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantType    string
		wantStatus  int
	}{
		{
			name:       "missing directory",
			err:        fmt.Errorf("load: %w", dataset.ErrMissingDirectory),
			wantType:   "/errors/dataset/missing-directory",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing spreadsheet",
			err:        dataset.ErrMissingSpreadsheet,
			wantType:   "/errors/dataset/missing-spreadsheet",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty dataset",
			err:        dataset.ErrEmptyDataset,
			wantType:   "/errors/dataset/empty",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newDashboardServer(t, &stubDashboardService{err: tt.err})

			resp, err := http.Get(srv.URL + "/overview")
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

			var problem map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
			assert.Equal(t, tt.wantType, problem["type"])
		})
	}
}

func TestEnvironmentEndpointSchoolParam(t *testing.T) {
	t.Run("default is all schools", func(t *testing.T) {
		svc := &stubDashboardService{}
		srv := newDashboardServer(t, svc)

		resp, err := http.Get(srv.URL + "/environment")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.School(domain.AllSchools), svc.lastSchool)
	})

	t.Run("known school", func(t *testing.T) {
		svc := &stubDashboardService{}
		srv := newDashboardServer(t, svc)

		resp, err := http.Get(srv.URL + "/environment?school=" + url.QueryEscape("송도고"))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.SchoolSongdo, svc.lastSchool)
	})

	t.Run("NFD-encoded school name", func(t *testing.T) {
		svc := &stubDashboardService{}
		srv := newDashboardServer(t, svc)

		// 송도고 decomposed into Jamo, as macOS filesystems and some
		// browsers emit it; the validator must normalize before lookup.
		nfd := "송도고"
		resp, err := http.Get(srv.URL + "/environment?school=" + url.QueryEscape(nfd))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.SchoolSongdo, svc.lastSchool)
	})

	t.Run("unknown school", func(t *testing.T) {
		srv := newDashboardServer(t, &stubDashboardService{})

		resp, err := http.Get(srv.URL + "/growth?school=" + url.QueryEscape("제주고"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "/errors/validation")
	})
}

func TestSchoolsEndpoint(t *testing.T) {
	srv := newDashboardServer(t, &stubDashboardService{})

	resp, err := http.Get(srv.URL + "/schools")
	require.NoError(t, err)
	defer resp.Body.Close()

	var schools []domain.SchoolInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schools))
	require.Len(t, schools, 4)
	assert.Equal(t, domain.SchoolSongdo, schools[0].Name)
	assert.Equal(t, "#4C72B0", schools[0].Color)
}

func TestReloadEndpoint(t *testing.T) {
	svc := &stubDashboardService{}
	srv := newDashboardServer(t, svc)

	resp, err := http.Post(srv.URL+"/data/reload", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.reloadCalls)

	var body services.ReloadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 6, body.EnvironmentRows)
}

func TestReloadEndpointRejectsGet(t *testing.T) {
	srv := newDashboardServer(t, &stubDashboardService{})

	resp, err := http.Get(srv.URL + "/data/reload")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
