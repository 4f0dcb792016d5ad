package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)
	require.NotNil(t, paths)

	assert.NotEmpty(t, paths.ExecutableDir)
	assert.True(t, filepath.IsAbs(paths.ExecutableDir))

	assert.Equal(t, filepath.Join(paths.ExecutableDir, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "web"), paths.WebDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "web", "static"), paths.StaticDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "exports"), paths.ExportsDir)
}

func TestEnsureDirectories(t *testing.T) {
	tempDir := t.TempDir()

	paths := &Paths{
		ExecutableDir: tempDir,
		DataDir:       filepath.Join(tempDir, "data"),
		WebDir:        filepath.Join(tempDir, "web"),
		StaticDir:     filepath.Join(tempDir, "web", "static"),
		LogsDir:       filepath.Join(tempDir, "logs"),
		ExportsDir:    filepath.Join(tempDir, "exports"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.LogsDir, paths.ExportsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected directory %s to exist", dir)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories
	require.NoError(t, paths.EnsureDirectories())
}

func TestPathHelperMethods(t *testing.T) {
	paths := &Paths{
		ExecutableDir: "/opt/growdash",
		DataDir:       "/opt/growdash/data",
		WebDir:        "/opt/growdash/web",
		StaticDir:     "/opt/growdash/web/static",
		LogsDir:       "/opt/growdash/logs",
		ExportsDir:    "/opt/growdash/exports",
	}

	assert.Equal(t, "/opt/growdash/data/하늘고_환경데이터.csv", paths.GetDataFilePath("하늘고_환경데이터.csv"))
	assert.Equal(t, "/opt/growdash/web/index.html", paths.GetWebFilePath("index.html"))
	assert.Equal(t, "/opt/growdash/web/static/app.js", paths.GetStaticFilePath("app.js"))
	assert.Equal(t, "/opt/growdash/logs/app.log", paths.GetLogPath("app.log"))
	assert.Equal(t, "/opt/growdash/exports/growth_summary.csv", paths.GetExportPath("growth_summary.csv"))
	assert.Equal(t, "/opt/growdash/configs", paths.GetRelativePath("configs"))
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "present.csv")
	require.NoError(t, os.WriteFile(existing, []byte("data"), 0644))

	assert.True(t, FileExists(existing))
	assert.False(t, FileExists(filepath.Join(tempDir, "absent.csv")))
}
