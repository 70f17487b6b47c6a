package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (t.Chdir requires Go 1.24+.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadSettingsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "console", s.OutputFormat)
	assert.Equal(t, ".", s.ReportDir)
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "output_format: json\nreport_dir: reports\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "finutil.yaml"), []byte(content), 0644))
	chdir(t, dir)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "json", s.OutputFormat)
	assert.Equal(t, "reports", s.ReportDir)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FINUTIL_OUTPUT_FORMAT", "csv")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "csv", s.OutputFormat)
}
