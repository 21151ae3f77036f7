package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `file = "sales.csv"
start = "2024-01-01"
regions = ["US", "EU"]
theme = "dark"
report_type = ["csv", "pdf"]
top = 5
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `file: sales.csv
start: "2024-01-01"
regions: [US, EU]
theme: dark
report_type: [csv, pdf]
top: 5
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{
  "file": "sales.csv",
  "start": "2024-01-01",
  "regions": ["US", "EU"],
  "theme": "dark",
  "report_type": ["csv", "pdf"],
  "top": 5
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := repo.LoadConfigFile(path)
			require.NoError(t, err)
			assert.Equal(t, "sales.csv", cfg.File)
			assert.Equal(t, "2024-01-01", cfg.Start)
			assert.Equal(t, []string{"US", "EU"}, cfg.Regions)
			assert.Equal(t, "dark", cfg.Theme)
			assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
			assert.Equal(t, 5, cfg.TopN)
		})
	}
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	repo := NewConfigRepository()
	path := writeConfig(t, "config.ini", "file=sales.csv\n")

	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing config file")
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()
	dir := t.TempDir()
	_, err := repo.LoadConfigFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
