package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"widgets.yaml", FormatYAML},
		{"widgets.yml", FormatYAML},
		{"widgets.toml", FormatTOML},
		{"WIDGETS.TOML", FormatTOML},
		{"widgets", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestFindWidgetsFile(t *testing.T) {
	t.Run("empty directory finds nothing", func(t *testing.T) {
		assert.Empty(t, FindWidgetsFile(t.TempDir()))
	})

	t.Run("prefers widgets.yaml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "widgets.toml"), nil, 0o644)
		os.WriteFile(filepath.Join(dir, "widgets.yaml"), nil, 0o644)
		assert.Equal(t, filepath.Join(dir, "widgets.yaml"), FindWidgetsFile(dir))
	})

	t.Run("finds the project directory", func(t *testing.T) {
		dir := t.TempDir()
		os.MkdirAll(filepath.Join(dir, ".ariabox"), 0o755)
		os.WriteFile(filepath.Join(dir, ".ariabox", "widgets.toml"), nil, 0o644)
		assert.Equal(t, filepath.Join(dir, ".ariabox", "widgets.toml"), FindWidgetsFile(dir))
	})

	t.Run("matches glob patterns", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "editor.widgets.yaml"), nil, 0o644)
		assert.Equal(t, filepath.Join(dir, "editor.widgets.yaml"), FindWidgetsFile(dir))
	})
}

func TestDefaultWidgetsPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "widgets.yaml"), DefaultWidgetsPath(dir))

	os.WriteFile(filepath.Join(dir, "widgets.toml"), nil, 0o644)
	assert.Equal(t, filepath.Join(dir, "widgets.toml"), DefaultWidgetsPath(dir))
}
