package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// widgetFileCandidates are checked in order by FindWidgetsFile.
var widgetFileCandidates = []string{
	"widgets.yaml",
	"widgets.yml",
	"widgets.toml",
	".ariabox/widgets.yaml",
	".ariabox/widgets.toml",
	"*.widgets.yaml",
	"*.widgets.toml",
}

// DetectFormat picks the parser for a file by its extension. Anything that
// is not TOML is read as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// FindWidgetsFile returns the first widgets file found in dir, or "".
func FindWidgetsFile(dir string) string {
	for _, pattern := range widgetFileCandidates {
		if found := firstMatch(dir, pattern); found != "" {
			return found
		}
	}
	return ""
}

func firstMatch(dir, pattern string) string {
	if containsGlob(pattern) {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		if len(matches) > 0 {
			return matches[0]
		}
		return ""
	}
	p := filepath.Join(dir, pattern)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func containsGlob(pattern string) bool {
	for _, c := range pattern {
		if c == '*' || c == '?' || c == '[' {
			return true
		}
	}
	return false
}
