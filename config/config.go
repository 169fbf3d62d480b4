package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/xid"
)

const AppName = "ariabox"

// Widget kinds a definition file may declare.
const (
	KindListbox = "listbox"
	KindRadio   = "radio"
	KindToolbar = "toolbar"
	KindMenu    = "menu"
	KindMenuBar = "menubar"
	KindTabs    = "tabs"
	KindButton  = "button"
)

// Kinds lists the top-level widget kinds in display order.
var Kinds = []string{KindListbox, KindRadio, KindToolbar, KindMenuBar, KindMenu, KindTabs}

type ViewportConfig struct {
	MinBuffer int `koanf:"min-buffer"`
	MaxBuffer int `koanf:"max-buffer"`
}

// GlobalConfig holds the defaults applied to every widget that leaves an
// option unset.
type GlobalConfig struct {
	Wrap           bool           `koanf:"wrap"`
	SkipDisabled   bool           `koanf:"skip-disabled"`
	FocusMode      string         `koanf:"focus-mode"`
	SelectionMode  string         `koanf:"selection-mode"`
	TextDirection  string         `koanf:"text-direction"`
	TypeaheadDelay time.Duration  `koanf:"typeahead-delay"`
	HoverDelay     time.Duration  `koanf:"hover-delay"`
	Viewport       ViewportConfig `koanf:"viewport"`
}

// ItemDef is one option, tab, menu item or toolbar widget. Nested items
// form a submenu under a menu item or a radio group inside a toolbar.
type ItemDef struct {
	ID         string    `koanf:"id" yaml:"id,omitempty"`
	Label      string    `koanf:"label" yaml:"label"`
	Value      string    `koanf:"value" yaml:"value,omitempty"`
	Kind       string    `koanf:"kind" yaml:"kind,omitempty"`
	Disabled   bool      `koanf:"disabled" yaml:"disabled,omitempty"`
	Selected   bool      `koanf:"selected" yaml:"selected,omitempty"`
	SearchTerm string    `koanf:"search-term" yaml:"search-term,omitempty"`
	Items      []ItemDef `koanf:"items" yaml:"items,omitempty"`
}

// WidgetDef declares one widget. Pointer fields are unset until Merge
// fills them from the global defaults.
type WidgetDef struct {
	Name           string         `koanf:"name" yaml:"name"`
	Kind           string         `koanf:"kind" yaml:"kind"`
	Label          string         `koanf:"label" yaml:"label,omitempty"`
	Orientation    string         `koanf:"orientation" yaml:"orientation,omitempty"`
	TextDirection  string         `koanf:"text-direction" yaml:"text-direction,omitempty"`
	FocusMode      string         `koanf:"focus-mode" yaml:"focus-mode,omitempty"`
	SelectionMode  string         `koanf:"selection-mode" yaml:"selection-mode,omitempty"`
	Multi          bool           `koanf:"multi" yaml:"multi,omitempty"`
	Readonly       bool           `koanf:"readonly" yaml:"readonly,omitempty"`
	Disabled       bool           `koanf:"disabled" yaml:"disabled,omitempty"`
	Wrap           *bool          `koanf:"wrap" yaml:"wrap,omitempty"`
	SkipDisabled   *bool          `koanf:"skip-disabled" yaml:"skip-disabled,omitempty"`
	TypeaheadDelay *time.Duration `koanf:"typeahead-delay" yaml:"typeahead-delay,omitempty"`
	HoverDelay     *time.Duration `koanf:"hover-delay" yaml:"hover-delay,omitempty"`
	Items          []ItemDef      `koanf:"items" yaml:"items,omitempty"`
}

type WidgetsFile struct {
	Widgets []WidgetDef `koanf:"widgets"`
}

type Config struct {
	Global  GlobalConfig
	Widgets WidgetsFile
}

// Defaults returns the global configuration used when no global file sets
// an option.
func Defaults() GlobalConfig {
	return GlobalConfig{
		Wrap:           true,
		SkipDisabled:   true,
		FocusMode:      "roving",
		SelectionMode:  "explicit",
		TextDirection:  "ltr",
		TypeaheadDelay: 500 * time.Millisecond,
		HoverDelay:     200 * time.Millisecond,
		Viewport:       ViewportConfig{MinBuffer: 1, MaxBuffer: 5},
	}
}

func Load(globalPath, widgetsPath string) (*Config, error) {
	cfg := &Config{Global: Defaults()}

	if err := loadFile(globalPath, &cfg.Global); err != nil {
		return nil, fmt.Errorf("load %s: %w", globalPath, err)
	}
	if err := loadFile(widgetsPath, &cfg.Widgets); err != nil {
		return nil, fmt.Errorf("load %s: %w", widgetsPath, err)
	}

	return cfg, nil
}

// loadFile parses a YAML or TOML file into target, silently skipping
// missing files so callers don't need to check existence first.
func loadFile(path string, target any) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var parser koanf.Parser = yaml.Parser()
	if DetectFormat(path) == FormatTOML {
		parser = TOMLParser()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return err
	}
	return k.Unmarshal("", target)
}

// Merge fills every unset widget option from the global defaults and
// assigns generated ids to items without one. It returns the merged
// definitions and leaves c unchanged.
func (c *Config) Merge() []WidgetDef {
	g := c.Global
	out := make([]WidgetDef, len(c.Widgets.Widgets))
	for i, w := range c.Widgets.Widgets {
		if w.Name == "" {
			w.Name = fmt.Sprintf("%s-%d", w.Kind, i+1)
		}
		if w.Label == "" {
			w.Label = w.Name
		}
		if w.Orientation == "" {
			w.Orientation = defaultOrientation(w.Kind)
		}
		if w.TextDirection == "" {
			w.TextDirection = g.TextDirection
		}
		if w.FocusMode == "" {
			w.FocusMode = g.FocusMode
		}
		if w.SelectionMode == "" {
			w.SelectionMode = defaultSelectionMode(w.Kind, g.SelectionMode)
		}
		if w.Wrap == nil {
			w.Wrap = ptr(g.Wrap)
		}
		if w.SkipDisabled == nil {
			w.SkipDisabled = ptr(g.SkipDisabled)
		}
		if w.TypeaheadDelay == nil {
			w.TypeaheadDelay = ptr(g.TypeaheadDelay)
		}
		if w.HoverDelay == nil {
			w.HoverDelay = ptr(g.HoverDelay)
		}
		w.Items = fillItems(w.Items)
		out[i] = w
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func defaultOrientation(kind string) string {
	switch kind {
	case KindToolbar, KindMenuBar, KindTabs:
		return "horizontal"
	}
	return "vertical"
}

// Radio groups and tablists select on focus unless told otherwise.
func defaultSelectionMode(kind, global string) string {
	switch kind {
	case KindRadio, KindTabs:
		return "follow"
	}
	return global
}

func fillItems(items []ItemDef) []ItemDef {
	if items == nil {
		return nil
	}
	out := make([]ItemDef, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = xid.New().String()
		}
		if it.Value == "" {
			it.Value = it.Label
		}
		it.Items = fillItems(it.Items)
		out[i] = it
	}
	return out
}

// FindWidget returns the definition with the given name from defs. Look
// up in the slice returned by Merge, since each Merge generates fresh ids
// for items that have none.
func FindWidget(defs []WidgetDef, name string) (WidgetDef, bool) {
	for _, w := range defs {
		if w.Name == name {
			return w, true
		}
	}
	return WidgetDef{}, false
}

// DefaultGlobalPath returns the global config file under the XDG config
// directory.
func DefaultGlobalPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultWidgetsPath returns the widgets file in dir, preferring any
// existing candidate.
func DefaultWidgetsPath(dir string) string {
	if found := FindWidgetsFile(dir); found != "" {
		return found
	}
	return filepath.Join(dir, "widgets.yaml")
}
