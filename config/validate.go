package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownKind  = errors.New("unknown kind")
	ErrInvalidValue = errors.New("invalid value")
)

var (
	orientations   = []string{"vertical", "horizontal"}
	textDirections = []string{"ltr", "rtl"}
	focusModes     = []string{"roving", "activedescendant"}
	selectionModes = []string{"follow", "explicit"}
)

func checkEnum(errs *[]error, where, field, value string, allowed []string) {
	if value != "" && !slices.Contains(allowed, value) {
		*errs = append(*errs, fmt.Errorf("%s: %s %q: %w", where, field, value, ErrInvalidValue))
	}
}

// Validate reports every problem in the global options and widget
// definitions. The result is nil or an errors.Join of all problems.
func (c *Config) Validate() error {
	var errs []error

	g := c.Global
	checkEnum(&errs, "global", "focus-mode", g.FocusMode, focusModes)
	checkEnum(&errs, "global", "selection-mode", g.SelectionMode, selectionModes)
	checkEnum(&errs, "global", "text-direction", g.TextDirection, textDirections)
	if g.TypeaheadDelay < 0 {
		errs = append(errs, fmt.Errorf("global: typeahead-delay %s: %w", g.TypeaheadDelay, ErrInvalidValue))
	}
	if g.HoverDelay < 0 {
		errs = append(errs, fmt.Errorf("global: hover-delay %s: %w", g.HoverDelay, ErrInvalidValue))
	}
	if g.Viewport.MinBuffer < 0 || g.Viewport.MaxBuffer < g.Viewport.MinBuffer {
		errs = append(errs, fmt.Errorf("global: viewport buffer %d..%d: %w",
			g.Viewport.MinBuffer, g.Viewport.MaxBuffer, ErrInvalidValue))
	}

	seen := make(map[string]bool)
	for i, w := range c.Widgets.Widgets {
		where := fmt.Sprintf("widget %d", i+1)
		if w.Name != "" {
			where = fmt.Sprintf("widget %q", w.Name)
			if seen[w.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name: %w", where, ErrInvalidValue))
			}
			seen[w.Name] = true
		}
		errs = append(errs, validateWidget(where, w)...)
	}

	return errors.Join(errs...)
}

func validateWidget(where string, w WidgetDef) []error {
	var errs []error
	if !slices.Contains(Kinds, w.Kind) {
		return append(errs, fmt.Errorf("%s: %w %q", where, ErrUnknownKind, w.Kind))
	}
	checkEnum(&errs, where, "orientation", w.Orientation, orientations)
	checkEnum(&errs, where, "text-direction", w.TextDirection, textDirections)
	checkEnum(&errs, where, "focus-mode", w.FocusMode, focusModes)
	checkEnum(&errs, where, "selection-mode", w.SelectionMode, selectionModes)
	if w.Multi && w.Kind != KindListbox {
		errs = append(errs, fmt.Errorf("%s: multi is only supported by listbox: %w", where, ErrInvalidValue))
	}
	if w.TypeaheadDelay != nil && *w.TypeaheadDelay < 0 {
		errs = append(errs, fmt.Errorf("%s: typeahead-delay %s: %w", where, *w.TypeaheadDelay, ErrInvalidValue))
	}
	if w.HoverDelay != nil && *w.HoverDelay < 0 {
		errs = append(errs, fmt.Errorf("%s: hover-delay %s: %w", where, *w.HoverDelay, ErrInvalidValue))
	}

	ids := make(map[string]bool)
	var walk func(items []ItemDef, depth int)
	walk = func(items []ItemDef, depth int) {
		for _, it := range items {
			if it.ID != "" {
				if ids[it.ID] {
					errs = append(errs, fmt.Errorf("%s: duplicate item id %q: %w", where, it.ID, ErrInvalidValue))
				}
				ids[it.ID] = true
			}
			if it.Label == "" && it.Value == "" {
				errs = append(errs, fmt.Errorf("%s: item without label or value: %w", where, ErrInvalidValue))
			}
			errs = append(errs, validateItemKind(where, w.Kind, it, depth)...)
			walk(it.Items, depth+1)
		}
	}
	walk(w.Items, 0)
	return errs
}

// validateItemKind checks where nested items and item kinds are allowed:
// menus nest to any depth, toolbars hold buttons and one level of radio
// groups, the rest are flat.
func validateItemKind(where, kind string, it ItemDef, depth int) []error {
	var errs []error
	switch kind {
	case KindMenu, KindMenuBar:
		if it.Kind != "" {
			errs = append(errs, fmt.Errorf("%s: item %q: %w %q", where, it.Label, ErrUnknownKind, it.Kind))
		}
	case KindToolbar:
		switch {
		case depth > 0 && (it.Kind != "" || len(it.Items) > 0):
			errs = append(errs, fmt.Errorf("%s: item %q: toolbar radio groups do not nest: %w", where, it.Label, ErrInvalidValue))
		case depth == 0 && it.Kind != "" && it.Kind != KindButton && it.Kind != KindRadio:
			errs = append(errs, fmt.Errorf("%s: item %q: %w %q", where, it.Label, ErrUnknownKind, it.Kind))
		case depth == 0 && it.Kind == KindRadio && len(it.Items) == 0:
			errs = append(errs, fmt.Errorf("%s: radio group %q has no items: %w", where, it.Label, ErrInvalidValue))
		case depth == 0 && it.Kind != KindRadio && len(it.Items) > 0:
			errs = append(errs, fmt.Errorf("%s: item %q: only radio groups hold items: %w", where, it.Label, ErrInvalidValue))
		}
	default:
		if it.Kind != "" {
			errs = append(errs, fmt.Errorf("%s: item %q: %w %q", where, it.Label, ErrUnknownKind, it.Kind))
		}
		if len(it.Items) > 0 {
			errs = append(errs, fmt.Errorf("%s: item %q: %s items do not nest: %w", where, it.Label, kind, ErrInvalidValue))
		}
	}
	return errs
}
