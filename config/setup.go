package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// starters are the example widgets written by WriteStarter, one per kind.
var starters = map[string]WidgetDef{
	KindListbox: {
		Name: "fruit", Kind: KindListbox, Label: "Fruit", Multi: true,
		Items: []ItemDef{
			{Label: "Apple"}, {Label: "Apricot"}, {Label: "Banana"},
			{Label: "Blueberry", Disabled: true}, {Label: "Cherry"},
		},
	},
	KindRadio: {
		Name: "size", Kind: KindRadio, Label: "Size",
		Items: []ItemDef{{Label: "Small"}, {Label: "Medium", Selected: true}, {Label: "Large"}},
	},
	KindToolbar: {
		Name: "format", Kind: KindToolbar, Label: "Text formatting",
		Items: []ItemDef{
			{Label: "Bold", Kind: KindButton},
			{Label: "Italic", Kind: KindButton},
			{Label: "Alignment", Kind: KindRadio, Items: []ItemDef{
				{Label: "Left", Selected: true}, {Label: "Center"}, {Label: "Right"},
			}},
			{Label: "Clear", Kind: KindButton},
		},
	},
	KindMenuBar: {
		Name: "main-menu", Kind: KindMenuBar, Label: "Main menu",
		Items: []ItemDef{
			{Label: "File", Items: []ItemDef{
				{Label: "New"},
				{Label: "Open Recent", Items: []ItemDef{{Label: "notes.txt"}, {Label: "todo.md"}}},
				{Label: "Quit"},
			}},
			{Label: "Edit", Items: []ItemDef{{Label: "Undo"}, {Label: "Redo", Disabled: true}}},
			{Label: "Help"},
		},
	},
	KindMenu: {
		Name: "actions", Kind: KindMenu, Label: "Actions",
		Items: []ItemDef{{Label: "Copy"}, {Label: "Paste"}, {Label: "Share", Items: []ItemDef{{Label: "Mail"}, {Label: "Chat"}}}},
	},
	KindTabs: {
		Name: "sections", Kind: KindTabs, Label: "Sections",
		Items: []ItemDef{{Label: "Overview"}, {Label: "Details"}, {Label: "History", Disabled: true}, {Label: "Settings"}},
	},
}

// Starter returns the example definition for kind.
func Starter(kind string) (WidgetDef, bool) {
	def, ok := starters[kind]
	return def, ok
}

// WriteStarter writes a widgets file holding one example widget per kind.
func WriteStarter(path string, kinds []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var defs []WidgetDef
	for _, k := range kinds {
		def, ok := starters[k]
		if !ok {
			return fmt.Errorf("starter %q: %w", k, ErrUnknownKind)
		}
		defs = append(defs, def)
	}

	var sb strings.Builder
	writeWidgetsHeader(&sb)
	if len(defs) == 0 {
		sb.WriteString("widgets: []\n")
	} else {
		body, err := marshalWidgets(defs)
		if err != nil {
			return err
		}
		sb.WriteString("widgets:\n")
		sb.Write(body)
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func writeWidgetsHeader(sb *strings.Builder) {
	sb.WriteString("# ariabox widget definitions.\n")
	sb.WriteString("# Kinds: listbox, radio, toolbar, menubar, menu, tabs.\n")
	sb.WriteString("# Unset options fall back to the global config file.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Try them with 'ariabox demo' and check them with 'ariabox validate'.\n\n")
}

// marshalWidgets renders defs as the items of a top-level widgets list.
func marshalWidgets(defs []WidgetDef) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(defs); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		out.WriteString("  " + line)
	}
	return out.Bytes(), nil
}

// containsLine checks if a string contains a line starting with the given prefix.
func containsLine(content, prefix string) bool {
	return strings.HasPrefix(content, prefix) || strings.Contains(content, "\n"+prefix)
}

// AppendWidget adds a definition to an existing widgets file, keeping its
// comments and formatting. A widget with the same name is an error.
func AppendWidget(path string, def WidgetDef) error {
	var wf WidgetsFile
	if err := loadFile(path, &wf); err != nil {
		return fmt.Errorf("load widgets: %w", err)
	}
	for _, w := range wf.Widgets {
		if w.Name == def.Name {
			return fmt.Errorf("widget %q: duplicate name: %w", def.Name, ErrInvalidValue)
		}
	}
	if DetectFormat(path) == FormatTOML {
		return fmt.Errorf("append to %s: only YAML widget files can be extended", path)
	}

	body, err := marshalWidgets([]WidgetDef{def})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read widgets: %w", err)
	}
	content := string(data)

	var sb strings.Builder
	switch {
	case containsLine(content, "widgets: []"):
		sb.WriteString(strings.Replace(content, "widgets: []", "widgets:", 1))
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	case containsLine(content, "widgets:"):
		sb.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			sb.WriteString("\n")
		}
	default:
		if content == "" {
			writeWidgetsHeader(&sb)
		} else {
			sb.WriteString(content)
			if !strings.HasSuffix(content, "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("widgets:\n")
	}
	sb.Write(body)

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
