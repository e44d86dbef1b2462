// Package rulefile loads custom default highlight palettes from disk.
//
// A palette file lists the default highlight rules for light mode,
// dark mode, or both, highest priority first.
// TOML and YAML are supported:
//
//	[[light]]
//	name = "literal"
//	color = "lightcoral"
//	background = true
//
//	[[dark]]
//	name = "literal"
//	color = "#f08080"
//	disabled = true
//
// If a file defines only one mode,
// that mode's rules are used for both.
package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/pelletier/go-toml/v2"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/highlight"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a palette file.
type Format int

const (
	// TOML is the default format.
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks a format based on a file's extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errtrace.Wrap(fmt.Errorf("unsupported palette file extension %q", ext))
	}
}

type entry struct {
	Name       string `toml:"name" yaml:"name"`
	Color      string `toml:"color" yaml:"color"`
	Background bool   `toml:"background" yaml:"background"`
	Disabled   bool   `toml:"disabled" yaml:"disabled"`
}

type file struct {
	Light []entry `toml:"light" yaml:"light"`
	Dark  []entry `toml:"dark" yaml:"dark"`
}

// Load reads a palette file,
// picking the format based on the file extension.
func Load(path string) (highlight.Palette, error) {
	format, err := FormatOf(path)
	if err != nil {
		return highlight.Palette{}, errtrace.Wrap(err)
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return highlight.Palette{}, errtrace.Wrap(err)
	}

	p, err := Parse(format, bs)
	if err != nil {
		return highlight.Palette{}, errtrace.Wrap(fmt.Errorf("%v: %w", path, err))
	}
	return p, nil
}

// Parse decodes a palette in the given format.
// Unknown fields are rejected.
func Parse(format Format, data []byte) (highlight.Palette, error) {
	var f file
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return highlight.Palette{}, errtrace.Wrap(err)
		}

	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return highlight.Palette{}, errtrace.Wrap(err)
		}

	default:
		return highlight.Palette{}, errtrace.Wrap(fmt.Errorf("unknown format %v", format))
	}

	if len(f.Light) == 0 && len(f.Dark) == 0 {
		return highlight.Palette{}, errtrace.Wrap(errors.New("palette defines no rules"))
	}

	light, err := buildRules("light", f.Light)
	if err != nil {
		return highlight.Palette{}, errtrace.Wrap(err)
	}
	dark, err := buildRules("dark", f.Dark)
	if err != nil {
		return highlight.Palette{}, errtrace.Wrap(err)
	}
	return highlight.Palette{Light: light, Dark: dark}, nil
}

func buildRules(mode string, entries []entry) ([]highlight.Rule, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(entries))
	rules := make([]highlight.Rule, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, errtrace.Wrap(fmt.Errorf("%v[%d]: name is required", mode, i))
		}
		if !highlight.ValidName(e.Name) {
			return nil, errtrace.Wrap(fmt.Errorf("%v[%d]: invalid rule name %q", mode, i, e.Name))
		}
		if _, ok := seen[e.Name]; ok {
			return nil, errtrace.Wrap(fmt.Errorf("%v[%d]: duplicate rule %q", mode, i, e.Name))
		}
		seen[e.Name] = struct{}{}

		if e.Color == "" {
			return nil, errtrace.Wrap(fmt.Errorf("%v[%d]: rule %q: color is required", mode, i, e.Name))
		}

		rules = append(rules, highlight.Rule{
			Name:   e.Name,
			Target: !e.Disabled,
			Style: highlight.Style{
				Color:      color.Parse(e.Color),
				Background: e.Background,
			},
		})
	}
	return rules, nil
}
