package ui

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"snake-arcade/game/entity"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var builtinThemes []byte

// Color is an RGB triple decoded from "#rrggbb".
type Color struct {
	R, G, B uint8
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme is one palette.
type Theme struct {
	Name       string `yaml:"name"`
	Background Color  `yaml:"background"`
	Border     Color  `yaml:"border"`
	Snake      Color  `yaml:"snake"`
	Head       Color  `yaml:"head"`
	Primary    Color  `yaml:"primary"`
	Special    Color  `yaml:"special"`
	Penalty    Color  `yaml:"penalty"`
	Bonus      Color  `yaml:"bonus"`
	Text       Color  `yaml:"text"`
}

// Food returns the colour of a food tier.
func (t Theme) Food(kind entity.FoodKind) Color {
	switch kind {
	case entity.Special:
		return t.Special
	case entity.Penalty:
		return t.Penalty
	case entity.Bonus:
		return t.Bonus
	default:
		return t.Primary
	}
}

// Themes is the ordered palette list with a current selection.
type Themes struct {
	list    []Theme
	current int
}

// ParseThemes decodes a YAML list of themes.
func ParseThemes(data []byte) (*Themes, error) {
	var list []Theme
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("parse themes: no themes defined")
	}
	seen := make(map[string]bool, len(list))
	for i, t := range list {
		if t.Name == "" {
			return nil, fmt.Errorf("parse themes: theme %d has no name", i)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("parse themes: duplicate theme %q", t.Name)
		}
		seen[t.Name] = true
	}
	return &Themes{list: list}, nil
}

// LoadThemes reads path, or the built-in palettes when path is empty.
func LoadThemes(path string) (*Themes, error) {
	if path == "" {
		return ParseThemes(builtinThemes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes %s: %w", path, err)
	}
	return ParseThemes(data)
}

func (ts *Themes) Current() Theme {
	return ts.list[ts.current]
}

// Next cycles to the following theme.
func (ts *Themes) Next() Theme {
	ts.current = (ts.current + 1) % len(ts.list)
	return ts.Current()
}

// Select makes name current.
func (ts *Themes) Select(name string) error {
	for i, t := range ts.list {
		if t.Name == name {
			ts.current = i
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (have %s)", name, strings.Join(ts.Names(), ", "))
}

func (ts *Themes) Names() []string {
	names := make([]string, len(ts.list))
	for i, t := range ts.list {
		names[i] = t.Name
	}
	return names
}
