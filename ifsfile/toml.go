package ifsfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/ifs"
)

type tomlSystem struct {
	Name string    `toml:"name"`
	Maps []tomlMap `toml:"map"`
}

type tomlMap struct {
	Coefficients []float64 `toml:"coefficients"`
	Weight       *float64  `toml:"weight"`
	Color        string    `toml:"color"`
}

// ParseTOML reads a system in the TOML format.
//
// Colors may be given for a prefix of the maps only; the engine assigns
// random colors to the remaining maps.
func ParseTOML(r io.Reader) (System, error) {
	var raw tomlSystem
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return System{}, fmt.Errorf("ifsfile: decode toml: %w", err)
	}

	sys := System{Name: raw.Name}
	for i, m := range raw.Maps {
		row := m.Coefficients
		if m.Weight != nil {
			row = append(row[:len(row):len(row)], *m.Weight)
		}
		if _, err := ifs.NewMap(row); err != nil {
			return System{}, fmt.Errorf("ifsfile: map %d: %w", i, err)
		}
		sys.Rows = append(sys.Rows, row)

		if m.Color == "" {
			continue
		}
		if len(sys.Colors) != i {
			return System{}, fmt.Errorf("ifsfile: map %d has a color but map %d doesn't", i, len(sys.Colors))
		}
		c, err := ParseColor(m.Color)
		if err != nil {
			return System{}, fmt.Errorf("ifsfile: map %d: %w", i, err)
		}
		sys.Colors = append(sys.Colors, c)
	}
	return sys, nil
}

// ParseColor parses a hex color of the form "#rrggbb" or "#rgb". The leading
// '#' is optional.
func ParseColor(s string) (ifs.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return ifs.RGB(r, g, b), nil
}

// ParseColors parses a comma-separated list of colors, as accepted by
// [ParseColor]. An empty string yields no colors.
func ParseColors(s string) ([]ifs.Color, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []ifs.Color
	for _, f := range strings.Split(s, ",") {
		c, err := ParseColor(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
