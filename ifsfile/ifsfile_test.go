package ifsfile

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/ifs"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var fernRows = [][]float64{
	{0, 0, 0, 0.16, 0, 0, 0.01},
	{0.85, 0.04, -0.04, 0.85, 0, 1.6, 0.85},
	{0.2, -0.26, 0.23, 0.22, 0, 1.6, 0.07},
	{-0.15, 0.28, 0.26, 0.24, 0, 0.44, 0.07},
}

func TestParse(t *testing.T) {
	const src = `
# comment

0.5 0 0 0.5 0 0
	0.5  0 0 0.5 0.5 0
0.5 0 0 0.5 0.25 0.5`
	sys, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, System{Rows: [][]float64{
		{0.5, 0, 0, 0.5, 0, 0},
		{0.5, 0, 0, 0.5, 0.5, 0},
		{0.5, 0, 0, 0.5, 0.25, 0.5},
	}}, sys)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("0.5 0 0 0.5 0 0\n0.5 0 x 0.5 0 0\n"))
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	diff(t, 2, serr.Line)
	diff(t, 3, serr.Field)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("%v doesn't wrap strconv.ErrSyntax", err)
	}
	if !errors.Is(err, ifs.ErrMalformedMap) {
		t.Errorf("%v doesn't match ifs.ErrMalformedMap", err)
	}
}

func TestParseWrongLength(t *testing.T) {
	_, err := Parse(strings.NewReader("0.5 0 0 0.5 0 0\n1 2 3 4 5\n"))
	var merr *ifs.MalformedMapError
	if !errors.As(err, &merr) {
		t.Fatalf("got %v, want *ifs.MalformedMapError", err)
	}
	diff(t, 5, merr.Len)
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q doesn't mention the line", err)
	}
}

func TestParseMixedLengths(t *testing.T) {
	// Mixing weighted and unweighted rows is the engine's concern.
	sys, err := Parse(strings.NewReader("0.5 0 0 0.5 0 0\n0.5 0 0 0.5 0 0 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sys.New(); !errors.Is(err, ifs.ErrInconsistentRowLength) {
		t.Errorf("got %v, want %v", err, ifs.ErrInconsistentRowLength)
	}
}

func TestParseEmpty(t *testing.T) {
	sys, err := Parse(strings.NewReader("# nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sys.New(); !errors.Is(err, ifs.ErrEmptySystem) {
		t.Errorf("got %v, want %v", err, ifs.ErrEmptySystem)
	}
}

func TestReadFile(t *testing.T) {
	sys, err := ReadFile(filepath.Join("testdata", "fern.ifs"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, System{Name: "fern", Rows: fernRows}, sys)

	s, err := sys.New()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Weighted() {
		t.Error("fern should be weighted")
	}
}

func TestReadFileTOML(t *testing.T) {
	sys, err := ReadFile(filepath.Join("testdata", "fern.toml"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, System{
		Name:   "Barnsley fern",
		Rows:   fernRows,
		Colors: []ifs.Color{0x2e7d32, 0x66bb6a},
	}, sys)

	s, err := sys.New()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 4, len(s.Colors()))
	diff(t, []ifs.Color{0x2e7d32, 0x66bb6a}, s.Colors()[:2])
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.ifs"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
}

func TestParseTOMLColorGap(t *testing.T) {
	const src = `
[[map]]
coefficients = [0.5, 0, 0, 0.5, 0, 0]

[[map]]
coefficients = [0.5, 0, 0, 0.5, 0.5, 0]
color = "#ff0000"
`
	if _, err := ParseTOML(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseTOMLMalformed(t *testing.T) {
	const src = `
[[map]]
coefficients = [0.5, 0, 0, 0.5]
`
	_, err := ParseTOML(strings.NewReader(src))
	if !errors.Is(err, ifs.ErrMalformedMap) {
		t.Errorf("got %v, want %v", err, ifs.ErrMalformedMap)
	}

	if _, err := ParseTOML(strings.NewReader("map = 3")); err == nil {
		t.Error("expected an error for a map that isn't a table")
	}
}

func TestParseTOMLWeightDoesNotAlias(t *testing.T) {
	const src = `
[[map]]
coefficients = [0.5, 0, 0, 0.5, 0, 0]
weight = 1

[[map]]
coefficients = [0.5, 0, 0, 0.5, 0.5, 0]
weight = 2
`
	sys, err := ParseTOML(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][]float64{
		{0.5, 0, 0, 0.5, 0, 0, 1},
		{0.5, 0, 0, 0.5, 0.5, 0, 2},
	}, sys.Rows)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want ifs.Color
	}{
		{"#ff8000", 0xff8000},
		{"ff8000", 0xff8000},
		{" #000000 ", 0},
		{"#f80", 0xff8800},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Error("expected an error")
	}
}

func TestParseColors(t *testing.T) {
	cs, err := ParseColors("#ff0000,#00ff00, #0000ff")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []ifs.Color{0xff0000, 0x00ff00, 0x0000ff}, cs)

	cs, err = ParseColors("")
	if err != nil || cs != nil {
		t.Errorf("got %v, %v; want nil, nil", cs, err)
	}
}
