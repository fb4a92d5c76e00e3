// Package ifsfile reads descriptions of iterated function systems.
//
// Two formats are supported. The plain format has one map per line, written
// as six or seven whitespace-separated numbers "a b c d e f [weight]". Blank
// lines and lines starting with '#' are ignored:
//
//	# Sierpiński triangle
//	0.5 0 0 0.5 0    0
//	0.5 0 0 0.5 0.5  0
//	0.5 0 0 0.5 0.25 0.5
//
// The TOML format additionally allows naming the system and assigning colors
// to maps:
//
//	name = "fern"
//
//	[[map]]
//	coefficients = [0, 0, 0, 0.16, 0, 0]
//	weight = 0.01
//	color = "#2e7d32"
//
// Checking that all maps agree on whether they have a weight is left to
// [ifs.New].
package ifsfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/ifs"
)

// System is a parsed system description.
type System struct {
	Name   string
	Rows   [][]float64
	Colors []ifs.Color
}

// New creates an engine for the system.
func (sys System) New(opts ...ifs.Option) (*ifs.IFS, error) {
	return ifs.New(sys.Rows, sys.Colors, opts...)
}

// SyntaxError reports a field that isn't a number. It matches
// [ifs.ErrMalformedMap].
type SyntaxError struct {
	Line  int
	Field int
	Err   error
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("ifsfile: line %d, field %d: %s", err.Line, err.Field, err.Err)
}

func (err *SyntaxError) Unwrap() error { return err.Err }

func (err *SyntaxError) Is(target error) bool { return target == ifs.ErrMalformedMap }

// Parse reads a system in the plain format.
func Parse(r io.Reader) (System, error) {
	var sys System
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return System{}, &SyntaxError{Line: line, Field: i + 1, Err: err}
			}
			row[i] = v
		}
		if _, err := ifs.NewMap(row); err != nil {
			return System{}, fmt.Errorf("ifsfile: line %d: %w", line, err)
		}
		sys.Rows = append(sys.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return System{}, fmt.Errorf("ifsfile: read: %w", err)
	}
	return sys, nil
}

// ReadFile reads a system from a file. Files ending in .toml are read with
// [ParseTOML], all others with [Parse]. If the file doesn't name the system,
// its base name without extension is used.
func ReadFile(path string) (System, error) {
	f, err := os.Open(path)
	if err != nil {
		return System{}, err
	}
	defer f.Close()

	var sys System
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".toml") {
		sys, err = ParseTOML(f)
	} else {
		sys, err = Parse(f)
	}
	if err != nil {
		return System{}, fmt.Errorf("%s: %w", path, err)
	}
	if sys.Name == "" {
		sys.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return sys, nil
}
