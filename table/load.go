package table

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a table file encoding.
type Format string

// Table file formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// file is the on-disk layout of a table. Slices are used instead of arrays so
// that a wrong number of digits or units is reported rather than truncated.
type file struct {
	Base     string   `yaml:"base" json:"base"`
	Digits   []string `yaml:"digits" json:"digits"`
	Units    []string `yaml:"units" json:"units"`
	Scales   []string `yaml:"scales" json:"scales"`
	Point    *string  `yaml:"point" json:"point"`
	Negative *string  `yaml:"negative" json:"negative"`
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (f Format, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}

	return "", Error.New("unknown table format: %q", path)
}

// Load reads a table file. The format is chosen by extension.
func Load(path string) (t *Table, err error) {
	defer Error.WrapP(&err)

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

// Parse decodes a table.
func Parse(data []byte, format Format) (t *Table, err error) {
	defer Error.WrapP(&err)

	var f file

	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case JSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, Error.New("unknown table format: %q", format)
	}
	if err != nil {
		return nil, err
	}

	return f.table()
}

func (f *file) table() (t *Table, err error) {
	t = &Table{}

	if f.Base != "" {
		base, ok := Named(f.Base)
		if !ok {
			return nil, Error.New("unknown base table: %q", f.Base)
		}

		*t = *base
		t.Scales = append([]string(nil), base.Scales...)
	}

	switch {
	case f.Digits != nil:
		if len(f.Digits) != len(t.Digits) {
			return nil, Error.New("digits: want %d entries, got %d", len(t.Digits), len(f.Digits))
		}
		copy(t.Digits[:], f.Digits)
	case f.Base == "":
		return nil, Error.New("digits: missing")
	}

	switch {
	case f.Units != nil:
		if len(f.Units) != len(t.Units) {
			return nil, Error.New("units: want %d entries, got %d", len(t.Units), len(f.Units))
		}
		copy(t.Units[:], f.Units)
	case f.Base == "":
		return nil, Error.New("units: missing")
	}

	if f.Scales != nil {
		t.Scales = f.Scales
	}

	switch {
	case f.Point != nil:
		t.Point = *f.Point
	case f.Base == "":
		return nil, Error.New("point: missing")
	}

	switch {
	case f.Negative != nil:
		t.Negative = *f.Negative
	case f.Base == "":
		return nil, Error.New("negative: missing")
	}

	err = t.Validate()
	if err != nil {
		return nil, err
	}

	return t, nil
}
