package mapping

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format is the encoding of a definition document.
type Format int

const (
	FormatText Format = iota // text
	FormatYAML               // yaml
	FormatTOML               // toml
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatYAML, FormatTOML}

// ParseFormat resolves a format by name ("text", "yaml", "yml", "toml").
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "yml" {
		return FormatYAML, nil
	}

	for _, f := range Formats {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown format %q", name)
}

// FormatFromPath picks the format from a file extension. Anything that is
// neither YAML nor TOML is read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}
