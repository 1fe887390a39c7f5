package mapping

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File permission for written documents.
const filePerm = 0o644

// LoadFile loads and parses a definition document, choosing the format from
// the file extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	f, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses a definition document in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var (
		f   *File
		err error
	)

	switch format {
	case FormatText:
		f, err = ParseText(bytes.NewReader(data))
	case FormatYAML:
		f, err = parseYAML(data)
	case FormatTOML:
		f, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}

	if err != nil {
		return nil, err
	}

	applyDefaults(f)

	return f, nil
}

func parseYAML(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer

		err := WriteText(&buf, f)
		if err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return marshalTOML(f)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
}

// WriteFile writes a File to the given path, choosing the format from the
// file extension.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
