package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// errTOMLRange is returned when a value does not fit a TOML integer.
var errTOMLRange = errors.New("value exceeds the TOML integer range")

// tomlFile mirrors File with entries as plain integer triples, which is how
// they read most naturally in TOML.
type tomlFile struct {
	Version string      `toml:"version,omitempty"`
	Seeds   []uint64    `toml:"seeds,omitempty"`
	Stages  []tomlStage `toml:"stages"`
}

type tomlStage struct {
	Name    string      `toml:"name,omitempty"`
	From    string      `toml:"from,omitempty"`
	To      string      `toml:"to,omitempty"`
	Entries [][3]uint64 `toml:"entries"`
}

func parseTOML(data []byte) (*File, error) {
	var tf tomlFile

	md, err := toml.Decode(string(data), &tf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("failed to parse definition TOML: unknown keys %s", strings.Join(keys, ", "))
	}

	f := &File{
		Version: tf.Version,
		Seeds:   tf.Seeds,
		Stages:  make([]StageDef, 0, len(tf.Stages)),
	}

	for _, ts := range tf.Stages {
		sd := StageDef{Name: ts.Name, From: ts.From, To: ts.To}
		for _, t := range ts.Entries {
			sd.Entries = append(sd.Entries, EntryDef{Destination: t[0], Source: t[1], Length: t[2]})
		}

		f.Stages = append(f.Stages, sd)
	}

	return f, nil
}

func marshalTOML(f *File) ([]byte, error) {
	if err := checkTOMLRange(f); err != nil {
		return nil, err
	}

	tf := tomlFile{
		Version: f.Version,
		Seeds:   f.Seeds,
		Stages:  make([]tomlStage, 0, len(f.Stages)),
	}

	for _, sd := range f.Stages {
		ts := tomlStage{Name: sd.Name, From: sd.From, To: sd.To, Entries: make([][3]uint64, 0, len(sd.Entries))}
		for _, e := range sd.Entries {
			ts.Entries = append(ts.Entries, [3]uint64{e.Destination, e.Source, e.Length})
		}

		tf.Stages = append(tf.Stages, ts)
	}

	var buf bytes.Buffer

	if err := toml.NewEncoder(&buf).Encode(tf); err != nil {
		return nil, fmt.Errorf("failed to encode definition TOML: %w", err)
	}

	return buf.Bytes(), nil
}

func checkTOMLRange(f *File) error {
	for _, s := range f.Seeds {
		if s > math.MaxInt64 {
			return fmt.Errorf("seed %d: %w", s, errTOMLRange)
		}
	}

	for i := range f.Stages {
		for j, e := range f.Stages[i].Entries {
			if max(e.Destination, e.Source, e.Length) > math.MaxInt64 {
				return fmt.Errorf("%s entry %d: %w", f.stageLabel(i), j, errTOMLRange)
			}
		}
	}

	return nil
}
