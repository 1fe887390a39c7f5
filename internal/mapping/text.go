package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	chainSep     = "-to-"
)

// ParseText reads the almanac text format: an optional "seeds:" line
// followed by blocks made of a "<from>-to-<to> map:" header and one
// "destination source length" line per entry. Blank lines are ignored.
func ParseText(r io.Reader) (*File, error) {
	f := &File{}

	var (
		cur       *StageDef
		seenSeeds bool
		lineNo    int
	)

	sc := bufio.NewScanner(r)

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, seedsPrefix):
			if seenSeeds {
				return nil, fmt.Errorf("line %d: duplicate seeds line", lineNo)
			}

			if len(f.Stages) > 0 {
				return nil, fmt.Errorf("line %d: seeds must come before the first map", lineNo)
			}

			seeds, err := parseUints(strings.Fields(strings.TrimPrefix(line, seedsPrefix)))
			if err != nil {
				return nil, fmt.Errorf("line %d: seeds: %w", lineNo, err)
			}

			f.Seeds = seeds
			seenSeeds = true

		case strings.HasSuffix(line, headerSuffix):
			f.Stages = append(f.Stages, parseHeader(strings.TrimSuffix(line, headerSuffix)))
			cur = &f.Stages[len(f.Stages)-1]

		default:
			if cur == nil {
				return nil, fmt.Errorf("line %d: entry %q outside of a map block", lineNo, line)
			}

			e, err := parseEntry(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			cur.Entries = append(cur.Entries, e)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading almanac text: %w", err)
	}

	return f, nil
}

func parseHeader(title string) StageDef {
	title = strings.TrimSpace(title)

	from, to, ok := strings.Cut(title, chainSep)
	if !ok || from == "" || to == "" {
		return StageDef{Name: title}
	}

	return StageDef{From: from, To: to}
}

func parseEntry(line string) (EntryDef, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return EntryDef{}, fmt.Errorf("entry needs 3 values (destination, source, length), got %d", len(fields))
	}

	vals, err := parseUints(fields)
	if err != nil {
		return EntryDef{}, err
	}

	return EntryDef{Destination: vals[0], Source: vals[1], Length: vals[2]}, nil
}

func parseUints(fields []string) ([]uint64, error) {
	out := make([]uint64, 0, len(fields))

	for _, s := range fields {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}

			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}

		out = append(out, v)
	}

	return out, nil
}

// WriteText writes f in the almanac text format. Chained stages are written
// as "<from>-to-<to> map:", which keeps their categories but not a separate
// name. Other stages use their name, or "stage N" without one.
func WriteText(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)

	if len(f.Seeds) > 0 {
		bw.WriteString(seedsPrefix)

		for _, s := range f.Seeds {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatUint(s, 10))
		}

		bw.WriteString("\n\n")
	}

	for i := range f.Stages {
		if i > 0 {
			bw.WriteByte('\n')
		}

		title := f.stageLabel(i)
		if st := &f.Stages[i]; st.IsChained() {
			title = st.From + "-to-" + st.To
		}

		fmt.Fprintf(bw, "%s%s\n", title, headerSuffix)

		for _, e := range f.Stages[i].Entries {
			fmt.Fprintf(bw, "%d %d %d\n", e.Destination, e.Source, e.Length)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing almanac text: %w", err)
	}

	return nil
}
