package mapping

import (
	"fmt"

	"range-remapper/internal/diagnostic"
	"range-remapper/internal/pipeline"
	"range-remapper/internal/rangemap"
)

// Build validates f and turns it into a pipeline whose stages run in
// declared order. Documents with error diagnostics are rejected with an
// error matching rangemap.ErrConfiguration. Zero-length entries are dropped.
//
// Use OrderStages first to run stages in category order instead.
func Build(f *File, opts ...pipeline.Option) (*pipeline.Pipeline, *diagnostic.Diagnostics, error) {
	diags := Validate(f)
	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("%w: %w", rangemap.ErrConfiguration, diags.Error())
	}

	stages := make([]pipeline.Stage, 0, len(f.Stages))

	for i := range f.Stages {
		m, err := rangemap.NewChecked(f.Stages[i].RangeEntries()...)
		if err != nil {
			return nil, diags, fmt.Errorf("building %s: %w", f.stageLabel(i), err)
		}

		stages = append(stages, pipeline.Stage{Name: f.stageLabel(i), Map: m})
	}

	return pipeline.New(stages, opts...), diags, nil
}
