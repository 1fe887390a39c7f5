// Package mapping provides the definition documents for remapping
// pipelines: schema, parsing, validation and building.
//
// A definition lists the stages of a pipeline in order, each stage being a
// list of (destination, source, length) entries, plus optional seed values
// to push through it.
//
// # Formats
//
// Three encodings of the same document are supported.
//
// The almanac text format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//
// YAML, where an entry is either a [destination, source, length] sequence
// or a mapping with named keys:
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    entries:
//	      - [50, 98, 2]
//	      - {destination: 52, source: 50, length: 48}
//
// TOML:
//
//	seeds = [79, 14, 55, 13]
//
//	[[stages]]
//	from = "seed"
//	to = "soil"
//	entries = [[50, 98, 2], [52, 50, 48]]
//
// TOML integers are signed, so values above 2^63-1 need the text or YAML
// format.
//
// # Stage order
//
// When every stage names both the category it reads (from) and the one it
// produces (to), stages may be listed in any order: they are chained by
// category before building. Otherwise the declared order is used.
//
// # Validation
//
// Validate reports overlapping or overflowing entries as errors and
// zero-length entries, broken category chains and odd seed counts as
// warnings. Build refuses documents with errors.
package mapping
