// Package lang provides the language primitives the analysis core is built
// on: character-ratio language classification for English/Sinhala text,
// Unicode-aware term normalization, and a generic string-similarity ratio.
//
// All functions in this package are pure: no I/O, no shared state, and
// deterministic output for a given input.
package lang
