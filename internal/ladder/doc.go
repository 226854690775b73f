// Package ladder parses per-candidate ladder info and splits the candidates
// into selected and rejected groups.
//
// Ladder info arrives as an object keyed by ladder name, an array of such
// objects, or either of those encoded as a JSON string (individual entries may
// carry one more layer of string encoding). Parsing is best effort: malformed
// input yields fewer candidates, never an error. Selected candidates are
// ordered by bitrate descending; rejected candidates by reason (locale-aware,
// case-insensitive) and then bitrate descending.
package ladder
