// Package merge combines adjusted transcript segments into one
// chronologically ordered document.
//
// A merge runs as a sequence of hard gates: pattern expansion, per-file size
// guards, sort-key extraction, stable ordering with deduplication, output
// path inference, and self-reference exclusion. Nothing on disk changes until
// every gate has passed; the combined document is then written atomically and
// the consumed sources are deleted unless the caller opts out. The resolved
// output file is never treated as one of its own inputs, so re-running a
// merge over the same directory is safe.
package merge
