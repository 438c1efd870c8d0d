// Package transcript rewrites relative, session-internal timestamps into
// absolute wall-clock values anchored to a caller-supplied date and time.
//
// Lines carrying a strict 8-character HH:MM:SS prefix are treated as relative
// offsets from the start of the recording; every other line passes through
// byte-for-byte. The adjuster tracks the first and last absolute timestamps so
// callers can derive output locations, and flags sequences that run backwards
// in time without failing the run.
package transcript
