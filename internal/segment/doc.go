// Package segment classifies transcript segment filenames and derives the
// ordering keys used to merge them chronologically.
//
// Two naming conventions are recognized: the flat shape
// YYYYMMDD_HHMMSS_HHMMSS, which embeds its own date, and the nested shape
// HHMMSS-HHMMSS, whose date is recovered from the directory it sits in
// (either a YYYY-MM-DD day directory or a YYYY/MM/DD ancestry). Names that
// match neither shape are rejected outright so a merge never silently skips
// or misorders a segment.
package segment
