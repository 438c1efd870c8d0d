// Package update applies the timestamp adjuster to one transcript file and
// writes the result under a date-derived path.
//
// The destination date comes from the last adjusted timestamp, not the
// caller's anchor date, so a session that crosses midnight files under the
// day it ends on. Output is either nested (<root>/YYYY/MM/DD/start-end.txt)
// or flat (<cwd>/YYYYMMDD_start_end.txt) and is always written atomically.
package update
