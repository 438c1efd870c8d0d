// Package history persists a journal of completed tapescript runs in SQLite.
//
// Every successful update or merge appends one record capturing the command,
// the output path, the consumed sources, and whether out-of-order timestamps
// were observed. The journal is purely informational: commands succeed even
// when recording fails. It can be browsed or cleared through the `history`
// CLI command.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package history
