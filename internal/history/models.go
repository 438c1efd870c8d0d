package history

import "time"

// Command identifies which CLI operation produced a record.
type Command string

const (
	CommandUpdate Command = "update"
	CommandMerge  Command = "merge"
)

// Record captures one completed run.
type Record struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	Command    Command   `json:"command"`
	OutputPath string    `json:"output_path"`
	Sources    []string  `json:"sources"`
	OutOfOrder bool      `json:"out_of_order"`
	CreatedAt  time.Time `json:"created_at"`
}
