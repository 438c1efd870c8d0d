package update

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tapescript/internal/fileutil"
	"tapescript/internal/transcript"
)

// Request describes one update invocation.
type Request struct {
	// InputFile is the transcript whose timestamps will be adjusted.
	InputFile string
	// OutputDir is the root for nested output. Ignored in flat mode.
	OutputDir string
	// Flat writes a single dated file into the current working directory
	// instead of the nested YYYY/MM/DD layout.
	Flat bool
	// Anchor is the absolute instant the first second of the recording
	// corresponds to.
	Anchor time.Time
}

// Outcome reports where the adjusted transcript was written and whether the
// input's timestamps ran backwards at any point. OutOfOrder is a warning,
// not a failure.
type Outcome struct {
	OutputPath string
	OutOfOrder bool
}

// Execute size-guards the input, adjusts its timestamps against the anchor,
// and atomically writes the result to the derived output path.
func Execute(req Request) (*Outcome, error) {
	if err := fileutil.CheckFileSize(req.InputFile); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(req.InputFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.InputFile, err)
	}

	result, err := transcript.Adjust(string(content), req.Anchor)
	if err != nil {
		return nil, fmt.Errorf("adjust %s: %w", req.InputFile, err)
	}

	outputPath, err := resolveOutputPath(req, result.First, result.Last)
	if err != nil {
		return nil, err
	}

	if parent := filepath.Dir(outputPath); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", parent, err)
		}
	}

	if err := fileutil.AtomicWriteFile(outputPath, []byte(result.Body), 0o644); err != nil {
		return nil, err
	}

	return &Outcome{
		OutputPath: outputPath,
		OutOfOrder: result.OutOfOrder,
	}, nil
}

// resolveOutputPath derives the destination from the adjusted time range.
// The effective date is the date of the last timestamp, which may be later
// than the anchor date when the session crossed midnight.
func resolveOutputPath(req Request, first, last time.Time) (string, error) {
	firstClock := first.Format(transcript.ClockFormatCompact)
	lastClock := last.Format(transcript.ClockFormatCompact)

	if req.Flat {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		name := last.Format(transcript.DateFormatCompact) + "_" + firstClock + "_" + lastClock + ".txt"
		return filepath.Join(cwd, name), nil
	}

	dateDir := filepath.Join(
		last.Format("2006"),
		last.Format("01"),
		last.Format("02"),
	)
	name := firstClock + "-" + lastClock + ".txt"
	return filepath.Join(req.OutputDir, dateDir, name), nil
}
