package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tapescript/internal/fileutil"
	"tapescript/internal/segment"
	"tapescript/internal/transcript"
)

// Request describes one merge invocation. It is immutable for the run.
type Request struct {
	// Patterns are glob patterns or literal paths naming the segments.
	Patterns []string
	// Output, when set, is used verbatim as the destination.
	Output string
	// KeepSources preserves the merged segments instead of deleting them.
	KeepSources bool
}

// Outcome reports the ordered, deduplicated, self-excluded sources that were
// merged and the destination they were written to.
type Outcome struct {
	Sources    []string
	OutputPath string
}

type descriptor struct {
	path string
	key  segment.Key
}

// Execute runs the merge pipeline. Every stage is a hard gate: any failure
// aborts before the output file is touched. A failure while deleting sources
// is returned after the output has already been durably written.
func Execute(req Request) (*Outcome, error) {
	collected, err := expandPatterns(req.Patterns)
	if err != nil {
		return nil, err
	}

	for _, path := range collected {
		if err := fileutil.CheckFileSize(path); err != nil {
			return nil, err
		}
	}

	descriptors := make([]descriptor, 0, len(collected))
	for _, path := range collected {
		key, err := segment.KeyForPath(path)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, descriptor{path: path, key: key})
	}

	// Stable sort keeps discovery order for equal keys.
	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].key.Compare(descriptors[j].key) < 0
	})

	ordered := collapseConsecutive(descriptors)

	outputPath, err := resolveOutputPath(req, ordered, descriptors)
	if err != nil {
		return nil, err
	}

	sources := excludeOutput(ordered, outputPath)

	if err := writeMerged(sources, outputPath); err != nil {
		return nil, err
	}

	if !req.KeepSources {
		if err := deleteSources(sources, outputPath); err != nil {
			return nil, err
		}
	}

	return &Outcome{Sources: sources, OutputPath: outputPath}, nil
}

func expandPatterns(patterns []string) ([]string, error) {
	var collected []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: pattern, Err: err}
		}
		if len(matches) == 0 {
			return nil, &NoMatchesError{Pattern: pattern}
		}
		collected = append(collected, matches...)
	}
	return collected, nil
}

// collapseConsecutive drops adjacent duplicate paths after sorting, so the
// same physical file matched by more than one pattern merges once.
func collapseConsecutive(descriptors []descriptor) []string {
	ordered := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		if len(ordered) > 0 && ordered[len(ordered)-1] == d.path {
			continue
		}
		ordered = append(ordered, d.path)
	}
	return ordered
}

// resolveOutputPath applies the destination rules in priority order: explicit
// output, common day directory, single agreed date among dated sources.
func resolveOutputPath(req Request, ordered []string, descriptors []descriptor) (string, error) {
	if req.Output != "" {
		return req.Output, nil
	}

	if dir, date, ok := segment.CommonDayDirectory(ordered); ok {
		return filepath.Join(dir, date.Format(transcript.DateFormat)+".txt"), nil
	}

	var (
		selected     segment.Key
		haveSelected bool
	)
	for _, d := range descriptors {
		if !d.key.HasDate {
			continue
		}
		if haveSelected {
			if !d.key.Date.Equal(selected.Date) {
				return "", ErrMixedDates
			}
			continue
		}
		selected = d.key
		haveSelected = true
	}

	if !haveSelected {
		return "", ErrUndeterminedDate
	}

	baseDir := "."
	if len(ordered) > 0 {
		baseDir = filepath.Dir(ordered[0])
	}
	return filepath.Join(baseDir, selected.Date.Format(transcript.DateFormat)+".txt"), nil
}

// excludeOutput drops any source whose canonical path equals the output's, so
// the destination is never merged into itself or deleted.
func excludeOutput(ordered []string, outputPath string) []string {
	outputCanonical := fileutil.CanonicalPath(outputPath)
	sources := make([]string, 0, len(ordered))
	for _, path := range ordered {
		if fileutil.CanonicalPath(path) == outputCanonical {
			continue
		}
		sources = append(sources, path)
	}
	return sources
}

func writeMerged(sources []string, outputPath string) error {
	var merged strings.Builder
	for idx, path := range sources {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		merged.Write(content)
		// Separate adjacent segments without inserting blank lines.
		if idx+1 != len(sources) && !strings.HasSuffix(merged.String(), "\n") {
			merged.WriteByte('\n')
		}
	}

	if parent := filepath.Dir(outputPath); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", parent, err)
		}
	}

	return fileutil.AtomicWriteFile(outputPath, []byte(merged.String()), 0o644)
}

// deleteSources removes merged segments, re-checking the canonical-equality
// guard so the freshly written output can never delete itself.
func deleteSources(sources []string, outputPath string) error {
	outputCanonical := fileutil.CanonicalPath(outputPath)
	for _, path := range sources {
		if fileutil.CanonicalPath(path) == outputCanonical {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove source %s: %w", path, err)
		}
	}
	return nil
}
