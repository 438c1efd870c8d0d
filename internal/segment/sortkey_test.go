package segment_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tapescript/internal/segment"
)

func TestKeyForPathFlatShape(t *testing.T) {
	key, err := segment.KeyForPath("/tmp/20250127_061901_111901.txt")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if !key.HasDate {
		t.Fatal("flat shape must carry a date")
	}
	if got := key.Date.Format("2006-01-02"); got != "2025-01-27" {
		t.Fatalf("date: %s", got)
	}
	if want := 6*time.Hour + 19*time.Minute + 1*time.Second; key.Start != want {
		t.Fatalf("start: %v", key.Start)
	}
}

func TestKeyForPathNestedShapeWithDashedParent(t *testing.T) {
	key, err := segment.KeyForPath("/data/2025-01-27/061901-111901.txt")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if !key.HasDate {
		t.Fatal("dashed parent directory should supply the date")
	}
	if got := key.Date.Format("2006-01-02"); got != "2025-01-27" {
		t.Fatalf("date: %s", got)
	}
}

func TestKeyForPathNestedShapeWithAncestry(t *testing.T) {
	key, err := segment.KeyForPath(filepath.Join("root", "2025", "01", "27", "061901-111901.txt"))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if !key.HasDate {
		t.Fatal("YYYY/MM/DD ancestry should supply the date")
	}
	if got := key.Date.Format("2006-01-02"); got != "2025-01-27" {
		t.Fatalf("date: %s", got)
	}
}

func TestKeyForPathNestedShapeWithoutDateEvidence(t *testing.T) {
	key, err := segment.KeyForPath("/scratch/061901-111901.txt")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if key.HasDate {
		t.Fatal("no directory evidence, date must be absent")
	}
}

func TestKeyForPathRejectsUnknownShapes(t *testing.T) {
	cases := []string{
		"/tmp/notes.txt",
		"/tmp/meeting-notes.txt",
		"/tmp/2025-01-27.txt",
		"/tmp/abc123-def456.txt",
		"/tmp/notes_about_meeting.txt",
		"/tmp/2025_01_27.txt",
		"/tmp/20251301_061901_111901.txt", // month 13
		"/tmp/20250127_250000_111901.txt", // hour 25
		"/tmp/256060-111901.txt",          // invalid clock
	}
	for _, path := range cases {
		_, err := segment.KeyForPath(path)
		var unrecognized *segment.UnrecognizedFilenameError
		if !errors.As(err, &unrecognized) {
			t.Fatalf("%s: expected UnrecognizedFilenameError, got %v", path, err)
		}
		if unrecognized.Path != path {
			t.Fatalf("error should carry the offending path, got %q", unrecognized.Path)
		}
	}
}

func TestKeyCompareOrdersDateThenStart(t *testing.T) {
	jan27 := time.Date(2025, time.January, 27, 0, 0, 0, 0, time.UTC)
	jan28 := time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC)

	dateless := segment.Key{Start: 10 * time.Hour}
	early27 := segment.Key{Date: jan27, HasDate: true, Start: 6 * time.Hour}
	late27 := segment.Key{Date: jan27, HasDate: true, Start: 11 * time.Hour}
	any28 := segment.Key{Date: jan28, HasDate: true, Start: 1 * time.Hour}

	if dateless.Compare(early27) != -1 {
		t.Fatal("absent date must sort before any date")
	}
	if early27.Compare(late27) != -1 {
		t.Fatal("same date must order by start time")
	}
	if late27.Compare(any28) != -1 {
		t.Fatal("earlier date must sort first regardless of start")
	}
	if late27.Compare(late27) != 0 {
		t.Fatal("equal keys must compare equal")
	}
	if any28.Compare(early27) != 1 {
		t.Fatal("later date must sort after")
	}
}

func TestCommonDayDirectory(t *testing.T) {
	shared := []string{
		filepath.Join("root", "2025", "01", "27", "061901-111901.txt"),
		filepath.Join("root", "2025", "01", "27", "112256-162256.txt"),
	}
	dir, date, ok := segment.CommonDayDirectory(shared)
	if !ok {
		t.Fatal("expected a common day directory")
	}
	if want := filepath.Join("root", "2025", "01", "27"); dir != want {
		t.Fatalf("dir: %s", dir)
	}
	if got := date.Format("2006-01-02"); got != "2025-01-27" {
		t.Fatalf("date: %s", got)
	}

	split := []string{
		filepath.Join("root", "2025", "01", "27", "061901-111901.txt"),
		filepath.Join("root", "2025", "01", "28", "112256-162256.txt"),
	}
	if _, _, ok := segment.CommonDayDirectory(split); ok {
		t.Fatal("different day directories must not report a common one")
	}

	if _, _, ok := segment.CommonDayDirectory(nil); ok {
		t.Fatal("empty input must not report a common directory")
	}

	mixed := []string{
		filepath.Join("root", "2025", "01", "27", "061901-111901.txt"),
		filepath.Join("scratch", "112256-162256.txt"),
	}
	if _, _, ok := segment.CommonDayDirectory(mixed); ok {
		t.Fatal("a path without date evidence must defeat detection")
	}
}
