package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nonzeroday/nzd/internal/daylog"
)

func testBlobPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), BlobFile)
}

func testLog(t *testing.T, note string, date time.Time) daylog.DayLog {
	t.Helper()
	return daylog.New(date, note, daylog.CategoryMental, daylog.EffortEasy, 3, 4, "")
}

func TestLoad_MissingFile(t *testing.T) {
	result := Load(testBlobPath(t))

	if result.Warning != nil {
		t.Errorf("expected no warning for missing file, got %+v", result.Warning)
	}
	if len(result.Logs) != 0 {
		t.Errorf("expected empty collection, got %d logs", len(result.Logs))
	}
	if result.Logs == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestLoad_CorruptedBlob(t *testing.T) {
	path := testBlobPath(t)
	if err := os.WriteFile(path, []byte(`[{"id":"x","date":`), 0644); err != nil {
		t.Fatalf("failed to write corrupted blob: %v", err)
	}

	result := Load(path)

	if result.Warning == nil {
		t.Fatal("expected a parse warning for corrupted blob")
	}
	if result.Warning.Size == 0 {
		t.Error("expected warning to record blob size")
	}
	if len(result.Logs) != 0 {
		t.Errorf("expected empty collection after corruption, got %d logs", len(result.Logs))
	}
}

func TestLoad_WrongShape(t *testing.T) {
	path := testBlobPath(t)
	// Valid JSON, but not an array of logs.
	if err := os.WriteFile(path, []byte(`{"logs": []}`), 0644); err != nil {
		t.Fatalf("failed to write blob: %v", err)
	}

	result := Load(path)
	if result.Warning == nil {
		t.Fatal("expected a parse warning for non-matching shape")
	}
	if len(result.Logs) != 0 {
		t.Errorf("expected empty collection, got %d logs", len(result.Logs))
	}
}

func TestLoad_SortsByDate(t *testing.T) {
	path := testBlobPath(t)
	now := time.Now()

	// Persist out of order on purpose.
	logs := []daylog.DayLog{
		testLog(t, "third", now),
		testLog(t, "first", now.AddDate(0, 0, -2)),
		testLog(t, "second", now.AddDate(0, 0, -1)),
	}
	data, err := json.Marshal(logs)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write blob: %v", err)
	}

	result := Load(path)
	if result.Warning != nil {
		t.Fatalf("unexpected warning: %+v", result.Warning)
	}
	if len(result.Logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(result.Logs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if result.Logs[i].Note != want {
			t.Errorf("position %d: expected %q, got %q", i, want, result.Logs[i].Note)
		}
	}
}

func TestAppend_RoundTrip(t *testing.T) {
	path := testBlobPath(t)
	l := daylog.New(time.Now(), "write one sentence", daylog.CategorySkill, daylog.EffortMedium, 2, 4, "harder than expected")

	updated, err := Append(path, nil, l)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("expected 1 log, got %d", len(updated))
	}

	result := Load(path)
	if result.Warning != nil {
		t.Fatalf("unexpected warning: %+v", result.Warning)
	}
	if len(result.Logs) != 1 {
		t.Fatalf("expected 1 persisted log, got %d", len(result.Logs))
	}

	got := result.Logs[0]
	if got.ID != l.ID || got.Note != l.Note || got.Category != l.Category ||
		got.Effort != l.Effort || got.MoodBefore != l.MoodBefore ||
		got.MoodAfter != l.MoodAfter || got.Reflection != l.Reflection ||
		got.Timestamp != l.Timestamp {
		t.Errorf("round trip changed fields:\n want %+v\n got  %+v", l, got)
	}
	if !got.Date.Equal(l.Date) {
		t.Errorf("round trip changed date: want %v, got %v", l.Date, got.Date)
	}
}

func TestAppend_PreservesExisting(t *testing.T) {
	path := testBlobPath(t)
	now := time.Now()

	first := testLog(t, "first", now.AddDate(0, 0, -1))
	current, err := Append(path, nil, first)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	second := testLog(t, "second", now)
	current, err = Append(path, current, second)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(current) != 2 {
		t.Fatalf("expected 2 logs in memory, got %d", len(current))
	}

	result := Load(path)
	if len(result.Logs) != 2 {
		t.Fatalf("expected 2 persisted logs, got %d", len(result.Logs))
	}
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	path := testBlobPath(t)
	now := time.Now()

	current := []daylog.DayLog{testLog(t, "existing", now)}
	before := len(current)

	if _, err := Append(path, current, testLog(t, "new", now)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(current) != before {
		t.Error("append mutated the caller's slice")
	}
}

func TestWrite_LeavesNoTempFile(t *testing.T) {
	path := testBlobPath(t)
	if err := Write(path, []daylog.DayLog{testLog(t, "n", time.Now())}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away")
	}
}

func TestClear(t *testing.T) {
	path := testBlobPath(t)
	if _, err := Append(path, nil, testLog(t, "n", time.Now())); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if err := Clear(path); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected blob to be removed")
	}

	result := Load(path)
	if len(result.Logs) != 0 || result.Warning != nil {
		t.Errorf("expected pristine empty state after clear, got %+v", result)
	}
}

func TestClear_AbsentIsNotAnError(t *testing.T) {
	if err := Clear(testBlobPath(t)); err != nil {
		t.Errorf("clearing an absent store should succeed, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	path := testBlobPath(t)

	health, err := Validate(path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if health.Exists {
		t.Error("expected Exists=false for missing blob")
	}

	if _, err := Append(path, nil, testLog(t, "n", time.Now())); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	health, err = Validate(path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !health.Exists || !health.Parsable || health.LogCount != 1 {
		t.Errorf("unexpected health: %+v", health)
	}

	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to corrupt blob: %v", err)
	}
	health, err = Validate(path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if health.Parsable || health.Warning == nil {
		t.Errorf("expected unparsable health with warning, got %+v", health)
	}
}
