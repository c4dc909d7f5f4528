// Package storage owns the durable representation of the DayLog collection.
// The whole collection is persisted as one JSON array blob; every write
// replaces the blob wholesale via a temp file and an atomic rename.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/logger"
)

const (
	// AppName is the application name used for the config directory
	AppName = "nzd"
	// BlobFile is the name of the JSON blob holding all logs
	BlobFile = "logs.json"
)

// ParseWarning describes a blob that could not be decoded. The collection
// degrades to empty; the raw content is preserved for diagnostics.
type ParseWarning struct {
	Size  int64  // Size of the unreadable blob in bytes
	Error string // Description of the parsing error
}

// LoadResult contains the logs read from the blob plus an optional warning
// when the blob existed but could not be parsed.
type LoadResult struct {
	Logs    []daylog.DayLog
	Warning *ParseWarning
}

// GetStoragePath returns the path to the blob file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, BlobFile), nil
}

// Load reads the full log collection from the blob file. A missing file
// yields an empty collection. A blob that fails to parse also yields an
// empty collection with a warning attached; it is recorded on the diagnostic
// log and never raised to the caller. Results are re-sorted ascending by
// date because the persisted order is not trusted.
func Load(path string) LoadResult {
	result := LoadResult{Logs: []daylog.DayLog{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Warning = &ParseWarning{Error: err.Error()}
			logger.Logger.Warn("failed to read log blob", "path", path, "err", err)
		}
		return result
	}

	var logs []daylog.DayLog
	if err := json.Unmarshal(data, &logs); err != nil {
		result.Warning = &ParseWarning{Size: int64(len(data)), Error: err.Error()}
		logger.Logger.Warn("log blob is corrupted, starting from an empty collection",
			"path", path, "size", len(data), "err", err)
		return result
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})

	result.Logs = logs
	return result
}

// Append adds newLog to the current collection and persists the full
// resulting sequence, replacing the blob wholesale. The returned slice is
// what was persisted; callers should adopt it as their new in-memory state.
func Append(path string, current []daylog.DayLog, newLog daylog.DayLog) ([]daylog.DayLog, error) {
	updated := make([]daylog.DayLog, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, newLog)

	if err := Write(path, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Write persists the given collection as the new blob contents.
// Uses atomic write pattern (write to temp file, then rename) so no reader
// ever observes a partially written blob.
func Write(path string, logs []daylog.DayLog) error {
	data, err := json.Marshal(logs)
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return nil
}

// Clear deletes the blob entirely, returning the store to the absent state.
// Clearing an already-absent store is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// StorageHealth contains information about the health status of the blob file
type StorageHealth struct {
	Exists    bool
	SizeBytes int64
	Parsable  bool
	LogCount  int
	Warning   *ParseWarning
}

// Validate analyzes the blob file and returns health status information.
// Returns an empty health status if the file doesn't exist.
func Validate(path string) (StorageHealth, error) {
	health := StorageHealth{}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}

	health.Exists = true
	health.SizeBytes = info.Size()

	result := Load(path)
	if result.Warning != nil {
		health.Warning = result.Warning
		return health, nil
	}

	health.Parsable = true
	health.LogCount = len(result.Logs)
	return health, nil
}
