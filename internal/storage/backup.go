package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given blob with rotation
// number n. Lower numbers are more recent (.bak.1 is the latest snapshot).
func BackupPath(blobPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", blobPath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new one.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3 and drops the oldest.
func rotateBackups(blobPath string) error {
	if err := os.Remove(BackupPath(blobPath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		err := os.Rename(BackupPath(blobPath, i), BackupPath(blobPath, i+1))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// Snapshot copies the current blob to .bak.1, rotating older snapshots.
// Taken before destructive operations so a full reset can be undone.
// If the blob doesn't exist there is nothing to snapshot and no error.
func Snapshot(blobPath string) error {
	if _, err := os.Stat(blobPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(blobPath); err != nil {
		return err
	}

	data, err := os.ReadFile(blobPath)
	if err != nil {
		return err
	}

	return os.WriteFile(BackupPath(blobPath, 1), data, 0644)
}

// ListBackups returns the rotation numbers of existing backups, most recent
// first. Returns an empty slice if no backups exist.
func ListBackups(blobPath string) []int {
	var nums []int
	for i := 1; i <= MaxBackupCount; i++ {
		if _, err := os.Stat(BackupPath(blobPath, i)); err == nil {
			nums = append(nums, i)
		}
	}
	return nums
}

// RestoreBackup copies the backup with rotation number n back over the blob.
// The current blob state, if any, is snapshotted first for safety.
func RestoreBackup(blobPath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := BackupPath(blobPath, n)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if err := Snapshot(blobPath); err != nil {
		return err
	}

	return os.WriteFile(blobPath, data, 0644)
}

// RestoreLatest restores the most recent backup, if any
func RestoreLatest(blobPath string) error {
	nums := ListBackups(blobPath)
	if len(nums) == 0 {
		return fmt.Errorf("no backups found")
	}
	return RestoreBackup(blobPath, nums[0])
}
