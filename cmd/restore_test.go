package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nonzeroday/nzd/internal/storage"
)

func TestRunRestore_NoBackup(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), storage.BlobFile)
	d, _, stderr := testDeps(storagePath)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	runRestore()

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), "Error") {
		t.Errorf("Expected error on stderr, got: %s", stderr.String())
	}
}
