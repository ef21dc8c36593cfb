package worklock

import (
	"path/filepath"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.xlsx")

	release, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}

	if _, err := Acquire(path); err == nil {
		t.Fatal("expected second Acquire to fail while locked")
	}

	release()

	release2, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire after release returned error: %v", err)
	}
	release2()
}
