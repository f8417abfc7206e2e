package lockfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	data, err := os.ReadFile(lock.Path())
	if err != nil {
		t.Fatalf("lock file not readable: %v", err)
	}
	if !strings.Contains(string(data), "pid=") || !strings.Contains(string(data), "started=") {
		t.Errorf("unexpected lock contents %q", data)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
		t.Errorf("expected lock file removed, stat err = %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Errorf("second Release should be a no-op, got %v", err)
	}
}

func TestLockConflict(t *testing.T) {
	dir := t.TempDir()
	first, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	defer first.Release()

	_, err = AcquireLock(dir)
	var lockErr *LockError
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected *LockError, got %v", err)
	}
	if !strings.Contains(lockErr.Holder, "running") {
		t.Errorf("expected holder description, got %q", lockErr.Holder)
	}
	if !strings.Contains(err.Error(), "another Healing Guru instance") {
		t.Errorf("unexpected error text %q", err.Error())
	}

	// The failed attempt must not clobber the holder's record.
	data, _ := os.ReadFile(first.Path())
	if !strings.Contains(string(data), "pid=") {
		t.Errorf("holder info lost: %q", data)
	}
}

func TestReacquireAfterRelease(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	lock.Release()

	again, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("reacquire failed: %v", err)
	}
	again.Release()
}

func TestDescribeHolder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LockFileName)

	if got := describeHolder(path); got != "" {
		t.Errorf("missing file should describe nothing, got %q", got)
	}

	os.WriteFile(path, []byte("garbage\n"), 0o644)
	if got := describeHolder(path); got != "" {
		t.Errorf("expected empty description, got %q", got)
	}

	os.WriteFile(path, []byte("pid=999999999\nstarted=2026-01-02T03:04:05Z\n"), 0o644)
	got := describeHolder(path)
	if !strings.Contains(got, "stale lock") || !strings.Contains(got, "2026-01-02") {
		t.Errorf("unexpected description %q", got)
	}
}

func TestProcessAlive(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Error("expected current process to be alive")
	}
	if processAlive(999999999) {
		t.Error("expected bogus pid to be dead")
	}
}
