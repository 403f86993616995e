package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckSource verifies that dir exists, is a directory, and is listable.
func CheckSource(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot read source folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", dir)
	}
	if err := unix.Access(dir, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("source folder is not readable %s: %w", dir, err)
	}
	return nil
}

// CheckDestination creates dir if needed and verifies that it is an empty,
// writable directory. A non-empty destination is refused outright so old
// and new rotation sets can never mix.
func CheckDestination(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create destination folder %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read destination folder %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("destination folder is not empty: %s (refusing to mix old and new output)", dir)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("destination folder is not writable %s: %w", dir, err)
	}
	return nil
}

// CheckFreeSpace verifies that the filesystem holding dir has at least
// need bytes available to the calling user.
func CheckFreeSpace(dir string, need int64) error {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return fmt.Errorf("cannot stat filesystem for %s: %w", dir, err)
	}
	available := int64(stat.Bavail) * int64(stat.Bsize)
	if need > available {
		return fmt.Errorf("not enough free space in %s: need %d bytes, %d available", dir, need, available)
	}
	return nil
}
