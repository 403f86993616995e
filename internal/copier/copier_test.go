package copier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frameshuffle/internal/plan"
	"frameshuffle/internal/scan"
)

func sourceFile(t *testing.T, dir, name, content string) scan.File {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return scan.File{Path: path, Name: name, Size: int64(len(content))}
}

func TestRunCopiesGroupsIntoNumberedFolders(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := sourceFile(t, src, "a.jpg", "alpha")
	b := sourceFile(t, src, "b.jpg", "bravo")
	c := sourceFile(t, src, "c.jpg", "charlie")

	groups := plan.Result{
		{Files: []scan.File{a, b}, Bytes: a.Size + b.Size},
		{Files: []scan.File{c}, Bytes: c.Size},
	}

	if err := New(nil, false).Run(context.Background(), groups, dst); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, tc := range []struct {
		path, content string
	}{
		{filepath.Join(dst, "1", "a.jpg"), "alpha"},
		{filepath.Join(dst, "1", "b.jpg"), "bravo"},
		{filepath.Join(dst, "2", "c.jpg"), "charlie"},
	} {
		got, err := os.ReadFile(tc.path)
		if err != nil {
			t.Fatalf("missing copy %s: %v", tc.path, err)
		}
		if string(got) != tc.content {
			t.Fatalf("content mismatch at %s: got %q want %q", tc.path, got, tc.content)
		}
	}

	if _, err := os.Stat(filepath.Join(dst, "3")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("unexpected extra folder 3")
	}
}

func TestRunRefusesCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := sourceFile(t, src, "a.jpg", "alpha")
	if err := os.MkdirAll(filepath.Join(dst, "1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dst, "1", "a.jpg"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	groups := plan.Result{{Files: []scan.File{a}, Bytes: a.Size}}
	err := New(nil, false).Run(context.Background(), groups, dst)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}

	got, readErr := os.ReadFile(filepath.Join(dst, "1", "a.jpg"))
	if readErr != nil || string(got) != "old" {
		t.Fatalf("pre-existing file was touched: %q %v", got, readErr)
	}
}

func TestRunStopsAtMissingSource(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := sourceFile(t, src, "a.jpg", "alpha")
	ghost := scan.File{Path: filepath.Join(src, "ghost.jpg"), Name: "ghost.jpg", Size: 1}

	groups := plan.Result{{Files: []scan.File{a, ghost}, Bytes: a.Size + 1}}
	if err := New(nil, false).Run(context.Background(), groups, dst); err == nil {
		t.Fatal("expected error for unreadable source file")
	}

	// The copy made before the failure stays in place.
	if _, err := os.Stat(filepath.Join(dst, "1", "a.jpg")); err != nil {
		t.Fatalf("earlier copy missing after failure: %v", err)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	a := sourceFile(t, src, "a.jpg", "alpha")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	groups := plan.Result{{Files: []scan.File{a}, Bytes: a.Size}}
	if err := New(nil, false).Run(ctx, groups, dst); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "dst.jpg")

	content := []byte("verified copy content")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := copyFileVerified(src, dst); err != nil {
		t.Fatalf("copyFileVerified returned error: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q want %q", got, content)
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := copyFileVerified(filepath.Join(dir, "absent"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}
