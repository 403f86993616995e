package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// File describes one candidate photo. Fields are set once during
// enumeration and read-only afterwards.
type File struct {
	Path string
	Name string
	Size int64
}

// Collect lists the jpg/jpeg regular files directly inside dir. Entries
// that are not regular files, or whose extension does not match, are
// skipped. A filename that is not valid UTF-8 is an error rather than a
// skip: it would otherwise surface much later as a broken destination path.
func Collect(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list source folder %s: %w", dir, err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !isJPEG(name) {
			continue
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("non-utf8 filename in %s: %q", dir, name)
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", filepath.Join(dir, name), err)
		}
		files = append(files, File{
			Path: filepath.Join(dir, name),
			Name: name,
			Size: info.Size(),
		})
	}
	return files, nil
}

func isJPEG(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.EqualFold(ext, "jpg") || strings.EqualFold(ext, "jpeg")
}
