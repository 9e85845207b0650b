package terraform

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFileBytes bounds how much of a single file the scanner will read.
// Larger files are recorded as present with content omitted.
const MaxFileBytes = 1 << 20

// DirEntry describes one entry returned by FS.ListEntries.
type DirEntry struct {
	Name  string
	IsDir bool
}

// FS is the file-access capability consumed by the module scanner. The
// production implementation is local disk; tests use an in-memory map.
type FS interface {
	ListEntries(ctx context.Context, path string) ([]DirEntry, error)
	ReadText(ctx context.Context, path string) (string, error)
}

// DirFS reads from the local filesystem using slash-separated paths.
type DirFS struct{}

// ListEntries returns the entries of a directory, sorted by name.
func (DirFS) ListEntries(ctx context.Context, dir string) ([]DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	osEntries, err := os.ReadDir(filepath.FromSlash(dir))
	if err != nil {
		return nil, err
	}
	entries := make([]DirEntry, 0, len(osEntries))
	for _, e := range osEntries {
		entries = append(entries, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return entries, nil
}

// ReadText reads a file's content, bounded by MaxFileBytes plus one byte so
// the caller can detect truncation.
func (DirFS) ReadText(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Open(filepath.FromSlash(file))
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileBytes+1))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MapFS is an in-memory FS keyed by slash-separated file paths relative to
// the virtual root ".". Directories are implied by path segments. Paths in
// ReadErrs are listed like regular files but fail on read, which lets tests
// exercise the scanner's per-file error handling.
type MapFS struct {
	Files    map[string]string
	ReadErrs map[string]error
}

// ListEntries lists the immediate children of dir.
func (m MapFS) ListEntries(ctx context.Context, dir string) ([]DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir = path.Clean(dir)
	prefix := ""
	if dir != "." && dir != "/" {
		prefix = strings.TrimPrefix(dir, "./") + "/"
	}

	seen := map[string]bool{}
	var entries []DirEntry
	collect := func(p string) {
		if !strings.HasPrefix(p, prefix) {
			return
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest == "" {
			return
		}
		name, isChildDir := splitFirstSegment(rest)
		if seen[name] {
			return
		}
		seen[name] = true
		entries = append(entries, DirEntry{Name: name, IsDir: isChildDir})
	}
	for p := range m.Files {
		collect(p)
	}
	for p := range m.ReadErrs {
		collect(p)
	}
	if len(entries) == 0 && prefix != "" {
		return nil, fmt.Errorf("list %s: %w", dir, fs.ErrNotExist)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// ReadText returns the file content for an exact path match.
func (m MapFS) ReadText(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	file = strings.TrimPrefix(path.Clean(file), "./")
	if err, ok := m.ReadErrs[file]; ok {
		return "", err
	}
	content, ok := m.Files[file]
	if !ok {
		return "", fmt.Errorf("read %s: %w", file, fs.ErrNotExist)
	}
	return content, nil
}

func splitFirstSegment(p string) (name string, isDir bool) {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i], true
	}
	return p, false
}
