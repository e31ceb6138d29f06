package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is a Sink that writes files below a local directory. Keys are
// slash-separated paths relative to Root; parent directories are created
// as needed. Each file is written to a temporary name in the target
// directory and renamed into place, so readers never see a partial image.
type Dir struct {
	Root string
	Perm os.FileMode // file mode of written files; 0 means 0o644
}

// NewDir returns a Dir sink rooted at root.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

// Resolve returns the local path of key. With a Root, the key is cleaned as
// if rooted, so ".." elements cannot leave Root. With an empty Root the key
// is a slash-separated local path, relative to the working directory or
// absolute. Empty keys, keys naming Root itself and keys with backslashes
// fail with ErrEmptyKey.
func (d *Dir) Resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if key == "" || clean == "/" || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrEmptyKey, key)
	}
	if d.Root == "" {
		return filepath.FromSlash(path.Clean(key)), nil
	}
	return filepath.Join(d.Root, filepath.FromSlash(clean)), nil
}

// Put writes data to Root/key.
func (d *Dir) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst, err := d.Resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("store: create directory: %w", err)
	}
	return writeAtomic(dst, data, d.perm())
}

func (d *Dir) perm() os.FileMode {
	if d.Perm == 0 {
		return 0o644
	}
	return d.Perm
}

// writeAtomic writes data to a temporary file next to dst and renames it.
// The temporary file is closed and, on failure, removed on every path.
func writeAtomic(dst string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	_, werr := w.Write(data)
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := f.Close(); cerr != nil || werr != nil {
		return fmt.Errorf("store: write %s: %w", dst, errors.Join(werr, cerr))
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return fmt.Errorf("store: chmod %s: %w", dst, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("store: rename %s: %w", dst, err)
	}
	return nil
}
