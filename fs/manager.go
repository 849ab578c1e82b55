package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem wraps the Afero Fs interface
type FileSystem struct {
	Fs afero.Fs
}

// NewMemoryFileSystem creates a new in-memory file system
func NewMemoryFileSystem() *FileSystem {
	return &FileSystem{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOsFileSystem creates a new OS-based file system
func NewOsFileSystem() *FileSystem {
	return &FileSystem{
		Fs: afero.NewOsFs(),
	}
}

// NewScopedOsFileSystem creates an OS-based file system rooted at the
// given directory. All paths passed to the manager are resolved
// relative to root.
func NewScopedOsFileSystem(root string) *FileSystem {
	return &FileSystem{
		Fs: afero.NewBasePathFs(afero.NewOsFs(), root),
	}
}

// EnsureDir creates the directory at path. It reports whether the
// directory was created by this call: a path that already exists as a
// directory returns (false, nil).
func (fs *FileSystem) EnsureDir(path string) (created bool, err error) {
	info, err := fs.Fs.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, fmt.Errorf("path %s exists and is not a directory", path)
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("error checking directory %s: %w", path, err)
	}
	if err := fs.Fs.MkdirAll(path, 0755); err != nil {
		return false, fmt.Errorf("error creating directory %s: %w", path, err)
	}
	return true, nil
}

// WriteFile creates a new file with the given content or overwrites an
// existing file with the content. Parent directories are created as
// needed.
func (fs *FileSystem) WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := fs.Fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	err := afero.WriteFile(fs.Fs, path, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of the file at path.
func (fs *FileSystem) ReadFile(path string) (string, error) {
	content, err := afero.ReadFile(fs.Fs, path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(content), nil
}

// IsDir checks if a path is a directory
func (fs *FileSystem) IsDir(path string) bool {
	info, err := fs.Fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists checks if a path exists
func (fs *FileSystem) Exists(path string) bool {
	_, err := fs.Fs.Stat(path)
	return err == nil
}
