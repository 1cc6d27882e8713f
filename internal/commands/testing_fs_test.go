package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

var errSimulatedPermission = errors.New("permission denied")

// failingFs refuses to open the configured paths.
type failingFs struct {
	afero.Fs
	deniedPaths map[string]struct{}
}

func newFailingFs(base afero.Fs, deniedPaths ...string) *failingFs {
	denied := make(map[string]struct{}, len(deniedPaths))
	for _, deniedPath := range deniedPaths {
		denied[filepath.Clean(deniedPath)] = struct{}{}
	}
	return &failingFs{Fs: base, deniedPaths: denied}
}

func (fileSystem *failingFs) Open(name string) (afero.File, error) {
	if _, denied := fileSystem.deniedPaths[filepath.Clean(name)]; denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: errSimulatedPermission}
	}
	return fileSystem.Fs.Open(name)
}

func (fileSystem *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if _, denied := fileSystem.deniedPaths[filepath.Clean(name)]; denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: errSimulatedPermission}
	}
	return fileSystem.Fs.OpenFile(name, flag, perm)
}

// writeFiles creates every file in contents, with parent directories, on fileSystem.
func writeFiles(t *testing.T, fileSystem afero.Fs, root string, contents map[string]string) {
	t.Helper()
	for relativePath, content := range contents {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		if err := fileSystem.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
		}
		if err := afero.WriteFile(fileSystem, fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", fullPath, err)
		}
	}
}

// makeDirectories creates empty directories on fileSystem.
func makeDirectories(t *testing.T, fileSystem afero.Fs, root string, relativePaths ...string) {
	t.Helper()
	for _, relativePath := range relativePaths {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		if err := fileSystem.MkdirAll(fullPath, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", fullPath, err)
		}
	}
}
