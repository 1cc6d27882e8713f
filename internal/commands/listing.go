// Package commands contains the directory traversal logic behind tree2clip:
// rendering the tree and collecting file contents.
package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree2clip/internal/types"
)

const (
	// logFieldPath names the absolute path in log entries.
	logFieldPath = "path"
	// logFieldEntry names a root-relative path in log entries.
	logFieldEntry = "entry"
)

// resolveFileSystem returns the host filesystem when none is configured.
func resolveFileSystem(fileSystem afero.Fs) afero.Fs {
	if fileSystem == nil {
		return afero.NewOsFs()
	}
	return fileSystem
}

// resolveLogger returns a no-op logger when none is configured.
func resolveLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// listDirectory returns the children of directoryPath sorted by name.
// Symbolic links are classified by their target; a dangling link is a file.
func listDirectory(fileSystem afero.Fs, directoryPath string) ([]types.DirectoryEntry, error) {
	fileInfos, readDirectoryError := afero.ReadDir(fileSystem, directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}
	entries := make([]types.DirectoryEntry, 0, len(fileInfos))
	for _, fileInfo := range fileInfos {
		entry := types.DirectoryEntry{
			Name:      fileInfo.Name(),
			IsDir:     fileInfo.IsDir(),
			IsSymlink: fileInfo.Mode()&os.ModeSymlink != 0,
		}
		if entry.IsSymlink {
			targetInfo, statError := fileSystem.Stat(filepath.Join(directoryPath, entry.Name))
			entry.IsDir = statError == nil && targetInfo.IsDir()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
