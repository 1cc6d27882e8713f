package commands

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree2clip/internal/types"
)

// logListDirectoryFailed is logged when a directory is rendered as the access denied placeholder.
const logListDirectoryFailed = "unable to list directory for tree"

// TreeBuilder renders directory hierarchies as connector-decorated text lines.
type TreeBuilder struct {
	fileSystem afero.Fs
	logger     *zap.Logger
}

// NewTreeBuilder constructs a TreeBuilder. A nil fileSystem selects the host
// filesystem and a nil logger discards log output.
func NewTreeBuilder(fileSystem afero.Fs, logger *zap.Logger) *TreeBuilder {
	return &TreeBuilder{
		fileSystem: resolveFileSystem(fileSystem),
		logger:     resolveLogger(logger),
	}
}

// RenderTree renders the host directory at rootDirectoryPath.
func RenderTree(rootDirectoryPath string, prefix string) []string {
	return NewTreeBuilder(nil, nil).RenderTree(rootDirectoryPath, prefix)
}

// RenderTree returns one line per entry beneath directoryPath, depth first,
// with siblings in byte order. A directory that cannot be listed contributes
// a single placeholder line instead of its children.
func (treeBuilder *TreeBuilder) RenderTree(directoryPath string, prefix string) []string {
	entries, listError := listDirectory(treeBuilder.fileSystem, directoryPath)
	if listError != nil {
		treeBuilder.logger.Debug(logListDirectoryFailed, zap.String(logFieldPath, directoryPath), zap.Error(listError))
		return []string{prefix + types.AccessDeniedPlaceholder}
	}

	var lines []string
	for entryIndex, entry := range entries {
		connector := types.ConnectorMiddle
		continuation := types.ContinuationMiddle
		if entryIndex == len(entries)-1 {
			connector = types.ConnectorLast
			continuation = types.ContinuationLast
		}
		lines = append(lines, prefix+connector+entry.Name)
		if entry.IsDir {
			childPath := filepath.Join(directoryPath, entry.Name)
			lines = append(lines, treeBuilder.RenderTree(childPath, prefix+continuation)...)
		}
	}
	return lines
}
