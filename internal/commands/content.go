package commands

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree2clip/internal/types"
	"github.com/temirov/tree2clip/internal/utils"
)

const (
	// logListContentDirectoryFailed is logged when a directory cannot be listed during collection.
	logListContentDirectoryFailed = "skipping unreadable directory"
	// logPrunedDirectory is logged for each bytecode cache directory left out of the walk.
	logPrunedDirectory = "skipping bytecode cache directory"
	// logSymlinkDirectory is logged for linked directories, which the walk does not enter.
	logSymlinkDirectory = "not following linked directory"
	// logExcludedFile is logged when a file name matches an exclusion pattern.
	logExcludedFile = "skipping excluded file"
	// logReadFileFailed is logged when a file cannot be read; the failure is kept in its record.
	logReadFileFailed = "failed to read file"
)

// ContentCollector gathers the text of every non-excluded file beneath a root.
type ContentCollector struct {
	fileSystem afero.Fs
	logger     *zap.Logger
}

// NewContentCollector constructs a ContentCollector. A nil fileSystem selects
// the host filesystem and a nil logger discards log output.
func NewContentCollector(fileSystem afero.Fs, logger *zap.Logger) *ContentCollector {
	return &ContentCollector{
		fileSystem: resolveFileSystem(fileSystem),
		logger:     resolveLogger(logger),
	}
}

// CollectFileContents collects content blocks from the host directory at rootDirectoryPath.
func CollectFileContents(rootDirectoryPath string, excludePatterns []string, skipAll bool) []string {
	return NewContentCollector(nil, nil).CollectFileContents(rootDirectoryPath, excludePatterns, skipAll)
}

// CollectFileContents returns one labeled block per collected file in traversal order.
func (collector *ContentCollector) CollectFileContents(rootDirectoryPath string, excludePatterns []string, skipAll bool) []string {
	records := collector.CollectFileRecords(rootDirectoryPath, excludePatterns, skipAll)
	if len(records) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(records))
	for _, record := range records {
		blocks = append(blocks, record.Block())
	}
	return blocks
}

// CollectFileRecords walks rootDirectoryPath top-down. Within a directory the
// files are handled in name order before any subdirectory is entered.
// When skipAll is set no file is read and the result is empty.
func (collector *ContentCollector) CollectFileRecords(rootDirectoryPath string, excludePatterns []string, skipAll bool) []types.FileRecord {
	ruleSet := NewExclusionRuleSet(excludePatterns)
	var records []types.FileRecord
	collector.walk(rootDirectoryPath, rootDirectoryPath, ruleSet, skipAll, &records)
	return records
}

func (collector *ContentCollector) walk(rootDirectoryPath string, directoryPath string, ruleSet ExclusionRuleSet, skipAll bool, records *[]types.FileRecord) {
	entries, listError := listDirectory(collector.fileSystem, directoryPath)
	if listError != nil {
		collector.logger.Debug(logListContentDirectoryFailed, zap.String(logFieldPath, directoryPath), zap.Error(listError))
		return
	}

	var subdirectoryPaths []string
	for _, entry := range entries {
		entryPath := filepath.Join(directoryPath, entry.Name)
		if entry.IsDir {
			switch {
			case entry.Name == types.BytecodeCacheDirectoryName:
				collector.logger.Debug(logPrunedDirectory, zap.String(logFieldPath, entryPath))
			case entry.IsSymlink:
				collector.logger.Debug(logSymlinkDirectory, zap.String(logFieldPath, entryPath))
			default:
				subdirectoryPaths = append(subdirectoryPaths, entryPath)
			}
			continue
		}
		if skipAll {
			continue
		}
		if ruleSet.Matches(entry.Name) {
			collector.logger.Debug(logExcludedFile, zap.String(logFieldPath, entryPath))
			continue
		}
		*records = append(*records, collector.readFileRecord(rootDirectoryPath, entryPath))
	}

	for _, subdirectoryPath := range subdirectoryPaths {
		collector.walk(rootDirectoryPath, subdirectoryPath, ruleSet, skipAll, records)
	}
}

// readFileRecord never fails; read errors are captured in the record.
func (collector *ContentCollector) readFileRecord(rootDirectoryPath string, filePath string) types.FileRecord {
	record := types.FileRecord{RelativePath: utils.RelativePathOrSelf(filePath, rootDirectoryPath)}
	content, readError := readTextFile(collector.fileSystem, filePath)
	if readError != nil {
		collector.logger.Debug(logReadFileFailed, zap.String(logFieldEntry, record.RelativePath), zap.Error(readError))
		record.ReadError = readError
		return record
	}
	record.Content = content
	return record
}

// readTextFile reads one file and releases its handle before returning.
func readTextFile(fileSystem afero.Fs, filePath string) (string, error) {
	fileHandle, openError := fileSystem.Open(filePath)
	if openError != nil {
		return "", openError
	}
	defer fileHandle.Close()

	fileBytes, readError := io.ReadAll(fileHandle)
	if readError != nil {
		return "", readError
	}
	return decodeText(fileBytes), nil
}

// decodeText drops invalid UTF-8 sequences and normalizes line endings to "\n".
func decodeText(data []byte) string {
	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
