// Package types defines the data structures shared by the tree2clip packages.
package types

const (
	// AccessDeniedPlaceholder replaces the children of a directory that cannot be listed.
	AccessDeniedPlaceholder = "[Access Denied]"
	// BytecodeCacheDirectoryName is never descended into while collecting content.
	BytecodeCacheDirectoryName = "__pycache__"

	// ConnectorMiddle precedes every entry that has a later sibling.
	ConnectorMiddle = "├── "
	// ConnectorLast precedes the final entry of a directory.
	ConnectorLast = "└── "
	// ContinuationMiddle extends the prefix beneath an entry that has a later sibling.
	ContinuationMiddle = "│   "
	// ContinuationLast extends the prefix beneath the final entry of a directory.
	ContinuationLast = "    "
	// FailedToReadSuffix follows the path in the header of an unreadable file.
	FailedToReadSuffix = " (failed to read)"
	// FileHeaderDelimiter surrounds the path in every content block header.
	FileHeaderDelimiter = "==="
)

// DefaultExclusionPatterns are applied to every content collection.
var DefaultExclusionPatterns = []string{"*.bin", "*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.pyc"}

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
}

// DirectoryEntry is one child discovered by listing a directory.
// IsDir follows symbolic links; IsSymlink records whether the entry itself is a link.
type DirectoryEntry struct {
	Name      string
	IsDir     bool
	IsSymlink bool
}

// FileRecord is the outcome of reading one file during content collection.
// Exactly one of Content or ReadError is meaningful.
type FileRecord struct {
	RelativePath string
	Content      string
	ReadError    error
}

// Failed reports whether the file could not be read.
func (record FileRecord) Failed() bool {
	return record.ReadError != nil
}

// Block renders the record as a labeled content block.
func (record FileRecord) Block() string {
	if record.Failed() {
		return "\n" + FileHeaderDelimiter + " " + record.RelativePath + FailedToReadSuffix + " " + FileHeaderDelimiter + "\n" + record.ReadError.Error()
	}
	return "\n" + FileHeaderDelimiter + " " + record.RelativePath + " " + FileHeaderDelimiter + "\n" + record.Content
}
