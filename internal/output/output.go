// Package output assembles the text placed on the clipboard and printed to stdout.
package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	treeHeading             = "Directory Tree:\n"
	fileContentsHeading     = "\n\nFile Contents:\n"
	contentExcludedText     = "\n[File contents excluded]\n"
	noFileContentsFoundText = "\n[No file contents found]\n"
	lineSeparator           = "\n"
)

// CopiedToClipboardMessage is printed after a successful clipboard write.
const CopiedToClipboardMessage = "Directory tree and file contents copied to clipboard."

// FormatTree places the root name above the rendered tree lines.
func FormatTree(rootName string, treeLines []string) string {
	return strings.Join(append([]string{rootName}, treeLines...), lineSeparator)
}

// FormatFileContents joins content blocks, substituting a placeholder when
// content was excluded or nothing was collected.
func FormatFileContents(blocks []string, contentExcluded bool) string {
	if contentExcluded {
		return contentExcludedText
	}
	if len(blocks) == 0 {
		return noFileContentsFoundText
	}
	return strings.Join(blocks, lineSeparator)
}

// FormatReport produces the full clipboard payload.
func FormatReport(treeText string, blocks []string, contentExcluded bool) string {
	return treeHeading + treeText + fileContentsHeading + FormatFileContents(blocks, contentExcluded)
}

// WriteConsoleSummary prints the clipboard confirmation, when the copy
// succeeded, followed by the tree preceded by a blank line.
func WriteConsoleSummary(writer io.Writer, treeText string, copied bool) error {
	if copied {
		if _, writeError := fmt.Fprintln(writer, CopiedToClipboardMessage); writeError != nil {
			return writeError
		}
	}
	_, writeError := fmt.Fprintln(writer, lineSeparator+treeText)
	return writeError
}
