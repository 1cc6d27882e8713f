package output_test

import (
	"bytes"
	"testing"

	"github.com/temirov/tree2clip/internal/output"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	treeText := output.FormatTree("project", []string{"├── a.txt", "└── b.txt"})
	testCases := []struct {
		name            string
		blocks          []string
		contentExcluded bool
		expected        string
	}{
		{
			name:            "content_excluded",
			contentExcluded: true,
			expected:        "Directory Tree:\nproject\n├── a.txt\n└── b.txt\n\nFile Contents:\n\n[File contents excluded]\n",
		},
		{
			name:     "no_blocks",
			expected: "Directory Tree:\nproject\n├── a.txt\n└── b.txt\n\nFile Contents:\n\n[No file contents found]\n",
		},
		{
			name:     "blocks_joined_with_newline",
			blocks:   []string{"\n=== a.txt ===\nalpha", "\n=== b.txt ===\nbeta"},
			expected: "Directory Tree:\nproject\n├── a.txt\n└── b.txt\n\nFile Contents:\n\n=== a.txt ===\nalpha\n\n=== b.txt ===\nbeta",
		},
		{
			name:            "exclusion_wins_over_blocks",
			blocks:          []string{"\n=== a.txt ===\nalpha"},
			contentExcluded: true,
			expected:        "Directory Tree:\nproject\n├── a.txt\n└── b.txt\n\nFile Contents:\n\n[File contents excluded]\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			actual := output.FormatReport(treeText, testCase.blocks, testCase.contentExcluded)
			if actual != testCase.expected {
				t.Fatalf("unexpected report\nwant %q\n got %q", testCase.expected, actual)
			}
		})
	}
}

func TestFormatTreeWithoutLines(t *testing.T) {
	t.Parallel()

	if actual := output.FormatTree("empty", nil); actual != "empty" {
		t.Fatalf("expected bare root name, got %q", actual)
	}
}

func TestWriteConsoleSummary(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		copied   bool
		expected string
	}{
		{
			name:     "after_copy",
			copied:   true,
			expected: output.CopiedToClipboardMessage + "\n\nroot\n└── file\n",
		},
		{
			name:     "without_copy",
			copied:   false,
			expected: "\nroot\n└── file\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var buffer bytes.Buffer
			if err := output.WriteConsoleSummary(&buffer, "root\n└── file", testCase.copied); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buffer.String() != testCase.expected {
				t.Fatalf("unexpected output\nwant %q\n got %q", testCase.expected, buffer.String())
			}
		})
	}
}
