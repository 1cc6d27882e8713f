package commands

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/tree2clip/internal/types"
	"github.com/temirov/tree2clip/internal/utils"
)

const (
	// escapeCharacter marks the following pattern byte as literal for doublestar.
	escapeCharacter = '\\'
	// classNegation opens a negated character class.
	classNegation = '!'
)

// ExclusionRuleSet is the deduplicated set of glob patterns that keep a file's
// content out of the collection. Patterns match bare file names.
type ExclusionRuleSet struct {
	patterns map[string]struct{}
	matchers []string
}

// NewExclusionRuleSet returns the union of userPatterns and the default patterns.
func NewExclusionRuleSet(userPatterns []string) ExclusionRuleSet {
	patterns := make(map[string]struct{}, len(types.DefaultExclusionPatterns)+len(userPatterns))
	for _, pattern := range types.DefaultExclusionPatterns {
		patterns[pattern] = struct{}{}
	}
	for _, pattern := range userPatterns {
		patterns[pattern] = struct{}{}
	}
	ruleSet := ExclusionRuleSet{patterns: patterns}
	for _, pattern := range ruleSet.Patterns() {
		ruleSet.matchers = append(ruleSet.matchers, shellGlobToDoublestar(pattern))
	}
	return ruleSet
}

// Patterns returns the members of the set in sorted order.
func (ruleSet ExclusionRuleSet) Patterns() []string {
	return utils.SortedKeys(ruleSet.patterns)
}

// Matches reports whether fileName matches any pattern in the set.
func (ruleSet ExclusionRuleSet) Matches(fileName string) bool {
	for _, matcher := range ruleSet.matchers {
		isMatched, matchError := doublestar.Match(matcher, fileName)
		if matchError == nil && isMatched {
			return true
		}
	}
	return false
}

// shellGlobToDoublestar rewrites a shell glob so that doublestar honors only
// "*", "?", "[...]" and "[!...]". Braces, backslashes, a leading "^" inside a
// class and an unclosed "[" all match themselves.
func shellGlobToDoublestar(pattern string) string {
	var builder strings.Builder
	for index := 0; index < len(pattern); index++ {
		character := pattern[index]
		switch character {
		case '*', '?':
			builder.WriteByte(character)
		case '[':
			closingIndex := characterClassEnd(pattern, index)
			if closingIndex < 0 {
				builder.WriteByte(escapeCharacter)
				builder.WriteByte(character)
				continue
			}
			writeCharacterClass(&builder, pattern[index+1:closingIndex])
			index = closingIndex
		case escapeCharacter, '{', '}', ']':
			builder.WriteByte(escapeCharacter)
			builder.WriteByte(character)
		default:
			builder.WriteByte(character)
		}
	}
	return builder.String()
}

// characterClassEnd returns the index of the "]" closing the class opened at
// openingIndex, or -1 when the class is never closed. A "]" directly after the
// opening bracket (or after "[!") is a member, not the terminator.
func characterClassEnd(pattern string, openingIndex int) int {
	index := openingIndex + 1
	if index < len(pattern) && pattern[index] == classNegation {
		index++
	}
	if index < len(pattern) && pattern[index] == ']' {
		index++
	}
	for index < len(pattern) && pattern[index] != ']' {
		index++
	}
	if index >= len(pattern) {
		return -1
	}
	return index
}

func writeCharacterClass(builder *strings.Builder, members string) {
	builder.WriteByte('[')
	if strings.HasPrefix(members, string(classNegation)) {
		builder.WriteByte(classNegation)
		members = members[1:]
	}
	for index := 0; index < len(members); index++ {
		member := members[index]
		switch member {
		case escapeCharacter, ']', '^', '[', '!':
			builder.WriteByte(escapeCharacter)
		}
		builder.WriteByte(member)
	}
	builder.WriteByte(']')
}
