package dictionary

import (
	"fmt"
	"sort"
)

// Severity grades an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one diagnostic found while building the index.
type Issue struct {
	Severity Severity `yaml:"severity"`
	Line     int      `yaml:"line"`
	Language string   `yaml:"language,omitempty"`
	Word     string   `yaml:"word,omitempty"`
	Message  string   `yaml:"message"`
	Detail   string   `yaml:"detail,omitempty"`
}

func (i Issue) Error() string {
	location := fmt.Sprintf("line %d", i.Line)
	if i.Language != "" {
		location += fmt.Sprintf(" (%s %q)", i.Language, i.Word)
	}
	if i.Detail != "" {
		return fmt.Sprintf("%s: %s, %s", location, i.Message, i.Detail)
	}
	return fmt.Sprintf("%s: %s", location, i.Message)
}

// Issues is an ordered list of diagnostics.
type Issues []Issue

// HasErrors reports whether any issue has error severity.
func (is Issues) HasErrors() bool {
	return is.Count(SeverityError) > 0
}

// Count returns the number of issues with the given severity.
func (is Issues) Count(severity Severity) int {
	n := 0
	for _, i := range is {
		if i.Severity == severity {
			n++
		}
	}
	return n
}

// Filter returns the issues with the given severity in their original order.
func (is Issues) Filter(severity Severity) Issues {
	var filtered Issues
	for _, i := range is {
		if i.Severity == severity {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

// ByMessage groups issues by message. Groups are sorted by size, largest
// first, then by message.
func (is Issues) ByMessage() []IssueGroup {
	index := map[string]int{}
	var groups []IssueGroup
	for _, i := range is {
		n, ok := index[i.Message]
		if !ok {
			n = len(groups)
			index[i.Message] = n
			groups = append(groups, IssueGroup{Message: i.Message, Severity: i.Severity})
		}
		groups[n].Issues = append(groups[n].Issues, i)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		if len(groups[a].Issues) != len(groups[b].Issues) {
			return len(groups[a].Issues) > len(groups[b].Issues)
		}
		return groups[a].Message < groups[b].Message
	})
	return groups
}

// IssueGroup is a set of issues sharing one message.
type IssueGroup struct {
	Message  string
	Severity Severity
	Issues   Issues
}
