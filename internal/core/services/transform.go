package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// DeduplicateMarker truncates content immediately after the first
// occurrence of marker, dropping any duplicated tail.
// If marker is absent the content is returned unchanged.
func DeduplicateMarker(content, marker string) (string, domain.StepResult) {
	result := domain.StepResult{Step: domain.StepDedupe, Status: domain.StepNotFound}
	if marker == "" {
		return content, result
	}

	p := strings.Index(content, marker)
	if p == -1 {
		return content, result
	}

	result.Matches = strings.Count(content, marker)
	end := p + len(marker)
	if end == len(content) {
		result.Status = domain.StepUnchanged
		return content, result
	}

	result.Status = domain.StepApplied
	result.Removed = len(content) - end
	return content[:end], result
}

// RepairFragment replaces every non-overlapping match of pattern with
// replacement in a single leftmost-first pass. The replacement is literal:
// "$" sequences are not expanded. If nothing matches the content is
// returned byte-identical.
func RepairFragment(content string, pattern *regexp.Regexp, replacement string) (string, domain.StepResult) {
	result := domain.StepResult{Step: domain.StepRepair, Status: domain.StepNotFound}
	if pattern == nil {
		return content, result
	}

	matches := pattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, result
	}

	result.Matches = len(matches)
	repaired := pattern.ReplaceAllLiteralString(content, replacement)
	if repaired == content {
		result.Status = domain.StepUnchanged
		return content, result
	}

	result.Status = domain.StepApplied
	return repaired, result
}

// AuditTagBalance counts opening, self-closing and closing occurrences of
// tag in content. Each opening tag is scanned to its real end, skipping
// '>' inside quoted values and {...} expressions, before it is classified.
// Counting is textual: tags inside strings or comments are counted too.
// It never modifies the content.
func AuditTagBalance(content, tag string) domain.TagBalance {
	balance := domain.TagBalance{Tag: tag}
	if tag == "" {
		return balance
	}

	closing := regexp.MustCompile(fmt.Sprintf(`</%s\s*>`, regexp.QuoteMeta(tag)))
	balance.Closed = len(closing.FindAllStringIndex(content, -1))

	open := "<" + tag
	for i := 0; i < len(content); {
		j := strings.Index(content[i:], open)
		if j < 0 {
			break
		}
		start := i + j + len(open)
		if start >= len(content) || !isTagBoundary(content[start]) {
			i = start
			continue
		}

		selfClosing, end := scanTagEnd(content, start)
		if selfClosing {
			balance.SelfClosed++
		} else {
			balance.Opened++
		}
		i = end
	}
	return balance
}

func isTagBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

// scanTagEnd returns whether the tag starting before i is self-closing and
// the offset just past its closing '>'. An unterminated tag runs to the end
// of content and counts as opening.
func scanTagEnd(content string, i int) (bool, int) {
	var quote byte
	depth := 0
	for ; i < len(content); i++ {
		c := content[i]
		if quote != 0 {
			switch {
			case c == '\\' && depth > 0:
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				return content[i-1] == '/', i + 1
			}
		}
	}
	return false, len(content)
}
