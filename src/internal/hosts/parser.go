package hosts

import (
	"strings"
)

// SkipReason tells why a non-empty line produced no entry.
type SkipReason string

const (
	SkipComment   SkipReason = "comment"
	SkipMalformed SkipReason = "malformed"
	SkipNotIPv4   SkipReason = "not_ipv4"
)

// SkippedLine is a diagnostic for a line the parser ignored.
type SkippedLine struct {
	Line   int        `json:"line"`
	Text   string     `json:"text"`
	Reason SkipReason `json:"reason"`
}

// ParseResult holds parsed entries in file order plus skipped-line diagnostics.
type ParseResult struct {
	Entries []Entry       `json:"entries"`
	Skipped []SkippedLine `json:"skipped"`
}

// Parse reads hosts file text. It never fails: lines it does not understand
// are reported in Skipped and parsing continues.
func Parse(raw string) ParseResult {
	result := ParseResult{Entries: []Entry{}}

	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		entries, reason := parseLine(trimmed)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedLine{Line: i + 1, Text: trimmed, Reason: reason})
			continue
		}
		result.Entries = append(result.Entries, entries...)
	}

	return result
}

// ParseEntries is Parse without diagnostics.
func ParseEntries(raw string) []Entry {
	return Parse(raw).Entries
}

func parseLine(line string) ([]Entry, SkipReason) {
	if rest, ok := strings.CutPrefix(line, "#"); ok {
		// "# <ip> <hostname>" with an optional trailing comment. More than
		// one hostname makes it a plain comment.
		fields := mappingFields(rest)
		if len(fields) == 2 && IsIPv4Shaped(fields[0]) {
			return []Entry{{IP: fields[0], Hostname: fields[1], Enabled: false}}, ""
		}
		return nil, SkipComment
	}

	fields := mappingFields(line)
	if len(fields) < 2 {
		return nil, SkipMalformed
	}
	if !IsIPv4Shaped(fields[0]) {
		return nil, SkipNotIPv4
	}

	entries := make([]Entry, 0, len(fields)-1)
	for _, hostname := range fields[1:] {
		entries = append(entries, Entry{IP: fields[0], Hostname: hostname, Enabled: true})
	}
	return entries, ""
}

// mappingFields cuts s at an inline comment and splits it on whitespace.
func mappingFields(s string) []string {
	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		s = s[:idx]
	}
	return strings.Fields(s)
}
