// Package text provides text manipulation functions.
package text

import "strings"

// Dedent removes a common indent from all lines in a string,
// allowing multi-line strings to be written in an indented form:
//
//	const s = text.Dedent(`
//		foo
//		  bar
//	`)
//
// The result is "foo\n  bar".
//
// The common indent is the leading whitespace of the first
// non-blank line. Lines that do not share it are reproduced as is.
// A leading blank line and a trailing blank line are dropped.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	// Drop a leading blank line:
	// the text usually starts right after the opening quote.
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	// Likewise the line holding the closing quote.
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	var indent string
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent = line[:len(line)-len(trimmed)]
		break
	}

	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, indent); ok {
			lines[i] = rest
		}
	}

	return strings.Join(lines, "\n")
}
