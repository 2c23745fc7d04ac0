// Package errors provides error formatting utilities for the C− analyzer
// front end. It renders listing diagnostics with the offending source
// line and a visual indicator when the original source text is available.
package errors

import (
	"fmt"
	"strings"
)

// ListingError represents a single diagnostic tied to a source line.
type ListingError struct {
	Message string
	Source  string
	Line    int
}

// NewListingError creates a new listing error. Source may be empty when
// the original program text is not available; formatting then falls back
// to the bare message.
func NewListingError(line int, message, source string) *ListingError {
	return &ListingError{
		Line:    line,
		Message: message,
		Source:  source,
	}
}

// Error implements the error interface.
func (e *ListingError) Error() string {
	return e.Format(false)
}

// Format formats the diagnostic with source context. If color is true,
// ANSI color codes are used for terminal output.
func (e *ListingError) Format(color bool) string {
	var sb strings.Builder

	sourceLine := e.getSourceLine(e.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
		if color {
			sb.WriteString("\033[1;31m") // Red bold
		}
		sb.WriteString(strings.Repeat("^", max(1, len(strings.TrimRight(sourceLine, " \t")))))
		if color {
			sb.WriteString("\033[0m") // Reset
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	return sb.String()
}

// getSourceLine extracts a specific line from the source code. Lines are
// 1-indexed.
func (e *ListingError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// FormatAll formats multiple listing errors, each with its source
// context.
func FormatAll(errs []*ListingError, color bool) string {
	if len(errs) == 0 {
		return ""
	}

	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analysis failed with %d error(s):\n\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
