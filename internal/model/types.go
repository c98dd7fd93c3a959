// Package model defines the domain types for the timelist-sorter CLI.
//
// These types are used throughout the application for passing data between
// the sorting core, the editor adapter and the CLI layer.
package model

import (
	"fmt"
	"strings"
)

// MinutesPerDay is the number of distinct minute-of-day values (00:00-23:59).
const MinutesPerDay = 24 * 60

// UnknownMinutes is the integer form of Unknown, returned by TimeOfDay.Int.
const UnknownMinutes = -1

// TimeOfDay is either a known minute-of-day (0-1439) or Unknown.
// The zero value is Unknown.
type TimeOfDay struct {
	minutes int
	known   bool
}

// Unknown is the TimeOfDay of a line without a valid HH:MM token.
var Unknown = TimeOfDay{}

// Known returns the TimeOfDay for the given minute-of-day.
// It returns an error if minutes is outside 0-1439.
func Known(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return Unknown, fmt.Errorf("time of day: %d minutes out of range (0-%d)", minutes, MinutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes, known: true}, nil
}

// At returns the TimeOfDay for hour and minute.
// It returns an error if either component is out of range.
func At(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return Unknown, fmt.Errorf("time of day: hour %d out of range (0-23)", hour)
	}
	if minute < 0 || minute > 59 {
		return Unknown, fmt.Errorf("time of day: minute %d out of range (0-59)", minute)
	}
	return Known(hour*60 + minute)
}

// IsKnown reports whether t carries a minute-of-day.
func (t TimeOfDay) IsKnown() bool {
	return t.known
}

// Minutes returns the minute-of-day and true, or 0 and false for Unknown.
func (t TimeOfDay) Minutes() (int, bool) {
	return t.minutes, t.known
}

// Int returns the minute-of-day, or UnknownMinutes for Unknown.
func (t TimeOfDay) Int() int {
	if !t.known {
		return UnknownMinutes
	}
	return t.minutes
}

// Compare orders t against u: known times ascending, Unknown after every
// known time. Two Unknown values compare equal.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch {
	case !t.known && !u.known:
		return 0
	case !t.known:
		return 1
	case !u.known:
		return -1
	case t.minutes < u.minutes:
		return -1
	case t.minutes > u.minutes:
		return 1
	default:
		return 0
	}
}

// String returns "HH:MM", or "--:--" for Unknown.
func (t TimeOfDay) String() string {
	if !t.known {
		return "--:--"
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// ListItem is a list-item line together with its extracted time and its
// position within the scope being sorted (a selection or one list group).
//
// ListItems are built fresh for each sort call. Line is never modified;
// sorting only reorders items.
type ListItem struct {
	// Line is the original line text, including indentation and marker.
	Line string

	// Time is the first HH:MM token on the line, or Unknown.
	Time TimeOfDay

	// Index is the 0-based position of the line within its scope.
	Index int
}

// Less reports whether item a sorts before item b: by time with unknown
// times last, and by original index when the times compare equal.
func (a ListItem) Less(b ListItem) bool {
	if c := a.Time.Compare(b.Time); c != 0 {
		return c < 0
	}
	return a.Index < b.Index
}

// ListGroup is one maximal contiguous run of list-item lines in a document.
// StartIndex and EndIndex are 0-based and inclusive.
type ListGroup struct {
	StartIndex int
	EndIndex   int
}

// Len returns the number of lines in the group.
func (g ListGroup) Len() int {
	return g.EndIndex - g.StartIndex + 1
}

// String returns the group's 1-based line range, e.g. "3-5".
func (g ListGroup) String() string {
	return fmt.Sprintf("%d-%d", g.StartIndex+1, g.EndIndex+1)
}

// OutputFormat selects how a sorted document is written.
type OutputFormat string

const (
	// FormatMarkdown writes the sorted Markdown text as is.
	FormatMarkdown OutputFormat = "markdown"

	// FormatHTML renders the sorted Markdown to HTML.
	FormatHTML OutputFormat = "html"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the
// predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Matching is case-insensitive; "md" is accepted as an alias for markdown.
func ParseOutputFormat(s string) (OutputFormat, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "md" {
		v = string(FormatMarkdown)
	}
	format := OutputFormat(v)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: markdown, html)", s)
	}
	return format, nil
}

// ExitCode defines the CLI exit codes. Scripts can use them to tell a
// no-op run apart from a real failure.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitNoSelection indicates selection mode was invoked with nothing
	// selected.
	ExitNoSelection ExitCode = 2

	// ExitNoListItems indicates the input had no list items, so nothing
	// was sorted. The input is passed through unchanged.
	ExitNoListItems ExitCode = 3

	// ExitInvalidConfig indicates the configuration file could not be
	// parsed or contains invalid values.
	ExitInvalidConfig ExitCode = 4

	// ExitInputNotFound indicates the input file does not exist.
	ExitInputNotFound ExitCode = 5

	// ExitInvalidRange indicates a --lines range that does not fit the
	// input.
	ExitInvalidRange ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
