// Package model defines the domain types and value objects for the
// timelist-sorter CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (TimeOfDay, ListItem, ListGroup) are ephemeral: they are
// derived from the input lines on every call and discarded once the sorted
// output has been produced. There is no persistent state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
