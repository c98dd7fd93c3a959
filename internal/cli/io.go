// Package cli — io.go reads command input and writes command output.
//
// Input is either a file argument or stdin. Files are accessed through
// appFs, an afero.Fs, so tests can run every command against an in-memory
// filesystem.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
	"github.com/shinji-kodama/timelist-sorter/internal/timesort"
)

// appFs is the filesystem used for input files, in-place writes and config
// discovery.
var appFs afero.Fs = afero.NewOsFs()

// errInteractiveStdin is returned by readInput when no file was given and
// stdin is a terminal, so there is no text to read.
var errInteractiveStdin = errors.New("stdin is a terminal")

// input is the text a command operates on.
type input struct {
	// text is the full input.
	text string

	// path is the input file, or "" for stdin.
	path string
}

// source returns a display name for logs.
func (in input) source() string {
	if in.path == "" {
		return "<stdin>"
	}
	return in.path
}

// readInput reads the file named by args[0], or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (input, error) {
	if len(args) > 0 {
		path := args[0]
		data, err := afero.ReadFile(appFs, path)
		if err != nil {
			if os.IsNotExist(err) {
				return input{}, model.WrapCLIError(
					model.ExitInputNotFound,
					fmt.Sprintf("input file not found: %s", path),
					err,
				)
			}
			return input{}, model.WrapCLIError(model.ExitGeneralError, "failed to read input file", err)
		}
		return input{text: string(data), path: path}, nil
	}

	r := cmd.InOrStdin()
	if isTerminal(r) {
		return input{}, errInteractiveStdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return input{}, model.WrapCLIError(model.ExitGeneralError, "failed to read stdin", err)
	}
	return input{text: string(data)}, nil
}

// isTerminal reports whether r is an interactive terminal. Anything that is
// not an *os.File (a pipe in tests, a buffer) is not a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeOutput writes text back to path when write is set, or to the
// command's stdout otherwise. In-place writes keep the file's permissions.
func writeOutput(cmd *cobra.Command, in input, text string, write bool) error {
	if !write {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	if in.path == "" {
		return model.NewCLIError(model.ExitGeneralError, "--write requires a file argument")
	}

	perm := os.FileMode(0o644)
	if info, err := appFs.Stat(in.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := afero.WriteFile(appFs, in.path, []byte(text), perm); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to write %s", in.path), err)
	}
	VerboseLog("Wrote %s", in.path)
	return nil
}

// splitFinalNewline separates a single trailing "\n" from text. A file or
// piped block ending in a newline does not select an extra empty line.
func splitFinalNewline(text string) (body, eol string) {
	if strings.HasSuffix(text, "\n") {
		return strings.TrimSuffix(text, "\n"), "\n"
	}
	return text, ""
}

// parseLineRange parses "START:END" or "LINE" into a 1-based inclusive range.
func parseLineRange(s string) (int, int, error) {
	startStr, endStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		endStr = startStr
	}

	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start line %q", startStr)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end line %q", endStr)
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("invalid line range %q: want START:END with 1 <= START <= END", s)
	}
	return start, end, nil
}

// sortError translates the informational timesort errors into CLIErrors
// with their own exit codes.
func sortError(err error) error {
	switch {
	case errors.Is(err, timesort.ErrNoSelection):
		return model.WrapCLIError(model.ExitNoSelection, "nothing to sort", err)
	case errors.Is(err, timesort.ErrNoListItemsInSelection),
		errors.Is(err, timesort.ErrNoListItemsInDocument):
		return model.WrapCLIError(model.ExitNoListItems, "nothing sorted", err)
	default:
		return err
	}
}

// notify prints a user notice on stderr. JSON mode carries the notice in the
// result object instead.
func notify(cmd *cobra.Command, message string) {
	if IsJSONOutput() {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), message)
}
