// Package cli — selection.go implements the "timelist-sorter selection" command.
//
// The selection command sorts one block of lines as a single scope, the
// way an editor sorts the user's selection. Non-list lines inside the
// block are removed from the result and the user is told how many.
//
// The block is either stdin, a whole file, or a --lines range of a file.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/timelist-sorter/internal/editor"
	"github.com/shinji-kodama/timelist-sorter/internal/model"
	"github.com/shinji-kodama/timelist-sorter/internal/timesort"
)

// selectionFlags holds the flag values for the selection command.
type selectionFlags struct {
	lines string // --lines: 1-based inclusive line range to sort
	write bool   // --write: rewrite the input file in place
}

// selectionResultJSON is the --json output of the selection command.
type selectionResultJSON struct {
	ResultText          string `json:"resultText"`
	SortedCount         int    `json:"sortedCount"`
	DroppedNonListLines int    `json:"droppedNonListLines"`
	Message             string `json:"message"`
	Written             bool   `json:"written"`
}

// NewSelectionCommand creates the "selection" cobra command.
func NewSelectionCommand() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:     "selection [file]",
		Aliases: []string{"sel"},
		Short:   "Sort the list items of one block of lines by time",
		Long: `Sort the list items of a block of lines by the first HH:MM time on each item.

The block is read from stdin, or from a file. With a file, --lines picks the
block (1-based, inclusive); without it the whole file is the block.

Lines in the block that are not list items are REMOVED from the result.
The notice on stderr reports how many were removed.

Examples:
  pbpaste | timelist-sorter selection
  timelist-sorter selection --lines 12:18 today.md
  timelist-sorter selection --lines 12:18 --write today.md`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.lines, "lines", "", "Line range START:END to sort (default: whole input)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Write the result back to the input file")

	return cmd
}

// runSelection is the main logic function for the selection command.
func runSelection(cmd *cobra.Command, args []string, flags *selectionFlags) error {
	// Step 1: Read the input. An interactive terminal on stdin means the
	// user selected nothing.
	in, err := readInput(cmd, args)
	if errors.Is(err, errInteractiveStdin) {
		return sortError(timesort.ErrNoSelection)
	}
	if err != nil {
		return err
	}
	VerboseLog("Read %d bytes from %s", len(in.text), in.source())

	write := flags.write
	if !cmd.Flags().Changed("write") {
		write = activeConfig.Write && in.path != ""
	}

	if flags.lines != "" && in.path == "" {
		return model.NewCLIError(model.ExitInvalidRange, "--lines requires a file argument")
	}

	// Step 2: Load the text into a buffer and select the block.
	body, eol := splitFinalNewline(in.text)
	buf := editor.NewBuffer(body)

	if flags.lines != "" {
		start, end, rangeErr := parseLineRange(flags.lines)
		if rangeErr != nil {
			return model.WrapCLIError(model.ExitInvalidRange, "invalid --lines", rangeErr)
		}
		if selErr := buf.Select(start, end); selErr != nil {
			return model.WrapCLIError(model.ExitInvalidRange, "invalid --lines", selErr)
		}
		VerboseLog("Selected lines %d-%d of %d", start, end, buf.LineCount())
	} else {
		buf.SelectAll()
	}

	// Step 3: Sort. On "nothing to sort" the input passes through unchanged
	// so a pipeline never loses text.
	notice, err := editor.SortSelectedListByTime(buf)
	if err != nil {
		if !IsJSONOutput() && !write {
			if writeErr := writeOutput(cmd, in, in.text, false); writeErr != nil {
				return writeErr
			}
		}
		return sortError(err)
	}
	logger.Debug("sorted selection",
		"source", in.source(),
		"sorted", notice.SortedCount,
		"dropped", notice.DroppedNonListLines)

	// Step 4: Output.
	result := buf.Value() + eol
	if IsJSONOutput() {
		if write {
			if err := writeOutput(cmd, in, result, true); err != nil {
				return err
			}
		}
		return printJSON(cmd.OutOrStdout(), selectionResultJSON{
			ResultText:          result,
			SortedCount:         notice.SortedCount,
			DroppedNonListLines: notice.DroppedNonListLines,
			Message:             notice.Message,
			Written:             write,
		})
	}

	if err := writeOutput(cmd, in, result, write); err != nil {
		return err
	}
	notify(cmd, notice.Message)
	return nil
}
