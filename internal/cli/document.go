// Package cli — document.go implements the "timelist-sorter document" command.
//
// The document command finds every list in a Markdown document (each
// maximal run of list-item lines) and sorts each one independently by
// time. Everything outside the lists is left exactly where it was.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/timelist-sorter/internal/editor"
	"github.com/shinji-kodama/timelist-sorter/internal/model"
	"github.com/shinji-kodama/timelist-sorter/internal/render"
)

// documentFlags holds the flag values for the document command.
type documentFlags struct {
	write  bool   // --write: rewrite the input file in place
	format string // --format: markdown or html
}

// documentResultJSON is the --json output of the document command.
type documentResultJSON struct {
	ResultText       string `json:"resultText"`
	Format           string `json:"format"`
	GroupCount       int    `json:"groupCount"`
	TotalSortedItems int    `json:"totalSortedItems"`
	Message          string `json:"message"`
	Written          bool   `json:"written"`
}

// NewDocumentCommand creates the "document" cobra command.
func NewDocumentCommand() *cobra.Command {
	flags := &documentFlags{}

	cmd := &cobra.Command{
		Use:     "document [file]",
		Aliases: []string{"doc"},
		Short:   "Sort every list in a Markdown document by time",
		Long: `Sort every list in a Markdown document by the first HH:MM time on each item.

A list is a run of consecutive list-item lines ("-", "*", "+", "[ ]"/"[x]"
tasks, "1."). Each list is sorted on its own; items never move between
lists, and all other lines stay where they are.

Examples:
  timelist-sorter document today.md
  timelist-sorter document --write today.md
  timelist-sorter document --format html today.md > today.html
  cat today.md | timelist-sorter document`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Write the result back to the input file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: markdown or html (default from config, else markdown)")

	return cmd
}

// runDocument is the main logic function for the document command.
func runDocument(cmd *cobra.Command, args []string, flags *documentFlags) error {
	// Step 1: Resolve output options. Flags win over the config file.
	format := activeConfig.Format
	if flags.format != "" {
		parsed, err := model.ParseOutputFormat(flags.format)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "invalid --format", err)
		}
		format = parsed
	}

	write := flags.write
	if !cmd.Flags().Changed("write") {
		write = activeConfig.Write && len(args) > 0
	}
	if write && format == model.FormatHTML {
		return model.NewCLIError(model.ExitGeneralError, "--write cannot be combined with html output")
	}

	// Step 2: Read the document.
	in, err := readInput(cmd, args)
	if errors.Is(err, errInteractiveStdin) {
		return model.NewCLIError(model.ExitGeneralError, "no input: pass a file or pipe a document on stdin")
	}
	if err != nil {
		return err
	}
	VerboseLog("Read %d bytes from %s", len(in.text), in.source())

	// Step 3: Sort every list group.
	buf := editor.NewBuffer(in.text)
	notice, err := editor.SortAllListsInPage(buf)
	if err != nil {
		if !IsJSONOutput() && !write {
			if writeErr := emitDocument(cmd, in, in.text, format, false); writeErr != nil {
				return writeErr
			}
		}
		return sortError(err)
	}
	logger.Debug("sorted document",
		"source", in.source(),
		"groups", notice.GroupCount,
		"sorted", notice.SortedCount)

	// Step 4: Output.
	if IsJSONOutput() {
		text, err := formatDocument(buf.Value(), format)
		if err != nil {
			return err
		}
		if write {
			if err := writeOutput(cmd, in, text, true); err != nil {
				return err
			}
		}
		return printJSON(cmd.OutOrStdout(), documentResultJSON{
			ResultText:       text,
			Format:           format.String(),
			GroupCount:       notice.GroupCount,
			TotalSortedItems: notice.SortedCount,
			Message:          notice.Message,
			Written:          write,
		})
	}

	if err := emitDocument(cmd, in, buf.Value(), format, write); err != nil {
		return err
	}
	notify(cmd, notice.Message)
	return nil
}

// emitDocument formats text and writes it to stdout or back to the file.
func emitDocument(cmd *cobra.Command, in input, text string, format model.OutputFormat, write bool) error {
	out, err := formatDocument(text, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, in, out, write)
}

// formatDocument converts Markdown text to the requested output format.
func formatDocument(text string, format model.OutputFormat) (string, error) {
	if format != model.FormatHTML {
		return text, nil
	}
	out, err := render.HTML([]byte(text), activeConfig.HTML)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to render %s", format), err)
	}
	return string(out), nil
}
