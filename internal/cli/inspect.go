// Package cli — inspect.go implements the "timelist-sorter inspect" command.
//
// The inspect command is read-only. It reports every list group found in a
// document, whether each group is already in time order, and the time
// extracted from each item. It is the quickest way to see why an item
// sorts where it does.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
	"github.com/shinji-kodama/timelist-sorter/internal/timesort"
)

// groupReport describes one list group for output.
type groupReport struct {
	Group model.ListGroup
	Items []model.ListItem
	// InOrder is true when sorting the group would not change it.
	InOrder bool
}

// NewInspectCommand creates the "inspect" cobra command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the lists found in a document and the time of each item",
		Long: `Show every list group in a Markdown document with the time extracted
from each item. Nothing is modified.

Items show "--:--" when they have no valid HH:MM time; those sort last.

Examples:
  timelist-sorter inspect today.md
  timelist-sorter inspect --json today.md`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args)
		},
	}

	return cmd
}

// runInspect is the main logic function for the inspect command.
func runInspect(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if errors.Is(err, errInteractiveStdin) {
		return model.NewCLIError(model.ExitGeneralError, "no input: pass a file or pipe a document on stdin")
	}
	if err != nil {
		return err
	}

	reports := buildGroupReports(timesort.SplitLines(in.text))
	VerboseLog("Found %d list groups in %s", len(reports), in.source())

	if IsJSONOutput() {
		return printInspectJSON(cmd.OutOrStdout(), reports)
	}
	printInspectText(cmd.OutOrStdout(), reports)
	return nil
}

// buildGroupReports detects the list groups in lines and extracts each
// item's time. Item indexes are relative to their group.
func buildGroupReports(lines []string) []groupReport {
	groups := timesort.DetectListGroups(lines)
	reports := make([]groupReport, 0, len(groups))

	for _, g := range groups {
		groupLines := lines[g.StartIndex : g.EndIndex+1]
		items, _ := timesort.ParseListItems(groupLines)
		sorted := timesort.SortLines(groupLines)

		reports = append(reports, groupReport{
			Group:   g,
			Items:   items,
			InOrder: slices.Equal(sorted.SortedListLines, groupLines),
		})
	}
	return reports
}

// inspectItemJSON is the JSON form of one list item. Minutes is null for
// items without a valid time.
type inspectItemJSON struct {
	Line    string `json:"line"`
	Time    string `json:"time"`
	Minutes *int   `json:"minutes"`
}

// inspectGroupJSON is the JSON form of one list group. Line numbers are
// 1-based.
type inspectGroupJSON struct {
	StartLine int               `json:"startLine"`
	EndLine   int               `json:"endLine"`
	LineCount int               `json:"lineCount"`
	InOrder   bool              `json:"inOrder"`
	Items     []inspectItemJSON `json:"items"`
}

// printInspectJSON outputs the group reports as structured JSON.
// The top-level key is "groups".
func printInspectJSON(w io.Writer, reports []groupReport) error {
	type resultJSON struct {
		Groups []inspectGroupJSON `json:"groups"`
	}

	// Use an empty slice instead of nil so the output shows [] rather than
	// null when no lists are found.
	result := resultJSON{Groups: make([]inspectGroupJSON, 0, len(reports))}

	for _, r := range reports {
		entry := inspectGroupJSON{
			StartLine: r.Group.StartIndex + 1,
			EndLine:   r.Group.EndIndex + 1,
			LineCount: r.Group.Len(),
			InOrder:   r.InOrder,
			Items:     make([]inspectItemJSON, 0, len(r.Items)),
		}
		for _, item := range r.Items {
			j := inspectItemJSON{Line: item.Line, Time: item.Time.String()}
			if m, ok := item.Time.Minutes(); ok {
				j.Minutes = &m
			}
			entry.Items = append(entry.Items, j)
		}
		result.Groups = append(result.Groups, entry)
	}

	return printJSON(w, result)
}

// printInspectText outputs the group reports as a text table. The group
// columns are only filled on each group's first row:
//
//	GROUP  LINES     ORDERED  TIME   ITEM
//	1      3-5       no       09:00  - Standup 09:00
//	                          12:30  - Lunch 12:30
//	                          --:--  - Review
func printInspectText(w io.Writer, reports []groupReport) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No list items found.")
		return
	}

	fmt.Fprintf(w, "%-6s %-9s %-8s %-6s %s\n", "GROUP", "LINES", "ORDERED", "TIME", "ITEM")

	for i, r := range reports {
		ordered := "no"
		if r.InOrder {
			ordered = "yes"
		}
		for j, item := range r.Items {
			if j == 0 {
				fmt.Fprintf(w, "%-6d %-9s %-8s %-6s %s\n",
					i+1, r.Group.String(), ordered, item.Time.String(), item.Line)
				continue
			}
			fmt.Fprintf(w, "%-6s %-9s %-8s %-6s %s\n", "", "", "", item.Time.String(), item.Line)
		}
	}
}
