package timesort

import "errors"

// Errors returned by SortSelection and SortDocument. They are informational:
// no text was changed.
var (
	// ErrNoSelection is returned when selection mode gets an empty selection.
	ErrNoSelection = errors.New("no text selected")

	// ErrNoListItemsInSelection is returned when the selection contains no
	// list items.
	ErrNoListItemsInSelection = errors.New("no list items found in selection")

	// ErrNoListItemsInDocument is returned when the document contains no
	// list items.
	ErrNoListItemsInDocument = errors.New("no list items found in document")
)

// SelectionResult is the outcome of SortSelection.
type SelectionResult struct {
	// Text is the replacement for the selection: the sorted list-item lines
	// joined by newlines.
	Text string

	// SortedCount is the number of list items sorted.
	SortedCount int

	// DroppedNonListLines is the number of non-list lines that were in the
	// selection and are not part of Text.
	DroppedNonListLines int
}

// DocumentResult is the outcome of SortDocument.
type DocumentResult struct {
	// Text is the full document with every list group sorted.
	Text string

	// GroupCount is the number of list groups detected.
	GroupCount int

	// TotalSortedItems is the number of list items sorted across all groups.
	TotalSortedItems int
}

// SortSelection sorts the list items of a selected block of text.
//
// The selection is one scope. Non-list lines inside it are dropped from the
// result and counted in DroppedNonListLines so the caller can tell the user.
func SortSelection(selected string) (SelectionResult, error) {
	if selected == "" {
		return SelectionResult{}, ErrNoSelection
	}

	res := SortLines(SplitLines(selected))
	if res.SortedCount == 0 {
		return SelectionResult{}, ErrNoListItemsInSelection
	}

	return SelectionResult{
		Text:                JoinLines(res.SortedListLines),
		SortedCount:         res.SortedCount,
		DroppedNonListLines: len(res.NonListLines),
	}, nil
}

// SortDocument sorts every list group in document independently. Lines
// outside groups keep their positions and content.
//
// The output is built front to back: untouched lines are copied through and
// each group's range is replaced by its sorted lines.
func SortDocument(document string) (DocumentResult, error) {
	lines := SplitLines(document)
	groups := DetectListGroups(lines)
	if len(groups) == 0 {
		return DocumentResult{}, ErrNoListItemsInDocument
	}

	out := make([]string, 0, len(lines))
	total := 0
	next := 0

	for _, g := range groups {
		out = append(out, lines[next:g.StartIndex]...)

		groupLines := lines[g.StartIndex : g.EndIndex+1]
		res := SortLines(groupLines)
		if res.SortedCount == 0 {
			out = append(out, groupLines...)
		} else {
			out = append(out, res.SortedListLines...)
			total += res.SortedCount
		}
		next = g.EndIndex + 1
	}
	out = append(out, lines[next:]...)

	return DocumentResult{
		Text:             JoinLines(out),
		GroupCount:       len(groups),
		TotalSortedItems: total,
	}, nil
}
