package editor

import (
	"fmt"

	"github.com/shinji-kodama/timelist-sorter/internal/timesort"
)

// Notice is the feedback a command reports to the user.
type Notice struct {
	// Message is the human-readable summary.
	Message string

	// SortedCount is the number of list items sorted.
	SortedCount int

	// DroppedNonListLines is the number of non-list lines removed from a
	// selection. Always 0 for whole-document sorts.
	DroppedNonListLines int

	// GroupCount is the number of list groups sorted. 0 for selections.
	GroupCount int
}

// SortSelectedListByTime sorts the list items in h's selection and replaces
// the selection with them.
//
// Non-list lines inside the selection are removed; the Notice says so. On
// error h is left untouched.
func SortSelectedListByTime(h Host) (Notice, error) {
	if !h.SomethingSelected() {
		return Notice{}, timesort.ErrNoSelection
	}

	res, err := timesort.SortSelection(h.Selection())
	if err != nil {
		return Notice{}, err
	}

	h.ReplaceSelection(res.Text)

	msg := fmt.Sprintf("Sorted %d list items by time", res.SortedCount)
	if res.DroppedNonListLines > 0 {
		msg = fmt.Sprintf("Sorted %d list items (%d non-list lines were removed)",
			res.SortedCount, res.DroppedNonListLines)
	}

	return Notice{
		Message:             msg,
		SortedCount:         res.SortedCount,
		DroppedNonListLines: res.DroppedNonListLines,
	}, nil
}

// SortAllListsInPage sorts every list group in h's document.
// On error h is left untouched.
func SortAllListsInPage(h Host) (Notice, error) {
	res, err := timesort.SortDocument(h.Value())
	if err != nil {
		return Notice{}, err
	}

	h.SetValue(res.Text)

	return Notice{
		Message: fmt.Sprintf("Sorted %d items in %d list groups by time",
			res.TotalSortedItems, res.GroupCount),
		SortedCount: res.TotalSortedItems,
		GroupCount:  res.GroupCount,
	}, nil
}
