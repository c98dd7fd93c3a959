package timesort

import (
	"sort"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
)

// SortResult is the outcome of sorting one scope of lines.
type SortResult struct {
	// SortedListLines holds the list-item lines in time order.
	SortedListLines []string

	// NonListLines holds the lines that are not list items, in input order.
	// They are not merged back into SortedListLines.
	NonListLines []string

	// SortedCount is the number of list items that were sorted.
	SortedCount int
}

// ParseListItems returns a ListItem for every list-item line, in input order,
// together with the lines that are not list items. Index is the line's
// 0-based position within lines.
func ParseListItems(lines []string) ([]model.ListItem, []string) {
	items := make([]model.ListItem, 0, len(lines))
	nonList := make([]string, 0)

	for i, line := range lines {
		if !IsListItem(line) {
			nonList = append(nonList, line)
			continue
		}
		items = append(items, model.ListItem{
			Line:  line,
			Time:  ExtractTime(line),
			Index: i,
		})
	}
	return items, nonList
}

// SortLines sorts the list items among lines by time.
//
// Items with a known time come first in ascending order; items with the same
// time keep their input order. Items without a time follow, also in input
// order. When lines contain no list items, SortedCount is 0 and
// SortedListLines is empty; the caller decides whether that is an error.
func SortLines(lines []string) SortResult {
	items, nonList := ParseListItems(lines)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Less(items[j])
	})

	sorted := make([]string, 0, len(items))
	for _, item := range items {
		sorted = append(sorted, item.Line)
	}

	return SortResult{
		SortedListLines: sorted,
		NonListLines:    nonList,
		SortedCount:     len(items),
	}
}
