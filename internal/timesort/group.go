package timesort

import "github.com/shinji-kodama/timelist-sorter/internal/model"

// DetectListGroups partitions lines into maximal contiguous runs of
// list-item lines. Groups are returned in ascending order and never
// overlap. A document without list items yields an empty slice.
func DetectListGroups(lines []string) []model.ListGroup {
	groups := make([]model.ListGroup, 0)
	start := -1

	for i, line := range lines {
		if IsListItem(line) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			groups = append(groups, model.ListGroup{StartIndex: start, EndIndex: i - 1})
			start = -1
		}
	}

	if start >= 0 {
		groups = append(groups, model.ListGroup{StartIndex: start, EndIndex: len(lines) - 1})
	}
	return groups
}
