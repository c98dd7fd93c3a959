package timesort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
)

// TestDetectListGroups verifies maximal runs, boundaries at both ends of the
// input and the empty case.
func TestDetectListGroups(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []model.ListGroup
	}{
		{
			name:  "no list items",
			lines: []string{"# Title", "", "prose"},
			want:  []model.ListGroup{},
		},
		{
			name:  "empty input",
			lines: []string{},
			want:  []model.ListGroup{},
		},
		{
			name:  "single group in the middle",
			lines: []string{"# Today", "- a", "- b", "", "end"},
			want:  []model.ListGroup{{StartIndex: 1, EndIndex: 2}},
		},
		{
			name:  "group at start and end",
			lines: []string{"- a", "text", "- b", "- c"},
			want: []model.ListGroup{
				{StartIndex: 0, EndIndex: 0},
				{StartIndex: 2, EndIndex: 3},
			},
		},
		{
			name:  "whole input is one group",
			lines: []string{"1. a", "2. b", "- c"},
			want:  []model.ListGroup{{StartIndex: 0, EndIndex: 2}},
		},
		{
			name:  "blank line splits groups",
			lines: []string{"- a", "", "- b"},
			want: []model.ListGroup{
				{StartIndex: 0, EndIndex: 0},
				{StartIndex: 2, EndIndex: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectListGroups(tt.lines))
		})
	}
}
