package timesort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSortLines covers ordering, tie-breaks and the unknown-time policy.
func TestSortLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    []string
		nonList []string
	}{
		{
			name:    "unknown time last",
			lines:   []string{"- Lunch 12:30", "- Standup 09:00", "- Review"},
			want:    []string{"- Standup 09:00", "- Lunch 12:30", "- Review"},
			nonList: []string{},
		},
		{
			name:    "equal times keep input order",
			lines:   []string{"- b 09:00", "- a 09:00", "- c 08:00"},
			want:    []string{"- c 08:00", "- b 09:00", "- a 09:00"},
			nonList: []string{},
		},
		{
			name:    "unknowns keep input order",
			lines:   []string{"- z", "- 10:00 y", "- a", "- m"},
			want:    []string{"- 10:00 y", "- z", "- a", "- m"},
			nonList: []string{},
		},
		{
			name:    "single digit hours compare numerically",
			lines:   []string{"- 10:00 late", "- 9:30 early"},
			want:    []string{"- 9:30 early", "- 10:00 late"},
			nonList: []string{},
		},
		{
			name:    "non-list lines reported separately",
			lines:   []string{"- 11:00 b", "note", "- 10:00 a", ""},
			want:    []string{"- 10:00 a", "- 11:00 b"},
			nonList: []string{"note", ""},
		},
		{
			name:    "mixed markers and indentation are preserved verbatim",
			lines:   []string{"  * [x] 14:00 done", "1. 07:15 first", "+ [ ] 07:00 todo"},
			want:    []string{"+ [ ] 07:00 todo", "1. 07:15 first", "  * [x] 14:00 done"},
			nonList: []string{},
		},
		{
			name:    "out of range time sorts as unknown",
			lines:   []string{"- 25:00 bogus", "- 23:00 late"},
			want:    []string{"- 23:00 late", "- 25:00 bogus"},
			nonList: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SortLines(tt.lines)
			assert.Equal(t, tt.want, res.SortedListLines)
			assert.Equal(t, tt.nonList, res.NonListLines)
			assert.Equal(t, len(tt.want), res.SortedCount)
		})
	}
}

// TestSortLines_NoListItems verifies the empty result the callers rely on.
func TestSortLines_NoListItems(t *testing.T) {
	res := SortLines([]string{"prose", "", "# heading"})
	assert.Equal(t, 0, res.SortedCount)
	assert.Empty(t, res.SortedListLines)
	assert.Equal(t, []string{"prose", "", "# heading"}, res.NonListLines)
}

// TestSortLines_DoesNotMutateInput guards against in-place reordering of the
// caller's slice.
func TestSortLines_DoesNotMutateInput(t *testing.T) {
	lines := []string{"- 12:00 b", "- 08:00 a"}
	_ = SortLines(lines)
	assert.Equal(t, []string{"- 12:00 b", "- 08:00 a"}, lines)
}

// TestSortLines_Properties checks idempotence, multiset preservation and
// output ordering on a larger mixed input.
func TestSortLines_Properties(t *testing.T) {
	lines := []string{
		"- [ ] 17:45 gym",
		"- call mom",
		"* 08:00 breakfast",
		"1. 12:00 lunch",
		"- 08:00 coffee",
		"- 99:99 typo",
		"+ 6:30 wake up",
		"- read",
		"- 23:59 sleep",
	}

	first := SortLines(lines)
	second := SortLines(first.SortedListLines)
	assert.Equal(t, first.SortedListLines, second.SortedListLines, "sorting must be idempotent")

	in := append([]string(nil), lines...)
	out := append([]string(nil), first.SortedListLines...)
	sort.Strings(in)
	sort.Strings(out)
	assert.Equal(t, in, out, "the set of lines must be preserved")

	// Known times are non-decreasing and precede every unknown.
	seenUnknown := false
	prev := -1
	var unknowns []string
	for _, line := range first.SortedListLines {
		m := ExtractTimeInMinutes(line)
		if m < 0 {
			seenUnknown = true
			unknowns = append(unknowns, line)
			continue
		}
		require.False(t, seenUnknown, "known time %q after an unknown", line)
		assert.GreaterOrEqual(t, m, prev)
		prev = m
	}
	assert.Equal(t, []string{"- call mom", "- 99:99 typo", "- read"}, unknowns)
}

// TestParseListItems records original positions within the scope.
func TestParseListItems(t *testing.T) {
	items, nonList := ParseListItems([]string{"intro", "- 09:00 a", "- b"})
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Index)
	assert.Equal(t, 540, items[0].Time.Int())
	assert.Equal(t, 2, items[1].Index)
	assert.False(t, items[1].Time.IsKnown())
	assert.Equal(t, []string{"intro"}, nonList)
}
