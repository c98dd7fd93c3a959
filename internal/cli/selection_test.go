package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
)

func TestSelection_Stdin(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "- Lunch 12:30\n- Standup 09:00\n- Review\n", "selection")
	require.Equal(t, model.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "- Standup 09:00\n- Lunch 12:30\n- Review\n", res.stdout)
	assert.Contains(t, res.stderr, "Sorted 3 list items by time")
}

// TestSelection_DropsNonListLines documents that a non-list line inside the
// selection is removed and reported.
func TestSelection_DropsNonListLines(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "- 11:00 b\nnote\n- 10:00 a\n", "selection")
	require.Equal(t, model.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "- 10:00 a\n- 11:00 b\n", res.stdout)
	assert.Contains(t, res.stderr, "1 non-list lines were removed")
}

func TestSelection_EmptyStdin(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "", "selection")
	assert.Equal(t, model.ExitNoSelection, res.code)
	assert.Contains(t, res.stderr, "nothing to sort")
}

// TestSelection_NoListItemsPassesThrough verifies that the input is echoed
// unchanged when there is nothing to sort.
func TestSelection_NoListItemsPassesThrough(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "just prose\n", "selection")
	assert.Equal(t, model.ExitNoListItems, res.code)
	assert.Equal(t, "just prose\n", res.stdout)
	assert.Contains(t, res.stderr, "no list items found in selection")
}

func TestSelection_LineRangeWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/notes/day.md", "# Day\n- 10:00 b\n- 09:00 a\ntext\n- 12:00 d\n- 11:00 c\n")

	res := runCLI(t, fs, "", "selection", "--lines", "2:3", "--write", "/notes/day.md")
	require.Equal(t, model.ExitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Equal(t,
		"# Day\n- 09:00 a\n- 10:00 b\ntext\n- 12:00 d\n- 11:00 c\n",
		readFile(t, fs, "/notes/day.md"),
		"only the selected lines are sorted")
}

// TestSelection_LineRangeDropsInsideOnly checks that non-list lines outside
// the range survive while those inside it are removed.
func TestSelection_LineRangeDropsInsideOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/day.md", "intro\n- 10:00 b\nnote\n- 09:00 a\noutro")

	res := runCLI(t, fs, "", "selection", "--lines", "2:4", "/day.md")
	require.Equal(t, model.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "intro\n- 09:00 a\n- 10:00 b\noutro", res.stdout)
	assert.Equal(t, "intro\n- 10:00 b\nnote\n- 09:00 a\noutro", readFile(t, fs, "/day.md"))
}

func TestSelection_InvalidRanges(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/day.md", "- a\n- b\n")

	tests := []struct {
		name string
		args []string
	}{
		{"past end of file", []string{"selection", "--lines", "1:5", "/day.md"}},
		{"malformed", []string{"selection", "--lines", "x", "/day.md"}},
		{"without a file", []string{"selection", "--lines", "1:2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, fs, "- a\n", tt.args...)
			assert.Equal(t, model.ExitInvalidRange, res.code)
		})
	}
}

func TestSelection_WriteRequiresFile(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "- 10:00 b\n- 09:00 a\n", "selection", "--write")
	assert.Equal(t, model.ExitGeneralError, res.code)
	assert.Contains(t, res.stderr, "--write requires a file argument")
}

func TestSelection_JSON(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "- 11:00 b\nnote\n- 10:00 a\n", "selection", "--json")
	require.Equal(t, model.ExitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stderr)

	var out selectionResultJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, "- 10:00 a\n- 11:00 b\n", out.ResultText)
	assert.Equal(t, 2, out.SortedCount)
	assert.Equal(t, 1, out.DroppedNonListLines)
	assert.False(t, out.Written)
}
