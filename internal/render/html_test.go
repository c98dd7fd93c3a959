package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_List(t *testing.T) {
	out, err := HTML([]byte("- 09:00 standup\n- 12:30 lunch\n"), Options{})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<ul>")
	assert.Contains(t, s, "<li>09:00 standup</li>")
	assert.Contains(t, s, "<li>12:30 lunch</li>")
}

func TestHTML_TaskListByDefault(t *testing.T) {
	out, err := HTML([]byte("- [x] 08:00 done\n"), Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `type="checkbox"`)
}

func TestHTML_HardWraps(t *testing.T) {
	out, err := HTML([]byte("line one\nline two\n"), Options{HardWraps: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<br")
}

func TestKnownExtension(t *testing.T) {
	assert.True(t, KnownExtension("gfm"))
	assert.True(t, KnownExtension(" TaskList "))
	assert.False(t, KnownExtension("mermaid"))
}

func TestCollectExtensions(t *testing.T) {
	assert.Len(t, collectExtensions(nil), 1)
	assert.Len(t, collectExtensions([]string{"table", "TABLE", "unknown"}), 1)
}

func TestExtensionNames(t *testing.T) {
	names := ExtensionNames()
	assert.Contains(t, names, "footnote")
	assert.IsNonDecreasing(t, names)
}
