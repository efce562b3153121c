package notes

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the script it received and returns canned output.
type fakeRunner struct {
	script string
	out    string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, script string) (string, error) {
	f.script = script
	return f.out, f.err
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `plain`, escape(`plain`))
	assert.Equal(t, `say \"hi\"`, escape(`say "hi"`))
	assert.Equal(t, `a\\b`, escape(`a\b`))
	assert.Equal(t, `\\\"`, escape(`\"`))
}

func TestScriptsEmbedEscapedValues(t *testing.T) {
	s := createNoteScript(`My "Note"`, "line1", "Work", "iCloud")
	assert.Contains(t, s, `account "iCloud"`)
	assert.Contains(t, s, `folder "Work"`)
	assert.Contains(t, s, `name:"My \"Note\""`)

	s = listNotesScript("", "iCloud")
	assert.Contains(t, s, `account "iCloud"`)
	assert.NotContains(t, s, "folder")

	s = readNoteScript("Groceries", "", true)
	assert.Contains(t, s, "plaintext of targetNote")

	s = searchNotesScript("TODO Items")
	assert.Contains(t, s, `set searchQuery to "todo items"`)
}

func TestListNotes(t *testing.T) {
	r := &fakeRunner{out: "iCloud > A\niCloud > B\n"}
	m := NewManager(r)

	list, err := m.ListNotes(context.Background(), "", "")
	require.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, []string{"iCloud > A", "iCloud > B"}, list.Notes)
}

func TestReadFormats(t *testing.T) {
	r := &fakeRunner{out: "note body"}
	m := NewManager(r)

	content, err := m.Read(context.Background(), "A", "", false)
	require.NoError(t, err)
	assert.Equal(t, "html", content.Format)

	content, err = m.Read(context.Background(), "A", "", true)
	require.NoError(t, err)
	assert.Equal(t, "plaintext", content.Format)
	assert.Equal(t, "note body", content.Content)
}

func TestRunFoldsScriptErrors(t *testing.T) {
	r := &fakeRunner{out: "ERROR: Note not found"}
	m := NewManager(r)

	_, err := m.Delete(context.Background(), "missing", "")
	require.Error(t, err)
	assert.Equal(t, "Note not found", err.Error())
}

func TestRunPropagatesRunnerErrors(t *testing.T) {
	r := &fakeRunner{err: errors.New("osascript: not authorized")}
	m := NewManager(r)

	_, err := m.Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\n\n  b  \n"))
}
