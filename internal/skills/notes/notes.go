// Package notes is a thin wrapper over Apple Notes automation: it builds
// the AppleScript the Notes.app scripting dictionary expects, runs it
// through osascript, and shapes the result as JSON-friendly values.
//
// Notes organizes notes by account (iCloud, On My Mac, Gmail, ...); every
// listing walks all accounts unless narrowed. The first run on a machine
// triggers the macOS Automation permission prompt — that flow belongs to
// the OS, not to this package.
package notes

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const runTimeout = 30 * time.Second

// Runner executes an AppleScript and returns its output. The indirection
// keeps script construction and result parsing testable off-macOS.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OsascriptRunner runs scripts through the osascript binary.
type OsascriptRunner struct{}

func (OsascriptRunner) Run(ctx context.Context, script string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", errors.Errorf("osascript: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return "", errors.Wrap(err, "osascript")
	}
	return strings.TrimSpace(string(out)), nil
}

// Manager exposes the Notes operations.
type Manager struct {
	r Runner
}

// NewManager creates a Manager over the given runner. A nil runner selects
// the real osascript runner.
func NewManager(r Runner) *Manager {
	if r == nil {
		r = OsascriptRunner{}
	}
	return &Manager{r: r}
}

// NoteList is the result of a listing or search operation.
type NoteList struct {
	Success bool     `json:"success"`
	Query   string   `json:"query,omitempty"`
	Notes   []string `json:"notes,omitempty"`
	Count   int      `json:"count"`
}

// NoteContent is the result of reading one note.
type NoteContent struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Format  string `json:"format"` // "html" or "plaintext"
}

// Status is the result of a mutating operation.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListAccounts lists all Notes accounts.
func (m *Manager) ListAccounts(ctx context.Context) ([]string, error) {
	out, err := m.run(ctx, listAccountsScript())
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ListFolders lists all folders across all accounts.
func (m *Manager) ListFolders(ctx context.Context) ([]string, error) {
	out, err := m.run(ctx, listFoldersScript())
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ListNotes lists note titles, optionally narrowed by folder and/or account.
func (m *Manager) ListNotes(ctx context.Context, folder, account string) (NoteList, error) {
	out, err := m.run(ctx, listNotesScript(folder, account))
	if err != nil {
		return NoteList{}, err
	}
	notes := splitLines(out)
	return NoteList{Success: true, Notes: notes, Count: len(notes)}, nil
}

// Create creates a new note. Empty folder/account fall back to the first
// account's default folder.
func (m *Manager) Create(ctx context.Context, title, body, folder, account string) (Status, error) {
	out, err := m.run(ctx, createNoteScript(title, body, folder, account))
	if err != nil {
		return Status{}, err
	}
	return Status{Success: true, Message: out}, nil
}

// Read returns a note's content by title, searching all accounts unless one
// is given.
func (m *Manager) Read(ctx context.Context, title, account string, plaintext bool) (NoteContent, error) {
	out, err := m.run(ctx, readNoteScript(title, account, plaintext))
	if err != nil {
		return NoteContent{}, err
	}
	format := "html"
	if plaintext {
		format = "plaintext"
	}
	return NoteContent{Success: true, Title: title, Content: out, Format: format}, nil
}

// Search finds notes whose title or body contains the query,
// case-insensitively, across all accounts.
func (m *Manager) Search(ctx context.Context, query string) (NoteList, error) {
	out, err := m.run(ctx, searchNotesScript(query))
	if err != nil {
		return NoteList{}, err
	}
	notes := splitLines(out)
	return NoteList{Success: true, Query: query, Notes: notes, Count: len(notes)}, nil
}

// Delete removes a note by title.
func (m *Manager) Delete(ctx context.Context, title, account string) (Status, error) {
	out, err := m.run(ctx, deleteNoteScript(title, account))
	if err != nil {
		return Status{}, err
	}
	return Status{Success: true, Message: out}, nil
}

// run executes a script and folds in-script "ERROR: ..." returns into Go
// errors, matching the try/on error convention the scripts use.
func (m *Manager) run(ctx context.Context, script string) (string, error) {
	out, err := m.r.Run(ctx, script)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(out, "ERROR:") {
		return "", errors.New(strings.TrimSpace(strings.TrimPrefix(out, "ERROR:")))
	}
	return out, nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
