package repl

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvsql/internal/output"
	"github.com/vegasq/csvsql/internal/table"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	store := table.NewStore()
	store.Register(&table.Table{
		Name:    "users",
		Columns: []string{"name", "age"},
		Rows: []table.Row{
			{"name": table.String("Alice"), "age": table.Number(30)},
			{"name": table.String("Bob"), "age": table.Number(25)},
		},
	})
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	sess := NewSession(store, output.NewTableFormatter(&buf), &buf, logger)
	return sess, &buf
}

func TestDispatch_Query(t *testing.T) {
	sess, buf := newTestSession(t)

	cont := sess.Dispatch("SELECT name FROM users WHERE age > 26")
	assert.True(t, cont)
	assert.Contains(t, buf.String(), "Alice")
	assert.NotContains(t, buf.String(), "Bob")
}

func TestDispatch_CountQuery(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Dispatch("SELECT COUNT(*) FROM users;")
	assert.Equal(t, "2\n", buf.String())
}

func TestDispatch_ParseErrorKeepsSession(t *testing.T) {
	sess, buf := newTestSession(t)

	cont := sess.Dispatch("SELECT FROM users")
	assert.True(t, cont, "a failed query must not end the session")
	assert.Contains(t, buf.String(), "Error:")
}

func TestDispatch_ExecErrorKeepsSession(t *testing.T) {
	sess, buf := newTestSession(t)

	cont := sess.Dispatch("SELECT * FROM ghosts")
	assert.True(t, cont)
	assert.Contains(t, buf.String(), `table "ghosts" not loaded`)
}

func TestDispatch_Exit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit", ".exit", "EXIT"} {
		sess, _ := newTestSession(t)
		assert.False(t, sess.Dispatch(cmd), "command %q should end the session", cmd)
	}
}

func TestDispatch_Tables(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Dispatch(".tables")
	assert.Contains(t, buf.String(), "users (2 rows)")
}

func TestDispatch_TablesEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	sess := NewSession(table.NewStore(), output.NewTableFormatter(&buf), &buf, logger)

	sess.Dispatch(".tables")
	assert.Contains(t, buf.String(), "(no tables loaded)")
}

func TestDispatch_Load(t *testing.T) {
	sess, buf := newTestSession(t)

	path := filepath.Join(t.TempDir(), "pets.csv")
	require.NoError(t, os.WriteFile(path, []byte("pet,legs\ncat,4\nsnake,0\n"), 0o644))

	sess.Dispatch(".load " + path)
	assert.Contains(t, buf.String(), `as table "pets" (2 rows)`)

	buf.Reset()
	sess.Dispatch("SELECT COUNT(*) FROM pets")
	assert.Equal(t, "2\n", buf.String())
}

func TestDispatch_LoadMissingFile(t *testing.T) {
	sess, buf := newTestSession(t)

	cont := sess.Dispatch(".load " + filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, cont)
	assert.Contains(t, buf.String(), "Error loading")
}

func TestDispatch_LoadWithoutArgument(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Dispatch(".load")
	assert.Contains(t, buf.String(), "Usage: .load <path>")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	sess, buf := newTestSession(t)

	cont := sess.Dispatch(".frobnicate")
	assert.True(t, cont, "unknown commands must not end the session")
	assert.Contains(t, buf.String(), "Unknown command")
}

func TestDispatch_Help(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Dispatch(".help")
	assert.Contains(t, buf.String(), ".load")
	assert.Contains(t, buf.String(), ".tables")
}

func TestRun_ExitsOnEOF(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Run(strings.NewReader("SELECT COUNT(*) FROM users\n"))

	out := buf.String()
	assert.Contains(t, out, "csvsql interactive shell")
	assert.Contains(t, out, "2")
}

func TestRun_ExitCommand(t *testing.T) {
	sess, buf := newTestSession(t)

	sess.Run(strings.NewReader("exit\nSELECT * FROM users\n"))

	assert.Contains(t, buf.String(), "Bye.")
	assert.NotContains(t, buf.String(), "Alice", "input after exit must not run")
}
