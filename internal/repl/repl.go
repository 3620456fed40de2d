// Package repl implements the interactive shell: dot-commands for
// loading and listing tables, and SQL statements routed to the engine.
// Errors are printed and the loop continues; nothing short of an exit
// command or EOF ends the session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vegasq/csvsql/internal/engine"
	"github.com/vegasq/csvsql/internal/output"
	"github.com/vegasq/csvsql/internal/query"
	"github.com/vegasq/csvsql/internal/reader"
	"github.com/vegasq/csvsql/internal/table"
)

const prompt = "csvsql> "

// Session is one interactive run over a table store.
type Session struct {
	store     *table.Store
	formatter output.Formatter
	out       io.Writer
	logger    *slog.Logger
}

// NewSession creates a session writing results and messages to out.
func NewSession(store *table.Store, formatter output.Formatter, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		store:     store,
		formatter: formatter,
		out:       out,
		logger:    logger.With("session", uuid.NewString()),
	}
}

// Run reads lines from in until EOF or an exit command.
func (s *Session) Run(in io.Reader) {
	fmt.Fprintln(s.out, "csvsql interactive shell (type .help for commands)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.Dispatch(line) {
			return
		}
	}
}

// Dispatch handles one input line and reports whether the session
// should continue.
func (s *Session) Dispatch(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", ".exit":
		fmt.Fprintln(s.out, "Bye.")
		return false
	}

	if strings.HasPrefix(line, ".") {
		s.runCommand(line)
		return true
	}

	s.runQuery(line)
	return true
}

func (s *Session) runCommand(line string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case ".load":
		if arg == "" {
			fmt.Fprintln(s.out, "Usage: .load <path>")
			return
		}
		tbl, err := reader.Load(arg)
		if err != nil {
			s.logger.Warn("load failed", "path", arg, "error", err)
			fmt.Fprintf(s.out, "Error loading %s: %v\n", arg, err)
			return
		}
		s.store.Register(tbl)
		s.logger.Info("table loaded", "table", tbl.Name, "rows", len(tbl.Rows))
		fmt.Fprintf(s.out, "Loaded %q as table %q (%d rows)\n", arg, tbl.Name, len(tbl.Rows))
	case ".tables":
		names := s.store.Names()
		if len(names) == 0 {
			fmt.Fprintln(s.out, "(no tables loaded)")
			return
		}
		for _, name := range names {
			tbl, err := s.store.Lookup(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(s.out, "%s (%d rows)\n", name, len(tbl.Rows))
		}
	case ".help":
		fmt.Fprintln(s.out, ".load <path>   load a CSV or Parquet file as a table")
		fmt.Fprintln(s.out, ".tables        list loaded tables")
		fmt.Fprintln(s.out, "exit, quit     leave the shell")
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type .help\n", cmd)
	}
}

func (s *Session) runQuery(sql string) {
	q, err := query.Parse(sql)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	res, err := engine.Execute(q, s.store)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.logger.Debug("query executed", "table", q.Table, "scalar", res.Scalar, "rows", len(res.Rows))

	if err := s.formatter.Format(res); err != nil {
		fmt.Fprintf(s.out, "Error formatting result: %v\n", err)
	}
}
