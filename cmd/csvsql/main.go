package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/vegasq/csvsql/internal/engine"
	"github.com/vegasq/csvsql/internal/logging"
	"github.com/vegasq/csvsql/internal/output"
	"github.com/vegasq/csvsql/internal/query"
	"github.com/vegasq/csvsql/internal/reader"
	"github.com/vegasq/csvsql/internal/repl"
	"github.com/vegasq/csvsql/internal/table"
)

var (
	queryFlag  = flag.String("q", "", "SQL query to run once (e.g., \"SELECT * FROM users WHERE age > 30\")")
	formatFlag = flag.String("f", "table", "Output format: table, csv, jsonl")
	limitFlag  = flag.Int("limit", 0, "Limit number of result rows (0 = unlimited)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.csv ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A minimal SQL engine over CSV and Parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "Each file loads as a table named after the file without its extension.\n")
		fmt.Fprintf(os.Stderr, "Without -q an interactive shell starts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s users.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"SELECT * FROM users WHERE age > 30\" users.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv -q \"SELECT COUNT(*) FROM users\" users.csv\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	logger, closeLogs := logging.Setup()
	defer closeLogs()

	store := table.NewStore()
	for _, path := range flag.Args() {
		tbl, err := reader.Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", path)
				fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
		store.Register(tbl)
		logger.Info("table loaded", "table", tbl.Name, "rows", len(tbl.Rows))
	}

	formatter, err := newFormatter(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported formats: table, csv, jsonl\n")
		os.Exit(1)
	}

	if *queryFlag != "" {
		runOnce(*queryFlag, store, formatter)
		return
	}

	sess := repl.NewSession(store, formatter, os.Stdout, logger)
	sess.Run(os.Stdin)
}

// runOnce executes a single query against the preloaded store and
// prints the result.
func runOnce(sql string, store *table.Store, formatter output.Formatter) {
	q, err := query.Parse(sql)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing query: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "Query format: SELECT * FROM table WHERE <condition>\n")
		fmt.Fprintf(os.Stderr, "Example: SELECT * FROM users WHERE age > 30\n")
		os.Exit(1)
	}

	res, err := engine.Execute(q, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// List available columns to help the user
		var colErr *table.UnknownColumnError
		if errors.As(err, &colErr) {
			if tbl, lerr := store.Lookup(q.Table); lerr == nil {
				fmt.Fprintf(os.Stderr, "\nAvailable columns: %s\n", strings.Join(tbl.Columns, ", "))
			}
		}
		os.Exit(1)
	}

	if *limitFlag > 0 && !res.Scalar && len(res.Rows) > *limitFlag {
		res.Rows = res.Rows[:*limitFlag]
	}

	if err := formatter.Format(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}
