package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/config"
	"github.com/aidanlsb/fsq/internal/history"
	"github.com/aidanlsb/fsq/internal/query"
	"github.com/aidanlsb/fsq/internal/ui"
)

var (
	querySaveName   string
	querySaveDesc   string
	queryRemoveName string
	queryListSaved  bool
	queryNoHistory  bool
)

var queryCmd = &cobra.Command{
	Use:   "query <statement>",
	Short: "Run a query using the fsq query language",
	Long: `Run a SQL-flavored query against the filesystem.

Statements:
  SELECT * FROM <path> [WHERE <condition>]       List entries at depth 1
  WITH RECURSIVE SELECT * FROM <path> ...        List entries recursively
  UPDATE <path> SET permissions = '<octal>' ...  Change permissions

Conditions combine with AND, OR, NOT and parentheses:
  name = 'notes.txt'            Exact comparison (= != < <= > >=)
  name LIKE '%config%'          SQL pattern: % any run, _ one char
  size BETWEEN 1000 AND 9999    Inclusive range
  name REGEXP '^server_[0-9]+'  Regular expression, unanchored
  modified > 2025-01-01         Dates and datetimes, or today/yesterday

Attributes:
  name, path, size, extension, modified, created, accessed,
  permissions, owner, is_directory, is_symlink, is_executable

Examples:
  fsq query "SELECT * FROM ~/Documents WHERE extension = 'txt'"
  fsq query "WITH RECURSIVE SELECT * FROM /var/log WHERE size > 1000000"
  fsq query big-logs                 # Run saved query
  fsq query --list                   # List saved queries`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesPath := getConfig().QueriesPath(configPath)

		if queryListSaved {
			return listSavedQueries(queriesPath)
		}
		if queryRemoveName != "" {
			return removeSavedQuery(queriesPath, queryRemoveName)
		}

		if len(args) == 0 {
			return handleError(ErrMissingArgument,
				fmt.Errorf("specify a query string"),
				"Run 'fsq query --list' to see saved queries")
		}
		input := args[0]

		if querySaveName != "" {
			return saveQuery(queriesPath, querySaveName, input, querySaveDesc)
		}

		statement := input
		if !looksLikeStatement(input) {
			queries, err := config.LoadQueries(queriesPath)
			if err != nil {
				return handleError(ErrConfigInvalid, err, "")
			}
			saved, ok := config.FindQuery(queries, input)
			if !ok {
				return handleError(ErrQueryNotFound,
					fmt.Errorf("unknown query: %s", input),
					"Statements start with SELECT, WITH RECURSIVE or UPDATE. Run 'fsq query --list' to see saved queries.")
			}
			statement = saved.Query
		}

		return runStatement(statement)
	},
}

// runStatement parses, executes, records and renders one statement.
// Only successful runs are recorded in history.
func runStatement(statement string) error {
	start := time.Now()

	stmt, err := query.Parse(statement)
	if err != nil {
		return handleError(queryErrorCode(err), err, "")
	}

	results, execErr := query.NewExecutor().Execute(stmt)
	if execErr != nil {
		return handleError(queryErrorCode(execErr), execErr, "")
	}
	duration := time.Since(start)
	recordHistory(statement, len(results), start, duration)

	elapsed := duration.Milliseconds()

	if isJSONOutput() {
		outputSuccess(map[string]any{"items": results}, &Meta{
			Count:       len(results),
			QueryTimeMs: elapsed,
		})
		return nil
	}

	var attrs []query.Attribute
	if sel, ok := stmt.(*query.Select); ok {
		attrs = sel.Attributes
	}
	fmt.Print(renderResults(results, attrs))
	return nil
}

// recordHistory appends the run to the history database. History is
// best-effort: failures never fail the query.
func recordHistory(statement string, matches int, startedAt time.Time, duration time.Duration) {
	c := getConfig()
	if c.History.Disabled || queryNoHistory {
		return
	}
	store, err := history.Open(c.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open history: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(statement, matches, startedAt, duration); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot record history: %v\n", err)
	}
}

// looksLikeStatement reports whether the input starts with a statement
// keyword rather than a saved query name.
func looksLikeStatement(input string) bool {
	upper := strings.ToUpper(strings.TrimSpace(input))
	return strings.HasPrefix(upper, "SELECT") ||
		strings.HasPrefix(upper, "WITH") ||
		strings.HasPrefix(upper, "UPDATE")
}

func listSavedQueries(path string) error {
	queries, err := config.LoadQueries(path)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]any{"queries": queries}, &Meta{Count: len(queries)})
		return nil
	}

	if len(queries) == 0 {
		fmt.Println(ui.Hint("No saved queries. Save one with: fsq query --save <name> \"<statement>\""))
		return nil
	}
	table := ui.NewTable(3)
	table.SetHeader("NAME", "QUERY", "DESCRIPTION")
	for _, q := range queries {
		table.AddRow(q.Name, q.Query, q.Description)
	}
	fmt.Print(table.String())
	return nil
}

func saveQuery(path, name, statement, description string) error {
	// Validate before persisting.
	if _, err := query.Parse(statement); err != nil {
		return handleError(queryErrorCode(err), err, "")
	}

	queries, err := config.LoadQueries(path)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}
	queries, err = config.AddQuery(queries, config.SavedQuery{
		Name:        name,
		Query:       statement,
		Description: description,
	})
	if err != nil {
		return handleError(ErrDuplicateName, err, "Remove the existing query first with 'fsq query --remove'")
	}
	if err := config.SaveQueries(path, queries); err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]any{"saved": name}, nil)
		return nil
	}
	fmt.Println(ui.Successf("Saved query %q", name))
	return nil
}

func removeSavedQuery(path, name string) error {
	queries, err := config.LoadQueries(path)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}
	queries, err = config.RemoveQuery(queries, name)
	if err != nil {
		return handleError(ErrQueryNotFound, err, "Run 'fsq query --list' to see saved queries")
	}
	if err := config.SaveQueries(path, queries); err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]any{"removed": name}, nil)
		return nil
	}
	fmt.Println(ui.Successf("Removed query %q", name))
	return nil
}

func init() {
	queryCmd.Flags().StringVar(&querySaveName, "save", "", "Save the statement under a name instead of running it")
	queryCmd.Flags().StringVar(&querySaveDesc, "description", "", "Description for --save")
	queryCmd.Flags().StringVar(&queryRemoveName, "remove", "", "Remove a saved query")
	queryCmd.Flags().BoolVar(&queryListSaved, "list", false, "List saved queries")
	queryCmd.Flags().BoolVar(&queryNoHistory, "no-history", false, "Skip recording this run in history")
	rootCmd.AddCommand(queryCmd)
}
