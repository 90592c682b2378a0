package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/history"
	"github.com/aidanlsb/fsq/internal/ui"
)

var lastRun bool

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show or re-run the most recent query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(getConfig().HistoryPath())
		if err != nil {
			return handleError(ErrHistoryError, err, "")
		}
		defer store.Close()

		entry, err := store.Last()
		if err != nil {
			if errors.Is(err, history.ErrNoHistory) {
				return handleError(ErrHistoryError, err, "Run a query first with 'fsq query'")
			}
			return handleError(ErrHistoryError, err, "")
		}

		if lastRun {
			return runStatement(entry.Query)
		}

		if isJSONOutput() {
			outputSuccess(entry, nil)
			return nil
		}
		fmt.Println(entry.Query)
		fmt.Println(ui.Hint(fmt.Sprintf("started %s, %d matched in %dms",
			ui.FormatTime(entry.StartedAt), entry.Matches, entry.DurationMs)))
		return nil
	},
}

func init() {
	lastCmd.Flags().BoolVar(&lastRun, "run", false, "Re-run the query instead of printing it")
	rootCmd.AddCommand(lastCmd)
}
