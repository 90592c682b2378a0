package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/history"
	"github.com/aidanlsb/fsq/internal/ui"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(getConfig().HistoryPath())
		if err != nil {
			return handleError(ErrHistoryError, err, "")
		}
		defer store.Close()

		if historyClear {
			if err := store.Clear(); err != nil {
				return handleError(ErrHistoryError, err, "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]any{"cleared": true}, nil)
				return nil
			}
			fmt.Println(ui.Success("History cleared"))
			return nil
		}

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return handleError(ErrHistoryError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"items": entries}, &Meta{Count: len(entries)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(ui.Hint("No query history yet"))
			return nil
		}
		table := ui.NewTable(5)
		table.SetHeader("ID", "STARTED", "MATCHES", "MS", "QUERY")
		for _, e := range entries {
			table.AddRow(
				strconv.FormatInt(e.ID, 10),
				ui.FormatTime(e.StartedAt),
				strconv.Itoa(e.Matches),
				strconv.FormatInt(e.DurationMs, 10),
				e.Query,
			)
		}
		fmt.Print(table.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all history entries")
	rootCmd.AddCommand(historyCmd)
}
