package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/fileinfo"
	"github.com/aidanlsb/fsq/internal/listing"
	"github.com/aidanlsb/fsq/internal/ui"
)

var (
	listRecursive bool
	listAll       bool
	listLong      bool
	listTotal     bool
	listPattern   string
	listSortBy    string
	listGroupBy   string
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List directory contents without writing a query",
	Long: `List the entries of a directory, with filtering, sorting and
grouping flags instead of a WHERE clause. Defaults to the current
directory.

Examples:
  fsq list ~/Downloads --sort size
  fsq list /var/log --recursive --pattern '*.log' --total
  fsq list . --all --long --group-by folder`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		sortBy, err := listing.ParseSort(listSortBy)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		groupBy, err := listing.ParseGroup(listGroupBy)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		entries, err := listing.List(root, listing.Options{
			Recursive: listRecursive,
			All:       listAll,
			Pattern:   listPattern,
			SortBy:    sortBy,
			GroupBy:   groupBy,
		})
		if err != nil {
			return handleError(ErrPathInvalid, err, "")
		}

		if isJSONOutput() {
			data := map[string]any{"items": entries}
			if listTotal {
				data["total_size"] = listing.TotalSize(entries)
			}
			outputSuccess(data, &Meta{Count: len(entries)})
			return nil
		}

		fmt.Print(renderListing(entries))
		if listTotal {
			fmt.Println(ui.Hint("total " + ui.FormatSize(listing.TotalSize(entries))))
		}
		return nil
	},
}

func renderListing(entries []*fileinfo.FileInfo) string {
	if len(entries) == 0 {
		return ui.Hint("empty") + "\n"
	}

	if !listLong {
		var sb strings.Builder
		for _, fi := range entries {
			sb.WriteString(displayName(fi))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	table := ui.NewTable(5)
	table.SetHeader("MODE", "SIZE", "MODIFIED", "OWNER", "NAME")
	for _, fi := range entries {
		size := "-"
		if !fi.IsDir {
			size = ui.FormatSize(fi.Size)
		}
		owner := fi.Owner
		if owner == "" {
			owner = "-"
		}
		table.AddRow(
			ui.FormatMode(fi.Mode(), fi.IsDir),
			size,
			ui.FormatTime(fi.Modified),
			owner,
			displayName(fi),
		)
	}
	return table.String()
}

func displayName(fi *fileinfo.FileInfo) string {
	if fi.IsDir {
		return ui.FilePath(fi.Name + "/")
	}
	return fi.Name
}

func init() {
	listCmd.Flags().BoolVarP(&listRecursive, "recursive", "r", false, "Descend into subdirectories")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include hidden entries")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Long view with mode, size, times and owner")
	listCmd.Flags().BoolVar(&listTotal, "total", false, "Print the total size of listed files")
	listCmd.Flags().StringVar(&listPattern, "pattern", "", "Only list names matching a glob pattern")
	listCmd.Flags().StringVar(&listSortBy, "sort", "name", "Sort order: name, size, modified or type")
	listCmd.Flags().StringVar(&listGroupBy, "group-by", "none", "Grouping: none, folder or extension")
	rootCmd.AddCommand(listCmd)
}
