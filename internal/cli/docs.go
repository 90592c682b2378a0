package cli

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/fsq/docs"
	"github.com/aidanlsb/fsq/internal/ui"
)

var docsPlain bool

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled documentation",
	Long: `Read the documentation bundled with the binary. Without a topic,
lists the available topics.

For command flags, use: fsq help <command>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := docsTopics()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if len(args) == 0 {
			return listDocsTopics(topics)
		}

		topic := strings.TrimSuffix(args[0], ".md")
		if _, ok := topics[topic]; !ok {
			return handleError(ErrInvalidInput,
				fmt.Errorf("unknown topic: %s", topic),
				"Run 'fsq docs' to list topics")
		}

		content, err := fs.ReadFile(builtindocs.FS, topic+".md")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"topic": topic, "content": string(content)}, nil)
			return nil
		}

		dc := ui.NewDisplayContext()
		if docsPlain || !dc.IsTTY {
			fmt.Print(string(content))
			return nil
		}
		rendered, err := ui.RenderMarkdown(string(content), dc.TermWidth)
		if err != nil {
			// Fall back to the raw markdown rather than failing.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// docsTopics maps topic name to its title (first heading).
func docsTopics() (map[string]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, ".")
	if err != nil {
		return nil, err
	}

	topics := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		topic := strings.TrimSuffix(name, ".md")
		topics[topic] = docTitle(name)
	}
	return topics, nil
}

func docTitle(name string) string {
	content, err := fs.ReadFile(builtindocs.FS, name)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return ""
}

func listDocsTopics(topics map[string]string) error {
	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)

	if isJSONOutput() {
		items := make([]map[string]string, 0, len(names))
		for _, name := range names {
			items = append(items, map[string]string{"id": name, "title": topics[name]})
		}
		outputSuccess(map[string]any{"topics": items}, &Meta{Count: len(items)})
		return nil
	}

	table := ui.NewTable(2)
	table.SetHeader("TOPIC", "TITLE")
	for _, name := range names {
		table.AddRow(name, topics[name])
	}
	fmt.Print(table.String())
	fmt.Println(ui.Hint("Read one with: fsq docs <topic>"))
	return nil
}

func init() {
	docsCmd.Flags().BoolVar(&docsPlain, "plain", false, "Print raw markdown without rendering")
	rootCmd.AddCommand(docsCmd)
}
