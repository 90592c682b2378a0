package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/buildinfo"
)

// buildDetails describes the running binary. Release builds get their
// values from ldflags (internal/buildinfo); dev builds fall back to the
// module build info stamped by the Go toolchain.
type buildDetails struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show fsq version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := resolveBuildDetails()

		if isJSONOutput() {
			outputSuccess(d, nil)
			return nil
		}

		fmt.Printf("fsq %s (%s, %s)\n", d.Version, d.GoVersion, d.Platform)
		if d.Commit != "" {
			line := "commit " + d.Commit
			if d.Dirty {
				line += " (dirty)"
			}
			if d.BuiltAt != "" {
				line += ", built " + d.BuiltAt
			}
			fmt.Println(line)
		}
		return nil
	},
}

func resolveBuildDetails() buildDetails {
	d := buildDetails{
		Version:   buildinfo.Version,
		Commit:    buildinfo.Commit,
		BuiltAt:   buildinfo.Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		if d.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			d.Version = info.Main.Version
		}
		if info.GoVersion != "" {
			d.GoVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if d.Commit == "" {
					d.Commit = s.Value
				}
			case "vcs.time":
				if d.BuiltAt == "" {
					d.BuiltAt = s.Value
				}
			case "vcs.modified":
				d.Dirty = s.Value == "true"
			}
		}
	}

	if d.Version == "" {
		d.Version = "devel"
	}
	return d
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
