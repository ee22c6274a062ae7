package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/logger"
	"github.com/teranos/girgen/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show girgen version information",
	Long: `Display version, build time, commit hash, and platform information for the girgen binary.

When a girgen.toml is found, the namespace and version baseline it
generates for are shown as well.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		info := version.Get()
		if cfg, err := loadConfig(cmd); err == nil {
			info = info.WithCodegen(cfg)
		} else {
			logger.Named("version").Debugw("No configuration for baseline", "error", err)
		}
		out := cmd.OutOrStdout()

		if jsonOutput {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to format version as JSON")
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		if baseline := info.Baseline(); baseline != "" {
			fmt.Fprintf(out, "Baseline: %s\n", baseline)
		}
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
