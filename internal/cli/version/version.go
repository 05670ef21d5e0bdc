package version

import (
	"b64ctl/internal/env"
	"fmt"
	"github.com/spf13/cobra"
)

var Version = &cobra.Command{
	Use:   "version",
	Short: "Version",
	RunE: func(c *cobra.Command, _ []string) error {
		versionInfo := env.GetBuildVersion()
		_, err := fmt.Fprintf(c.OutOrStdout(), "%s\n%s\n", versionInfo.BuildVersion, versionInfo.Commit)
		return err
	},
	SilenceUsage: true,
}
