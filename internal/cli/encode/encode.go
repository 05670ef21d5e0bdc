package encode

import (
	"b64ctl/internal/cli/slash"
	"b64ctl/internal/plugin"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var Encode = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text to Base64",
	Long: dedent.Dedent(`
		Encode text to standard padded Base64.

		All arguments are joined with a single space before encoding, so
		  b64ctl encode Hello, World!
		prints SGVsbG8sIFdvcmxkIQ==
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return slash.Execute(cmd, plugin.EncodeCommand, args)
	},
	ValidArgsFunction: slash.CompleteArgs(plugin.EncodeCommand),
	SilenceUsage:      true,
}
