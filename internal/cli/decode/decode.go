package decode

import (
	"b64ctl/internal/cli/slash"
	"b64ctl/internal/plugin"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var Decode = &cobra.Command{
	Use:   "decode [base64...]",
	Short: "Decode Base64 to text",
	Long: dedent.Dedent(`
		Decode standard padded Base64 back to text.

		Arguments are joined with a single space before decoding. Input that does
		not look like Base64, malformed Base64 and payloads that are not UTF-8
		text are reported as distinct errors.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return slash.Execute(cmd, plugin.DecodeCommand, args)
	},
	ValidArgsFunction: slash.CompleteArgs(plugin.DecodeCommand),
	SilenceUsage:      true,
}
