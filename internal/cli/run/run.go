package run

import (
	"b64ctl/internal/cli/slash"
	"b64ctl/internal/lib/strings"
	"b64ctl/internal/plugin"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"gopkg.in/errgo.v2/fmt/errors"
)

func commandNames() []string {
	var names []string
	for _, info := range plugin.Commands() {
		names = append(names, info.Name)
	}
	return names
}

var Run = &cobra.Command{
	Use:   "run <command> [text...]",
	Short: "Run a slash command by name",
	Long: dedent.Dedent(`
		Run a slash command by name, the way an editor host dispatches it.

		  b64ctl run encode Hello, World!
		  b64ctl run decode SGVsbG8sIFdvcmxkIQ==
	`),
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.Newf("requires a slash command name (%s)", strings.Choices(commandNames()...))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return slash.Execute(cmd, args[0], args[1:])
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return commandNames(), cobra.ShellCompDirectiveNoFileComp
		}
		return slash.CompleteArgs(args[0])(cmd, args[1:], toComplete)
	},
	SilenceUsage: true,
}
