// Package slash runs plugin slash commands on behalf of cobra commands
package slash

import (
	"b64ctl/internal/env"
	"b64ctl/internal/logging"
	"b64ctl/internal/output"
	"b64ctl/internal/plugin"
	"errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var Plugin plugin.SlashCommands = plugin.New()

// Execute runs the named slash command with args and prints its output to the command's writer.
// Plugin failures are reported to the user and returned, other errors are only returned.
func Execute(cmd *cobra.Command, name string, args []string) error {
	formatter, err := output.NewFormatter(env.Config.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log.Debug().Str("command", name).Int("args", len(args)).Msg("running slash command")
	result, err := Plugin.Run(name, args)
	if err != nil {
		event := log.Debug().Str("command", name).Err(err)
		if cause := errors.Unwrap(err); cause != nil {
			event = event.AnErr("cause", cause)
		}
		event.Msg("slash command failed")
		logging.UserFailure(err.Error())
		return err
	}

	if result.Text == "" {
		logging.UserWarning("%s produced empty output", name)
	}
	return formatter.Print(result)
}

// CompleteArgs asks the plugin for argument suggestions of the named command
func CompleteArgs(name string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		completions, err := Plugin.Complete(name, append(append([]string(nil), args...), toComplete))
		if err != nil {
			log.Debug().Err(err).Msg("ignoring completion error")
			return nil, cobra.ShellCompDirectiveError
		}
		suggestions := make([]string, 0, len(completions))
		for _, c := range completions {
			suggestions = append(suggestions, c.NewText)
		}
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}
}
