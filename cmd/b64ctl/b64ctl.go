package main

import (
	"b64ctl/internal/b64"
	"b64ctl/internal/cli/decode"
	"b64ctl/internal/cli/encode"
	"b64ctl/internal/cli/run"
	"b64ctl/internal/cli/version"
	"b64ctl/internal/env"
	strings2 "b64ctl/internal/lib/strings"
	"b64ctl/internal/logging"
	"b64ctl/internal/output"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"strings"
	"unicode"
)

var rootCmd = &cobra.Command{
	Use:   "b64ctl [command] [flags]",
	Short: "Encode text to Base64 and decode it back",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and reports errors the slash commands did not report themselves
func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var slashErr *b64.Error
		if !errors.As(err, &slashErr) {
			logging.UserFailure(err.Error())
		}
		log.Debug().Err(err).Msg("command failed")
	}
	return err
}

func Usage(cmd *cobra.Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	usage := []string{fmt.Sprintf("Usage: %s", cmd.UseLine())}

	if cmd.HasAvailableSubCommands() {
		usage = append(usage, "\nCommands:")
		for _, subCommand := range cmd.Commands() {
			if subCommand.IsAvailableCommand() {
				usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
			}
		}
	}

	if len(cmd.Aliases) > 0 {
		usage = append(usage, "\nAliases: "+cmd.NameAndAliases())
	}

	usage = append(usage, "\nCommon flags:")
	if len(cmd.PersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.PersistentFlags().FlagUsages(), unicode.IsSpace))
	}
	if len(cmd.InheritedFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.InheritedFlags().FlagUsages(), unicode.IsSpace))
	}

	usage = append(usage, fmt.Sprintf("\nUse '%s [command] --help' for more information about a command.\n", cmd.CommandPath()))

	cmd.Println(strings.Join(usage, "\n"))

	return nil
}

func init() {
	rootCmd.AddCommand(encode.Encode)
	rootCmd.AddCommand(decode.Decode)
	rootCmd.AddCommand(run.Run)
	rootCmd.AddCommand(version.Version)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "help for this command")
	rootCmd.PersistentFlags().StringVarP(&env.Config.Output, "output", "o", output.FormatText,
		fmt.Sprintf("Output format (%s)", strings2.Choices(output.Formats...)))
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.SetUsageFunc(Usage)
}

func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
		}
		zerolog.SetGlobalLevel(level)
	}
}

func main() {
	configureLogging()
	Execute()
}
