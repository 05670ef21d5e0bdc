// Package plugin exposes the encode and decode slash commands behind a host
// independent interface.
package plugin

import (
	"b64ctl/internal/b64"
	"strings"
)

const (
	EncodeCommand = "encode"
	DecodeCommand = "decode"

	EncodedLabel = "Encoded Output"
	DecodedLabel = "Decoded Output"
)

// SlashCommands is what a host needs to drive the plugin
type SlashCommands interface {
	Run(name string, args []string) (*Output, error)
	Complete(name string, args []string) ([]Completion, error)
}

type CommandInfo struct {
	Name             string
	Description      string
	RequiresArgument bool
}

var commands = []CommandInfo{
	{Name: EncodeCommand, Description: "Encode text to Base64", RequiresArgument: true},
	{Name: DecodeCommand, Description: "Decode Base64 to text", RequiresArgument: true},
}

// Commands lists the slash commands the plugin can run
func Commands() []CommandInfo {
	return append([]CommandInfo(nil), commands...)
}

type Extension struct{}

var _ SlashCommands = (*Extension)(nil)

func New() *Extension {
	return &Extension{}
}

// Run joins args with single spaces and runs the named command on the result
func (*Extension) Run(name string, args []string) (*Output, error) {
	if len(args) == 0 {
		return nil, b64.NewError(b64.NoInput)
	}
	input := strings.Join(args, " ")

	switch name {
	case EncodeCommand:
		return newOutput(b64.Encode(input), EncodedLabel), nil
	case DecodeCommand:
		decoded, err := b64.Decode(input)
		if err != nil {
			return nil, err
		}
		return newOutput(decoded, DecodedLabel), nil
	default:
		return nil, b64.NewUnknownCommandError(name)
	}
}

// Complete never suggests anything
func (*Extension) Complete(_ string, _ []string) ([]Completion, error) {
	return []Completion{}, nil
}
