package output

import (
	"b64ctl/internal/lib/strings"
	"b64ctl/internal/plugin"
	"encoding/json"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
	"io"
	"strconv"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatTable}

type Formatter struct {
	format string
	out    io.Writer
}

func NewFormatter(format string, out io.Writer) (*Formatter, error) {
	if format == "" {
		format = FormatText
	}
	if !strings.AnyOf(format, Formats...) {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Formatter{format: format, out: out}, nil
}

// Print writes the command output in the configured format
func (f *Formatter) Print(data *plugin.Output) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(data)
	case FormatYAML:
		return f.printYAML(data)
	case FormatTable:
		return f.printTable(data)
	default:
		_, err := fmt.Fprintln(f.out, data.Text)
		return err
	}
}

func (f *Formatter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(f.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

func (f *Formatter) printTable(data *plugin.Output) error {
	table := tablewriter.NewWriter(f.out)
	table.SetHeader([]string{"Label", "Start", "End", "Text"})
	table.SetAutoWrapText(false)
	table.SetBorder(true)

	for _, section := range data.Sections {
		table.Append([]string{
			section.Label,
			strconv.Itoa(section.Range.Start),
			strconv.Itoa(section.Range.End),
			data.Text[section.Range.Start:section.Range.End],
		})
	}
	table.Render()
	return nil
}
