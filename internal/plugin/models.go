package plugin

// Range is a half open byte range into Output.Text
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type Section struct {
	Range Range  `json:"range" yaml:"range"`
	Label string `json:"label" yaml:"label"`
}

type Output struct {
	Text     string    `json:"text" yaml:"text"`
	Sections []Section `json:"sections" yaml:"sections"`
}

type Completion struct {
	Label      string `json:"label" yaml:"label"`
	NewText    string `json:"new_text" yaml:"new_text"`
	RunCommand bool   `json:"run_command" yaml:"run_command"`
}

func newOutput(text, label string) *Output {
	return &Output{
		Text: text,
		Sections: []Section{
			{Range: Range{Start: 0, End: len(text)}, Label: label},
		},
	}
}
