package plugin

import (
	"b64ctl/internal/b64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    *Output
	}{
		{
			name:    "encode joins arguments with spaces",
			command: EncodeCommand,
			args:    []string{"Hello,", "World!"},
			want: &Output{
				Text:     "SGVsbG8sIFdvcmxkIQ==",
				Sections: []Section{{Range: Range{Start: 0, End: 20}, Label: EncodedLabel}},
			},
		},
		{
			name:    "decode single argument",
			command: DecodeCommand,
			args:    []string{"SGVsbG8sIFdvcmxkIQ=="},
			want: &Output{
				Text:     "Hello, World!",
				Sections: []Section{{Range: Range{Start: 0, End: 13}, Label: DecodedLabel}},
			},
		},
		{
			name:    "decoded range counts bytes",
			command: DecodeCommand,
			args:    []string{b64.Encode("héllo")},
			want: &Output{
				Text:     "héllo",
				Sections: []Section{{Range: Range{Start: 0, End: 6}, Label: DecodedLabel}},
			},
		},
		{
			name:    "single empty argument",
			command: EncodeCommand,
			args:    []string{""},
			want: &Output{
				Text:     "",
				Sections: []Section{{Range: Range{Start: 0, End: 0}, Label: EncodedLabel}},
			},
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.Run(tt.command, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		kind    b64.ErrorKind
		message string
	}{
		{name: "encode without input", command: EncodeCommand, kind: b64.NoInput, message: "No input provided"},
		{name: "decode without input", command: DecodeCommand, args: []string{}, kind: b64.NoInput, message: "No input provided"},
		{name: "unknown command without input", command: "frobnicate", kind: b64.NoInput, message: "No input provided"},
		{name: "unknown command", command: "frobnicate", args: []string{"x"}, kind: b64.UnknownCommand, message: "Unknown slash command: frobnicate"},
		{name: "decode plain text", command: DecodeCommand, args: []string{"hello", "world!"}, kind: b64.NotBase64},
		{name: "decode joined tokens break padding", command: DecodeCommand, args: []string{"AB="}, kind: b64.MalformedBase64},
		{name: "decode binary payload", command: DecodeCommand, args: []string{"/w=="}, kind: b64.NotUtf8},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.Run(tt.command, tt.args)
			require.Error(t, err)
			assert.Nil(t, got)

			kind, ok := b64.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestUnknownCommandCarriesName(t *testing.T) {
	_, err := New().Run("frobnicate", []string{"x"})
	var e *b64.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "frobnicate", e.Command)
}

func TestRunRoundTripThroughCommands(t *testing.T) {
	ext := New()
	encoded, err := ext.Run(EncodeCommand, []string{"multi", "word", "日本語"})
	require.NoError(t, err)

	decoded, err := ext.Run(DecodeCommand, []string{encoded.Text})
	require.NoError(t, err)
	assert.Equal(t, "multi word 日本語", decoded.Text)
}

func TestComplete(t *testing.T) {
	for _, info := range Commands() {
		completions, err := New().Complete(info.Name, []string{"partial"})
		require.NoError(t, err)
		assert.NotNil(t, completions)
		assert.Empty(t, completions)
	}
}

func TestCommands(t *testing.T) {
	infos := Commands()
	require.Len(t, infos, 2)
	assert.Equal(t, EncodeCommand, infos[0].Name)
	assert.Equal(t, DecodeCommand, infos[1].Name)

	infos[0].Name = "mutated"
	assert.Equal(t, EncodeCommand, Commands()[0].Name)
}
