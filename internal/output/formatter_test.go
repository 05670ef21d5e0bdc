package output

import (
	"b64ctl/internal/plugin"
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"testing"
)

func encodedHello(t *testing.T) *plugin.Output {
	t.Helper()
	out, err := plugin.New().Run(plugin.EncodeCommand, []string{"Hello,", "World!"})
	require.NoError(t, err)
	return out
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, FormatText, f.format)

	_, err = NewFormatter("xml", &bytes.Buffer{})
	require.EqualError(t, err, "unsupported output format: xml")
}

func TestPrintText(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFormatter(FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, f.Print(encodedHello(t)))
	assert.Equal(t, "SGVsbG8sIFdvcmxkIQ==\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFormatter(FormatJSON, buf)
	require.NoError(t, err)
	require.NoError(t, f.Print(encodedHello(t)))

	var got plugin.Output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *encodedHello(t), got)
	assert.Contains(t, buf.String(), `"label": "Encoded Output"`)
}

func TestPrintYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFormatter(FormatYAML, buf)
	require.NoError(t, err)
	require.NoError(t, f.Print(encodedHello(t)))

	var got plugin.Output
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *encodedHello(t), got)
	assert.Contains(t, buf.String(), "label: Encoded Output")
}

func TestPrintTable(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFormatter(FormatTable, buf)
	require.NoError(t, err)
	require.NoError(t, f.Print(encodedHello(t)))

	rendered := buf.String()
	assert.Contains(t, rendered, "LABEL")
	assert.Contains(t, rendered, "Encoded Output")
	assert.Contains(t, rendered, "SGVsbG8sIFdvcmxkIQ==")
	assert.Contains(t, rendered, "20")
}
