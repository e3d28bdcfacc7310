package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines/internal/cmd/table"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatterKeepsHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]string{"name": "Merry & Pippin"}))
	assert.Contains(t, buf.String(), "Merry & Pippin")
}

func TestWrite(t *testing.T) {
	data := table.Data{Headers: []string{"NAME"}, Rows: [][]string{{"Treebeard"}}}
	raw := []map[string]string{{"name": "Treebeard"}}

	var tbl bytes.Buffer
	require.NoError(t, Write(&tbl, FormatTable, data, raw))
	assert.Contains(t, tbl.String(), "Treebeard")
	assert.Contains(t, tbl.String(), "NAME")

	var yml bytes.Buffer
	require.NoError(t, Write(&yml, FormatYAML, data, raw))
	assert.Equal(t, "- name: Treebeard\n", yml.String())
}
