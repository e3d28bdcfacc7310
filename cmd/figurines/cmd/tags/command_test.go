package tags

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines/internal/testutil"
)

func TestTags(t *testing.T) {
	c, _ := testutil.Client(t)
	testutil.Add(t, c, "Legolas", "elf", "archer")
	testutil.Add(t, c, "Arwen", "elf")
	testutil.Add(t, c, "Gimli")

	var out bytes.Buffer
	cmd := NewCommand(testutil.App(c, "json"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var got []tagCount
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []tagCount{{Tag: "archer", Records: 1}, {Tag: "elf", Records: 2}}, got)
}

func TestTagsTable(t *testing.T) {
	c, _ := testutil.Client(t)
	testutil.Add(t, c, "Legolas", "elf")

	var out bytes.Buffer
	cmd := NewCommand(testutil.App(c, "table"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "elf")
	assert.Contains(t, out.String(), "RECORDS")
}
