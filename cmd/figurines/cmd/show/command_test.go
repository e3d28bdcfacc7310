package show

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines/internal/testutil"
	"github.com/agentstation/figurines/pkg/errors"
)

func TestShow(t *testing.T) {
	c, _ := testutil.Client(t)
	testutil.Add(t, c, "Gandalf", "wizard")

	tests := []struct {
		name   string
		format string
		ref    string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "by id as table",
			format: "table",
			ref:    "1",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Gandalf")
				assert.Contains(t, out, "images/thumbnails/Gandalf.png")
			},
		},
		{
			name:   "by name ignoring case as yaml",
			format: "yaml",
			ref:    "  GANDALF ",
			check: func(t *testing.T, out string) {
				var rec struct {
					ID        int      `yaml:"id"`
					FullImage string   `yaml:"fullImage"`
					Tags      []string `yaml:"tags"`
				}
				require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
				assert.Equal(t, 1, rec.ID)
				assert.Equal(t, "images/full/Gandalf.png", rec.FullImage)
				assert.Equal(t, []string{"wizard"}, rec.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewCommand(testutil.App(c, tt.format))
			cmd.SetOut(&out)
			cmd.SetArgs([]string{tt.ref})
			require.NoError(t, cmd.Execute())
			tt.check(t, out.String())
		})
	}
}

func TestShowUnknown(t *testing.T) {
	c, _ := testutil.Client(t)
	cmd := NewCommand(testutil.App(c, "table"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"Saruman"})
	assert.True(t, errors.IsNotFound(cmd.Execute()))
}
