package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines/internal/appcontext"
)

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(&appcontext.Mock{VersionFunc: func() string { return "1.2.3" }})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "figurines 1.2.3\n", out.String())
}
