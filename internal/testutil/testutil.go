// Package testutil provides helpers shared by command and integration tests.
package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines"
	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/pkg/logging"
)

// Client opens a client on a fresh project root.
func Client(t testing.TB) (figurines.Client, string) {
	t.Helper()
	root := t.TempDir()
	c, err := figurines.New(figurines.WithRoot(root), figurines.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return c, root
}

// App returns a mock application context serving c in the given output format.
func App(c figurines.Client, format string) *appcontext.Mock {
	return &appcontext.Mock{
		ClientFunc:       func() (figurines.Client, error) { return c, nil },
		OutputFormatFunc: func() string { return format },
	}
}

// PNG writes a w×h PNG named name into a fresh directory and returns its path.
func PNG(t testing.TB, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// Add creates a record with a generated image.
func Add(t testing.TB, c figurines.Client, name string, tags ...string) {
	t.Helper()
	_, err := c.Create(name, PNG(t, name+".png", 40, 30), tags)
	require.NoError(t, err)
}
