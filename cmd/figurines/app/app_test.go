package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/figurines"
	"github.com/agentstation/figurines/internal/testutil"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

func testConfig(root string) *Config {
	return &Config{
		Root:            root,
		Format:          "table",
		ThumbnailWidth:  300,
		ThumbnailHeight: 300,
		ThumbnailFilter: "catmull-rom",
		JPEGQuality:     95,
		LogFormat:       "json",
		LogOutput:       "discard",
	}
}

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	root := t.TempDir()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(testConfig(root)),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return app, root
}

func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Client_Singleton(t *testing.T) {
	app, root := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]figurines.Client, goroutines)
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, root, results[0].Layout().Root())
	assert.DirExists(t, filepath.Join(root, "images", "thumbnails"))
}

func TestApp_Client_BadFilter(t *testing.T) {
	app, _ := newTestApp(t)
	app.config.ThumbnailFilter = "lanczos"

	_, err := app.Client()
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestApp_WithClient(t *testing.T) {
	c, _ := testutil.Client(t)
	app, err := New("dev", "", "", "", WithConfig(testConfig(t.TempDir())), WithClient(c))
	require.NoError(t, err)

	got, err := app.Client()
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestApp_Execute(t *testing.T) {
	app, _ := newTestApp(t)
	other := t.TempDir()
	src := testutil.PNG(t, "eowyn.png", 320, 200)

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		cmd := app.createRootCommand()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		return out.String()
	}

	out := run("--root", other, "--log-level", "error", "add", "Eowyn", "--image", src, "--tag", "rohan")
	assert.Contains(t, out, `Created "Eowyn" (id 1)`)
	assert.Equal(t, other, app.Config().Root)
	assert.FileExists(t, filepath.Join(other, "images", "thumbnails", "eowyn.png"))

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(run("list", "-o", "json")), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Eowyn", records[0]["name"])
}

func TestApp_SetupCommandFlags(t *testing.T) {
	app, _ := newTestApp(t)
	cmd := app.createRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "--no-color", "--format", "yaml", "version"})
	require.NoError(t, cmd.Execute())

	assert.True(t, app.Config().Quiet)
	assert.True(t, app.Config().NoColor)
	assert.Equal(t, "yaml", app.OutputFormat())
}

func TestApp_RejectsUnknownFormat(t *testing.T) {
	app, _ := newTestApp(t)
	cmd := app.createRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "csv", "version"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestApp_ShutdownClosesLogFile(t *testing.T) {
	app, _ := newTestApp(t)
	logPath := filepath.Join(t.TempDir(), "figurines.log")
	app.config.LogOutput = logPath

	cmd := app.createRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	f, ok := app.logCloser.(*os.File)
	require.True(t, ok, "log output should be the opened file")
	app.Logger().Warn().Msg("closing soon")

	require.NoError(t, app.Shutdown(context.Background()))
	assert.ErrorIs(t, f.Close(), os.ErrClosed)
	assert.NoError(t, app.Shutdown(context.Background()), "second shutdown is a no-op")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "closing soon")
}
