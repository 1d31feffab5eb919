package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) (options, error) {
	t.Helper()

	var got options
	app := newApp(func(o options) error {
		got = o
		return nil
	})

	err := app.Run(append([]string{"triangles"}, args...))
	return got, err
}

func TestOptions_Defaults(t *testing.T) {
	o, err := parseArgs(t)
	require.NoError(t, err)
	require.NotNil(t, o.Config)

	assert.Equal(t, 800, o.Config.Window.Width)
	assert.Equal(t, 600, o.Config.Window.Height)
	assert.True(t, o.Config.Window.VSync)
	assert.Equal(t, "assets", o.Config.Assets)
	assert.False(t, o.Watch)
	assert.Zero(t, o.Frames)
	assert.Empty(t, o.Screenshot)
}

func TestOptions_Flags(t *testing.T) {
	o, err := parseArgs(t,
		"--width", "320", "--height", "240",
		"--title", "flags", "--assets", "data",
		"--vsync=false", "--wireframe", "--watch",
		"--frames", "10", "--screenshot", "out.png",
	)
	require.NoError(t, err)

	assert.Equal(t, 320, o.Config.Window.Width)
	assert.Equal(t, 240, o.Config.Window.Height)
	assert.Equal(t, "flags", o.Config.Window.Title)
	assert.Equal(t, "data", o.Config.Assets)
	assert.False(t, o.Config.Window.VSync)
	assert.True(t, o.Config.Wireframe)
	assert.True(t, o.Watch)
	assert.Equal(t, 10, o.Frames)
	assert.Equal(t, "out.png", o.Screenshot)
}

func TestOptions_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 1024
height = 768
`), 0o644))

	o, err := parseArgs(t, "--config", path, "--height", "100")
	require.NoError(t, err)

	assert.Equal(t, 1024, o.Config.Window.Width, "from file")
	assert.Equal(t, 100, o.Config.Window.Height, "flag overrides file")
}

func TestOptions_Example(t *testing.T) {
	o, err := parseArgs(t, "--config", "triangles.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"orange", "yellow"}, o.Config.ProgramNames())
}

func TestOptions_Invalid(t *testing.T) {
	tests := [][]string{
		{"--width", "0"},
		{"--title", ""},
		{"--frames", "-1"},
		{"--config", filepath.Join(t.TempDir(), "missing.toml")},
	}

	for _, args := range tests {
		_, err := parseArgs(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestOptions_Capture(t *testing.T) {
	tests := []struct {
		Name       string
		Screenshot string
		Requested  bool
		Running    bool
		Expected   bool
	}{
		{"running, no file", "", false, true, false},
		{"running, file set", "out.png", false, true, false},
		{"closed, file set", "out.png", false, false, true},
		{"closed, no file", "", false, false, false},
		{"key press", "", true, true, true},
		{"key press with file", "out.png", true, true, true},
	}

	for _, c := range tests {
		o := options{Screenshot: c.Screenshot}
		assert.Equal(t, c.Expected, o.capture(c.Requested, c.Running), c.Name)
	}
}

func TestOptions_ScreenshotWithoutFrames(t *testing.T) {
	// runs until the window is closed and captures then
	o, err := parseArgs(t, "--screenshot", "out.png")
	require.NoError(t, err)

	assert.Zero(t, o.Frames)
	assert.True(t, o.capture(false, false))
}

func TestPendingChanges(t *testing.T) {
	changes := make(chan string, 8)
	for _, f := range []string{"orange.fragment", "orange.fragment", "triangle.vertex", "orange.fragment"} {
		changes <- f
	}

	assert.Equal(t, []string{"orange.fragment", "triangle.vertex"}, pendingChanges(changes))
	assert.Empty(t, pendingChanges(changes), "drained")

	close(changes)
	assert.Empty(t, pendingChanges(changes), "closed")
	assert.Empty(t, pendingChanges(nil), "watching disabled")
}
