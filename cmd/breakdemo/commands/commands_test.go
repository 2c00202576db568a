package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose = "", false
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("12.5, 40")
	require.NoError(t, err)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 40.0, y)

	for _, s := range []string{"", "1", "a,2", "1,b"} {
		_, _, err := parsePoint(s)
		assert.Error(t, err, s)
	}
}

func TestInspectDemo(t *testing.T) {
	out, err := run(t, "inspect")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "collapsed"))
	assert.Equal(t, 2, strings.Count(out, "sawtooth"))
}

func TestRenderWithConfigAndClick(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
width = 200
height = 200

[grid]
left = 50
right = 50
top = 50
bottom = 50

[axis]
orient = "vertical"
max = 110

[[axis.breaks]]
start = 40
end = 60
gap = 10

[axis.break_area]
mode = "area"
`), 0o644))
	png := filepath.Join(dir, "out.png")

	// The break spans y 110 to 100 on the 100px plot.
	out, err := run(t, "render", "-c", cfg, "-o", png, "--click", "100,105", "--click", "100,105")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing hit")
	assert.Contains(t, out, "(2 layouts)")

	fi, err := os.Stat(png)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}

func TestRenderBadConfig(t *testing.T) {
	_, err := run(t, "render", "-c", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
