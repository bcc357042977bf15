package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/sceneview/internal/fovsweep"
	"github.com/banshee-data/sceneview/internal/security"
)

func baseOptions(dir string) options {
	return options{
		min: "-1,-1,-1", max: "1,1,1",
		aspect: 1, offset: 1,
		from: 30, to: 60, step: 10,
		outDir: dir,
	}
}

func TestRun_CSV(t *testing.T) {
	o := baseOptions(t.TempDir())
	o.printRows = true

	var out bytes.Buffer
	require.NoError(t, run(o, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "fov_deg,distance,far_plane", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "30,"))
	assert.True(t, strings.HasPrefix(lines[4], "60,"))
}

func TestRun_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	o := baseOptions(dir)
	o.pngName = "sweep.png"
	o.htmlName = filepath.Join("charts", "sweep")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "charts"), 0755))
	require.NoError(t, run(o, &bytes.Buffer{}))

	assert.FileExists(t, filepath.Join(dir, "sweep.png"))
	html, err := os.ReadFile(filepath.Join(dir, "charts", "sweep.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "aspect=1")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	o := baseOptions(dir)
	o.min = "0,0"
	assert.Error(t, run(o, &bytes.Buffer{}))

	o = baseOptions(dir)
	o.max = "1,x,1"
	assert.Error(t, run(o, &bytes.Buffer{}))

	o = baseOptions(dir)
	o.step = 0
	assert.ErrorIs(t, run(o, &bytes.Buffer{}), fovsweep.ErrEmptyRange)

	o = baseOptions(dir)
	o.step = 1e-300
	assert.ErrorIs(t, run(o, &bytes.Buffer{}), fovsweep.ErrTooManySamples)

	o = baseOptions(dir)
	o.pngName = filepath.Join("..", "escape.png")
	assert.ErrorIs(t, run(o, &bytes.Buffer{}), security.ErrPathEscape)
}

func TestParseBox_SwappedCorners(t *testing.T) {
	box, err := parseBox("1,1,1", "-1,-1,-1")
	require.NoError(t, err)
	assert.Equal(t, -1.0, box.Min.X)
	assert.Equal(t, 1.0, box.Max.Z)
}
