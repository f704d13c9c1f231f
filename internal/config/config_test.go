package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/region"
	"pdf-stitcher/internal/stitch"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stitch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8085", cfg.Addr)
	assert.Equal(t, region.DefaultSpec, cfg.Region)

	e, err := cfg.Extractor()
	require.NoError(t, err)
	assert.Equal(t, region.OffsetFlip, e.Mode)
	assert.False(t, e.Cropped)
	assert.Nil(t, e.FitToPage)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
addr: ":9000"
mode: simple
cropped: true
fitToPage: true
region:
  x: 10
  y: 20
  w: 100
  h: 50
  offsetX: 0
  offsetY: 0
layout:
  pageWidth: 595
  pageHeight: 842
  cellWidth: 100
  cellHeight: 50
  columns: 0
skipUnreadable: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, region.Spec{OriginX: 10, OriginY: 20, Width: 100, Height: 50}, cfg.Region)
	assert.Equal(t, 5, cfg.Layout.ColumnCount())

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, stitch.SkipUnreadable, opts.Policy)
	assert.Equal(t, region.SimpleCrop, opts.Extractor.Mode)
	require.NotNil(t, opts.Extractor.FitToPage)
	assert.Equal(t, layout.A4Width, opts.Extractor.FitToPage.Width)
}

func TestLoadDerivesLayout(t *testing.T) {
	cfg, err := Load(writeFile(t, "cropped: true\nfitToPage: true\n"))
	require.NoError(t, err)
	assert.Equal(t, layout.OnePerPage(layout.A4Width, layout.A4Height), cfg.Layout)
	assert.Equal(t, 1, cfg.Layout.ColumnCount())

	placements, pages, err := layout.Plan(cfg.Layout, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.InDelta(t, layout.A4Width, placements[0].Rect.Width(), 1e-9)
	assert.InDelta(t, layout.A4Height, placements[0].Rect.Height(), 1e-9)

	cfg, err = Load(writeFile(t, "region: {x: 10, y: 20, w: 80, h: 40}\n"))
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Layout.CellWidth)
	assert.Equal(t, 40.0, cfg.Layout.CellHeight)
	assert.Equal(t, 5, cfg.Layout.Columns)

	cfg, err = Load(writeFile(t, "cropped: true\nfitToPage: true\nlayout: {pageWidth: 595, pageHeight: 842, cellWidth: 100, cellHeight: 100, columns: 2}\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Layout.ColumnCount())
	assert.Equal(t, 100.0, cfg.Layout.CellWidth)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STITCH_ADDR", ":7000")
	t.Setenv("STITCH_LOG_LEVEL", "debug")
	t.Setenv("STITCH_MAX_UPLOAD_MB", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "debug", cfg.Logger().GetLevel().String())
	assert.Equal(t, 8, cfg.MaxUploadMB)

	t.Setenv("STITCH_MAX_UPLOAD_MB", "lots")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero width":     "region: {x: 1, y: 1, w: 0, h: 5}\n",
		"unknown mode":   "mode: diagonal\n",
		"fit uncropped":  "fitToPage: true\n",
		"bad layout":     "layout: {pageWidth: 595, pageHeight: 842, cellWidth: 0, cellHeight: 10}\n",
		"bad level":      "logLevel: loud\n",
		"unknown field":  "colour: blue\n",
		"no upload room": "maxUploadMB: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
