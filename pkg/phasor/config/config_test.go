package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/phasor-go/pkg/phasor"
	"github.com/ukaji3/phasor-go/pkg/phasor/diagram"
	"github.com/ukaji3/phasor-go/pkg/phasor/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phasor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "fail", cfg.Extract.InvalidAngles)
	assert.Equal(t, 12, cfg.Extract.PreviewRows)
	assert.Equal(t, int64(phasor.DefaultMaxBytes), cfg.Extract.MaxBytes)
	assert.Equal(t, render.DefaultStyle(), cfg.Style)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, cfg.Extract.MaxBytes, cfg.Server.MaxUploadBytes)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
extract:
  invalid_angles: degrade
  preview_rows: -1
style:
  size: 600
  title: "Phasor diagram"
  arc_color: "#aa0000"
server:
  addr: "127.0.0.1:9000"
  max_upload_bytes: 1048576
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Style.Size)
	assert.Equal(t, "Phasor diagram", cfg.Style.Title)
	assert.Equal(t, "#aa0000", cfg.Style.ArcColor)
	assert.Equal(t, render.DefaultStyle().VoltageColor, cfg.Style.VoltageColor)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, int64(1048576), cfg.Server.MaxUploadBytes)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, diagram.PolicyDegrade, opts.Policy)
	assert.Equal(t, -1, opts.PreviewRows)
}

func TestLoadFileInvalid(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "extract:\n  invalid_angles: ignore\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "style: [unclosed\n"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
