package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayes-dashboard/domain"
	"bayes-dashboard/render"
	"bayes-dashboard/service"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"bayes-dashboard"}, args...))
	return out.String(), err
}

func TestPlotCommand_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beta.json")

	_, err := runApp(t, "plot", "--family", "beta", "--a", "2", "--b", "3", "--format", "json", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var spec domain.ChartSpec
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "Beta(2, 3) density", spec.Title)
	assert.Len(t, spec.X, service.SamplePoints)
	assert.Len(t, spec.Y, service.SamplePoints)
}

func TestPlotCommand_JSONToStdout(t *testing.T) {
	out, err := runApp(t, "plot", "--family", "binomial", "--n", "4", "--p", "0.5", "--format", "json")
	require.NoError(t, err)

	var spec domain.ChartSpec
	require.NoError(t, json.Unmarshal([]byte(out), &spec))
	assert.Equal(t, domain.ModeMarkers, spec.Mode)
	assert.Len(t, spec.Y, 5)
}

func TestPlotCommand_Images(t *testing.T) {
	tests := []struct {
		name     string
		renderer string
		format   string
		prefix   string
	}{
		{"gonum png", "gonum", "png", "\x89PNG"},
		{"gochart svg", "gochart", "svg", "<svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chart."+tt.format)

			_, err := runApp(t, "plot", "--family", "gamma", "--a", "3", "--b", "2",
				"--renderer", tt.renderer, "--format", tt.format, "--out", path)
			require.NoError(t, err)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(raw[:min(len(raw), 512)]), tt.prefix)
		})
	}
}

func TestPlotCommand_FailuresLeaveNoFile(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "unsupported format",
			args:    []string{"--family", "beta", "--a", "2", "--b", "3", "--format", "gif"},
			wantErr: render.ErrUnsupportedFormat,
		},
		{
			name:    "unsupported renderer",
			args:    []string{"--family", "beta", "--a", "2", "--b", "3", "--renderer", "bogus"},
			wantErr: render.ErrUnsupportedRenderer,
		},
		{
			name:    "missing parameter",
			args:    []string{"--family", "beta", "--a", "2", "--format", "json"},
			wantErr: domain.ErrInvalidParameter,
		},
		{
			name:    "out of range parameter",
			args:    []string{"--family", "binomial", "--n", "4", "--p", "1.5", "--format", "json"},
			wantErr: domain.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chart.out")

			args := append([]string{"plot"}, tt.args...)
			_, err := runApp(t, append(args, "--out", path)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no output file should be created")
		})
	}
}

func TestServeCommand_UnsupportedRenderer(t *testing.T) {
	_, err := runApp(t, "serve", "--renderer", "bogus", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrUnsupportedRenderer)
}

func TestApp_InvalidLogLevel(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "plot", "--family", "beta", "--a", "1", "--b", "1", "--format", "json")
	require.Error(t, err)
}
