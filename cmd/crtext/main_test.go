package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-c", "cfg.yaml",
		"--script=p.json",
		"-l", "t.lua",
		"-j", "--watch",
		"--log-level", "debug",
		"in.txt",
	}, io.Discard, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "cfg.yaml", opts.ConfigPath)
	require.Equal(t, "p.json", opts.ScriptPath)
	require.Equal(t, "t.lua", opts.LuaPath)
	require.True(t, opts.JSON)
	require.True(t, opts.Watch)
	require.Equal(t, "debug", opts.LogLevel)
	require.Equal(t, "in.txt", opts.InputPath)
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard, io.Discard)
	require.NoError(t, err)
	require.Empty(t, opts.InputPath)
	require.False(t, opts.JSON)
	require.Empty(t, opts.LogLevel)
}

func TestParseFlagsVersion(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-v"}, &out, io.Discard)
	require.ErrorIs(t, err, errExit)
	require.Contains(t, out.String(), "crtext dev")
}

func TestParseFlagsHelp(t *testing.T) {
	var errOut bytes.Buffer
	_, err := parseFlags([]string{"--help"}, io.Discard, &errOut)
	require.ErrorIs(t, err, errExit)
	require.Contains(t, errOut.String(), "Usage: crtext")
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"--log-level", "loud"}},
		{"two inputs", []string{"a.txt", "b.txt"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard, io.Discard)
			require.Error(t, err)
			require.NotErrorIs(t, err, errExit)
		})
	}
}
