package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	html := cmd.Flags().ShorthandLookup("h")
	require.NotNil(t, html)
	assert.Equal(t, "html", html.Name)

	for _, name := range []string{"css", "js", "unsafe-inline", "host", "port", "static-path", "static-content", "mime-types", "config", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNewRootCmd_Version(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "N/A")
}

func TestNewRootCmd_StartupErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "static path with separator", args: []string{"--static-path", "a/b"}},
		{name: "missing config file", args: []string{"--config", "/definitely/not/here.yaml"}},
		{name: "positional argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			assert.Error(t, cmd.Execute())
		})
	}
}
