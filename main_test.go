package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("host"))
	assert.NotNil(t, serve.Flags().Lookup("port"))

	analyze, _, err := root.Find([]string{"analyze"})
	require.NoError(t, err)
	assert.Equal(t, "analyze", analyze.Name())

	assert.NotNil(t, root.Flags().Lookup("port"), "bare ytlens serves")
}

func TestAnalyzeRequiresURL(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
