package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"etlcore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCmdRoundTrip(t *testing.T) {
	cfg = config.DefaultConfig()
	logger = zap.NewNop()
	defer func() { cfg = nil; logger = nil }()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, os.WriteFile(in, []byte("ID,Nom\n1,martin\n"), 0o644))

	normalizeIn = in
	normalizeOut = out
	normalizeDataset = "current"
	defer func() { normalizeIn, normalizeOut, normalizeDataset = "", "", "" }()

	require.NoError(t, normalizeCmd.RunE(normalizeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "MARTIN")
}
