package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A syntactically broken manifest makes app.NewApp panic during
	// loading; run() must recover it into a clean error.
	tempDir := t.TempDir()
	catalogDir := filepath.Join(tempDir, "catalog")
	siteDir := filepath.Join(tempDir, "site")
	require.NoError(t, os.Mkdir(catalogDir, 0755))
	require.NoError(t, os.Mkdir(siteDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(catalogDir, "broken.hcl"),
		[]byte(`feature "X" { provides_actions = [`),
		0600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(siteDir, "home.json"),
		[]byte(`{"id": "home", "sections": []}`),
		0600,
	))

	out := &bytes.Buffer{}
	args := []string{"--catalog-path", catalogDir, siteDir}

	runErr := run(context.Background(), out, args)

	require.Error(t, runErr)
	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"),
		"the error should indicate a recovered panic, got: %s", errStr)
	require.True(t, strings.Contains(errStr, "failed to"),
		"the error should carry the underlying load failure, got: %s", errStr)
}

func TestRun_HelpExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, nil))
	require.Contains(t, out.String(), "pagewire")
}
