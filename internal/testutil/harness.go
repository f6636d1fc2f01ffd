// Package testutil provides shared helpers for pagewire's integration
// tests: a thread-safe log buffer and a temp-dir harness that materializes
// a site and catalog on disk and runs the full wiring pipeline.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagewire/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a wiring pipeline run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunWiringTest writes the given files (relative paths like
// "site/home.json" or "catalog/chrome.hcl") into a temporary directory,
// then constructs the app and runs the pipeline against the site/ and
// catalog/ subdirectories. Startup panics are recovered into Err.
func RunWiringTest(t *testing.T, files map[string]string, strict bool) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	siteDir := filepath.Join(tmpDir, "site")
	catalogDir := filepath.Join(tmpDir, "catalog")
	require.NoError(t, os.MkdirAll(siteDir, 0755))
	require.NoError(t, os.MkdirAll(catalogDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		SitePath:    siteDir,
		CatalogPath: catalogDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		Strict:      strict,
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	result := &HarnessResult{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panicked: %v", r)
			}
		}()
		result.App = app.NewApp(out, appConfig)
		result.Err = result.App.Run(context.Background())
	}()
	result.Output = out.String()
	return result
}
