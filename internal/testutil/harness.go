package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/pagegrid/internal/app"
	"github.com/specialistvlad/pagegrid/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// WriteTree materializes files below root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Root      string
	Stdout    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes files into a fresh project directory and runs the app once
// against it. Unless cfg says otherwise, the config file is
// <root>/pagegrid.hcl, defaults are anchored at the project directory, and
// the environment seen by the config is empty.
func RunApp(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	WriteTree(t, root, files)

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = filepath.Join(root, app.DefaultConfigPath)
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}
	loader := hcl.NewLoader(
		hcl.WithBaseDir(root),
		hcl.WithEnv(map[string]string{}),
		hcl.WithMode(appConfig.Mode),
	)

	result := &HarnessResult{Root: root}
	testApp, err := app.NewApp(stdout, logs, appConfig, loader)
	if err == nil {
		result.App = testApp
		err = testApp.Run(context.Background())
	}
	result.Err = err
	result.Stdout = stdout.String()
	result.LogOutput = logs.String()

	if os.Getenv("PAGEGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
