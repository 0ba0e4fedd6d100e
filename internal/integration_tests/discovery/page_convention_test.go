package integration_tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pagegrid/internal/app"
	"github.com/specialistvlad/pagegrid/internal/hcl"
	"github.com/specialistvlad/pagegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestDiscovery_HomeAndAbout exercises the canonical two-page layout: one
// page with both files present and one freshly scaffolded empty folder.
func TestDiscovery_HomeAndAbout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"src/entries/home/home.html": "<!doctype html><title>home</title>",
		"src/entries/home/home.ts":   "import './home.scss'",
		"src/entries/about/":         "",
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err, "app.Run() returned an unexpected error")

	m := testutil.DecodeManifest(t, result)

	entries := filepath.Join(result.Root, "src", "entries")
	wantEntry := map[string]string{
		"home.html":  filepath.Join(entries, "home", "home.ts"),
		"about.html": filepath.Join(entries, "about", "about.ts"),
	}
	if diff := cmp.Diff(wantEntry, m.Entry); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, m.Pages, 2)
	for _, page := range m.Pages {
		require.Len(t, page.Chunks, 1, "each page must include exactly its own bundle")
		require.Equal(t, page.Filename, page.Chunks[0])
		switch page.Filename {
		case "home.html":
			require.Equal(t, filepath.Join(entries, "home", "home.html"), page.Template)
		case "about.html":
			require.Empty(t, page.Template)
		default:
			t.Fatalf("unexpected page %q", page.Filename)
		}
	}

	testutil.AssertStubCreated(t, result, filepath.Join(entries, "about", "about.ts"))

	home, err := os.ReadFile(filepath.Join(entries, "home", "home.ts"))
	require.NoError(t, err)
	require.Equal(t, "import './home.scss'", string(home), "existing entries are left untouched")
}

// TestDiscovery_SecondRunIsIdempotent checks that running against the same
// tree twice creates nothing the second time and yields the same entry map.
func TestDiscovery_SecondRunIsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"src/entries/a/": "",
		"src/entries/b/": "",
	})

	run := func() (testutil.DecodedManifest, string) {
		out := &testutil.SafeBuffer{}
		logs := &testutil.SafeBuffer{}
		cfg, err := app.NewConfig(app.Config{
			ConfigPath: filepath.Join(root, app.DefaultConfigPath),
			LogLevel:   "info",
		})
		require.NoError(t, err)
		loader := hcl.NewLoader(hcl.WithBaseDir(root), hcl.WithEnv(map[string]string{}))
		a, err := app.NewApp(out, logs, cfg, loader)
		require.NoError(t, err)
		require.NoError(t, a.Run(t.Context()))

		var m testutil.DecodedManifest
		require.NoError(t, json.Unmarshal([]byte(out.String()), &m))
		return m, logs.String()
	}

	first, firstLogs := run()
	second, secondLogs := run()

	require.Contains(t, firstLogs, "Created empty entry file.")
	require.NotContains(t, secondLogs, "Created empty entry file.")
	require.Len(t, first.Entry, 2)
	if diff := cmp.Diff(first.Entry, second.Entry); diff != "" {
		t.Errorf("entry map changed between runs (-first +second):\n%s", diff)
	}
}

// TestDiscovery_PlainFilesAtRootAreIgnored makes sure stray files next to
// page folders never turn into pages.
func TestDiscovery_PlainFilesAtRootAreIgnored(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"src/entries/index.ts":         "",
		"src/entries/index.html":       "",
		"src/entries/contact/":         "",
		"src/entries/contact/other.ts": "",
	}, app.Config{})
	require.NoError(t, result.Err)

	m := testutil.DecodeManifest(t, result)

	ids := make([]string, 0, len(m.Entry))
	for id := range m.Entry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	require.Equal(t, []string{"contact.html"}, ids)
}
