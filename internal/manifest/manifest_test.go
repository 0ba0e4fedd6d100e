package manifest

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePlan(t *testing.T, root string) *pages.Plan {
	t.Helper()

	home := pages.Page{
		Name:         "home",
		Dir:          filepath.Join(root, "home"),
		EntryPath:    filepath.Join(root, "home", "home.ts"),
		TemplatePath: filepath.Join(root, "home", "home.html"),
		BundleID:     "home.html",
	}
	about := pages.Page{
		Name:      "about",
		Dir:       filepath.Join(root, "about"),
		EntryPath: filepath.Join(root, "about", "about.ts"),
		BundleID:  "about.html",
	}

	plan := &pages.Plan{Root: root, Entries: pages.NewEntryMap()}
	for _, p := range []pages.Page{about, home} {
		require.NoError(t, plan.Entries.Add(p.BundleID, p.EntryPath))
		plan.Pages = append(plan.Pages, p)
		plan.Directives = append(plan.Directives, p.Directive())
	}
	return plan
}

func TestAssemble_Production(t *testing.T) {
	t.Parallel()

	model := config.Default("/site")
	plan := samplePlan(t, model.Build.EntryRoot)

	m := Assemble(model, Production, plan)

	assert.Equal(t, Production, m.Mode)
	assert.Same(t, plan.Entries, m.Entry)
	assert.Equal(t, filepath.Join("/site", "dist"), m.Output.Path)
	assert.False(t, m.Styles.SourceMap)
	assert.Equal(t, "[name].css", m.Styles.Filename)
	assert.Equal(t, "[id].css", m.Styles.ChunkFilename)
	assert.Empty(t, m.DevServer.Watch)

	want := []CopyPattern{{From: filepath.Join("/site", "res"), To: filepath.Join("/site", "dist", "res")}}
	if diff := cmp.Diff(want, m.Copy); diff != "" {
		t.Errorf("copy mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(plan.Directives, m.Pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_Development(t *testing.T) {
	t.Parallel()

	model := config.Default("/site")
	model.DevServer.Proxy = map[string]string{"**": "http://localhost:8080"}

	m := Assemble(model, Development, samplePlan(t, model.Build.EntryRoot))

	assert.True(t, m.Styles.SourceMap)
	assert.Empty(t, m.Copy)
	assert.Equal(t, []string{filepath.Join("/site", "src", "**", "*.html")}, m.DevServer.Watch)
	assert.Equal(t, 9000, m.DevServer.Port)
	assert.True(t, m.DevServer.Hot)
	assert.Equal(t, "http://localhost:8080", m.DevServer.Proxy["**"])
}

func TestAssemble_EmptyPlan(t *testing.T) {
	t.Parallel()

	m := Assemble(config.Default("/site"), Production, &pages.Plan{})
	require.NotNil(t, m.Entry)

	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf, JSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]any{}, decoded["entry"])
	assert.Equal(t, []any{}, decoded["pages"])
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	model := config.Default("/site")
	plan := samplePlan(t, model.Build.EntryRoot)
	buf := &bytes.Buffer{}
	require.NoError(t, Assemble(model, Production, plan).Encode(buf, JSON))

	var decoded struct {
		Mode  string            `json:"mode"`
		Entry map[string]string `json:"entry"`
		Pages []struct {
			Filename string   `json:"filename"`
			Template string   `json:"template"`
			Chunks   []string `json:"chunks"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "production", decoded.Mode)
	assert.Equal(t, plan.Entries.Map(), decoded.Entry)
	require.Len(t, decoded.Pages, 2)
	assert.Equal(t, "about.html", decoded.Pages[0].Filename)
	assert.Empty(t, decoded.Pages[0].Template)
	assert.Equal(t, []string{"home.html"}, decoded.Pages[1].Chunks)

	// Pages without a template omit the key entirely.
	assert.NotContains(t, buf.String(), `"template": ""`)
	// Entry order follows discovery order.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"about.html":`)), bytes.Index(buf.Bytes(), []byte(`"home.html":`)))
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	model := config.Default("/site")
	plan := samplePlan(t, model.Build.EntryRoot)
	buf := &bytes.Buffer{}
	require.NoError(t, Assemble(model, Development, plan).Encode(buf, YAML))

	var decoded struct {
		Mode      string            `yaml:"mode"`
		Entry     map[string]string `yaml:"entry"`
		DevServer struct {
			Port  int      `yaml:"port"`
			Watch []string `yaml:"watch"`
		} `yaml:"devServer"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "development", decoded.Mode)
	assert.Equal(t, plan.Entries.Map(), decoded.Entry)
	assert.Equal(t, 9000, decoded.DevServer.Port)
	assert.Len(t, decoded.DevServer.Watch, 1)
}

func TestParseModeAndFormat(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("Development")
	require.NoError(t, err)
	assert.Equal(t, Development, m)
	_, err = ParseMode("staging")
	require.Error(t, err)

	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = ParseFormat("toml")
	require.Error(t, err)

	require.Error(t, (&Manifest{}).Encode(&bytes.Buffer{}, Format("toml")))
}
