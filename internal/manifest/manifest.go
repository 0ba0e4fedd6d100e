// Package manifest assembles the multi-page build description handed to the
// bundler: the entry map, one page directive per page, output location,
// style extraction naming, static asset copying and dev server settings.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/pages"
)

// Mode selects between a development and a production build.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Development, Production:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode %q: must be 'development' or 'production'", s)
}

// Manifest is the complete build description for one invocation.
type Manifest struct {
	Mode      Mode              `json:"mode" yaml:"mode"`
	Entry     *pages.EntryMap   `json:"entry" yaml:"entry"`
	Output    Output            `json:"output" yaml:"output"`
	Resolve   Resolve           `json:"resolve" yaml:"resolve"`
	Pages     []pages.Directive `json:"pages" yaml:"pages"`
	Styles    Styles            `json:"styles" yaml:"styles"`
	Copy      []CopyPattern     `json:"copy,omitempty" yaml:"copy,omitempty"`
	DevServer DevServer         `json:"devServer" yaml:"devServer"`
}

type Output struct {
	Path string `json:"path" yaml:"path"`
}

type Resolve struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// Styles names the stylesheets extracted from each page bundle.
type Styles struct {
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
	SourceMap     bool   `json:"sourceMap" yaml:"sourceMap"`
}

// CopyPattern copies a directory verbatim into the output.
type CopyPattern struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type DevServer struct {
	Hot   bool              `json:"hot" yaml:"hot"`
	Port  int               `json:"port" yaml:"port"`
	Proxy map[string]string `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	// Watch holds globs whose changes should trigger a full page reload.
	Watch []string `json:"watch,omitempty" yaml:"watch,omitempty"`
}

// Assemble builds the manifest for plan under model. Static assets are only
// copied for production builds; source maps and template watching are only
// enabled for development builds.
func Assemble(model *config.Model, mode Mode, plan *pages.Plan) *Manifest {
	m := &Manifest{
		Mode:    mode,
		Entry:   plan.Entries,
		Output:  Output{Path: model.Build.DistDir},
		Resolve: Resolve{Extensions: append([]string{}, model.Build.ResolveExtensions...)},
		Pages:   append([]pages.Directive{}, plan.Directives...),
		Styles: Styles{
			Filename:      "[name].css",
			ChunkFilename: "[id].css",
			SourceMap:     mode == Development,
		},
		DevServer: DevServer{
			Hot:  model.DevServer.Hot,
			Port: model.DevServer.Port,
		},
	}
	if m.Entry == nil {
		m.Entry = pages.NewEntryMap()
	}
	if len(model.DevServer.Proxy) > 0 {
		m.DevServer.Proxy = model.DevServer.Proxy
	}

	switch mode {
	case Development:
		m.DevServer.Watch = []string{
			filepath.Join(model.Build.SourceDir, "**", "*"+model.Build.TemplateExtension),
		}
	case Production:
		if model.Build.ResDir != "" {
			m.Copy = []CopyPattern{{
				From: model.Build.ResDir,
				To:   filepath.Join(model.Build.DistDir, filepath.Base(model.Build.ResDir)),
			}}
		}
	}
	return m
}
