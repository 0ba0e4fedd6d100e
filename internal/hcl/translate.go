package hcl

import (
	"maps"

	"github.com/specialistvlad/pagegrid/internal/config"
)

// merge copies every attribute present in root onto model. Relative paths
// are anchored at dir, the directory of the file they came from.
func merge(model *config.Model, root *fileRoot, dir string) {
	if b := root.Build; b != nil {
		setPath(&model.Build.EntryRoot, b.EntryRoot, dir)
		setPath(&model.Build.SourceDir, b.SourceDir, dir)
		setPath(&model.Build.DistDir, b.DistDir, dir)
		setPath(&model.Build.ResDir, b.ResDir, dir)
		if b.SourceExtension != nil {
			model.Build.SourceExtension = *b.SourceExtension
		}
		if b.TemplateExtension != nil {
			model.Build.TemplateExtension = *b.TemplateExtension
		}
		if b.ResolveExtensions != nil {
			model.Build.ResolveExtensions = append([]string{}, (*b.ResolveExtensions)...)
		}
	}

	if d := root.DevServer; d != nil {
		if d.Port != nil {
			model.DevServer.Port = *d.Port
		}
		if d.Hot != nil {
			model.DevServer.Hot = *d.Hot
		}
		if d.Proxy != nil {
			model.DevServer.Proxy = maps.Clone(*d.Proxy)
			if model.DevServer.Proxy == nil {
				model.DevServer.Proxy = map[string]string{}
			}
		}
	}
}

func setPath(dst *string, src *string, dir string) {
	if src == nil {
		return
	}
	*dst = config.ResolvePath(dir, *src)
}
