package hcl

// Attributes are pointers so that an attribute left out of a file can be told
// apart from one set to its zero value; only present attributes are merged.

// fileRoot is the top-level structure of a pagegrid configuration file.
type fileRoot struct {
	Build     *buildBlock     `hcl:"build,block"`
	DevServer *devServerBlock `hcl:"dev_server,block"`
}

type buildBlock struct {
	EntryRoot         *string   `hcl:"entry_root,optional"`
	SourceDir         *string   `hcl:"source_dir,optional"`
	DistDir           *string   `hcl:"dist_dir,optional"`
	ResDir            *string   `hcl:"res_dir,optional"`
	SourceExtension   *string   `hcl:"source_extension,optional"`
	TemplateExtension *string   `hcl:"template_extension,optional"`
	ResolveExtensions *[]string `hcl:"resolve_extensions,optional"`
}

type devServerBlock struct {
	Port  *int               `hcl:"port,optional"`
	Hot   *bool              `hcl:"hot,optional"`
	Proxy *map[string]string `hcl:"proxy,optional"`
}
