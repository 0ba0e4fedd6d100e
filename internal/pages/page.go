package pages

// BundleSuffix is appended to a page name to form its bundle id and the
// filename of the generated page.
const BundleSuffix = ".html"

// Page is one discovered page folder.
type Page struct {
	Name string
	// Dir is the absolute path of the page folder.
	Dir       string
	EntryPath string
	// TemplatePath is empty when the folder has no template.
	TemplatePath string
	BundleID     string
}

// HasTemplate reports whether a template file was found for the page.
func (p Page) HasTemplate() bool {
	return p.TemplatePath != ""
}

// Directive returns the page-generation directive for p. The chunk list holds
// only p's own bundle so the generated page never pulls in another page.
func (p Page) Directive() Directive {
	return Directive{
		Filename: p.Name + BundleSuffix,
		Template: p.TemplatePath,
		Chunks:   []string{p.BundleID},
	}
}

// Directive tells the page generator to emit one HTML page. An empty
// Template means the generator should produce its default shell.
type Directive struct {
	Filename string   `json:"filename" yaml:"filename"`
	Template string   `json:"template,omitempty" yaml:"template,omitempty"`
	Chunks   []string `json:"chunks" yaml:"chunks"`
}

// Plan is the result of one discovery pass.
type Plan struct {
	Root       string
	Pages      []Page
	Entries    *EntryMap
	Directives []Directive
	// MissingEntries lists the entry files, as absolute paths, that did not
	// exist when the tree was scanned.
	MissingEntries []string
}
