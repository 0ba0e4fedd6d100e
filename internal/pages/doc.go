// Package pages maps a directory convention onto a multi-page build.
//
// Every immediate subdirectory of the entry root is a page:
//
//	<entryRoot>/<name>/<name><sourceExt>   entry file, created empty if absent
//	<entryRoot>/<name>/<name>.html         optional template
//
// Discovery is split into a pure query (Discover, which only reads an fs.FS
// and reports the entry files that still need to exist) and a mutation
// (EnsureEntries, which creates those files). Resolve composes both and is
// what the application calls once per invocation.
package pages
