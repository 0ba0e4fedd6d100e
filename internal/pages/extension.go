package pages

import "strings"

// ReplaceExtension replaces the final dot-delimited suffix of name with ext.
// When name has no dot, ext is appended. Only the last suffix is affected, so
// "a.b.c" with ".x" gives "a.b.x".
func ReplaceExtension(name, ext string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return name + ext
	}
	return name[:i] + ext
}
