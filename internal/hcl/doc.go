// Package hcl provides the HCL implementation of the config.Loader
// interface. It finds configuration files, parses and decodes them with an
// evaluation context (`env`, `mode` and a handful of string functions), and
// merges every attribute that is present over the built-in defaults.
package hcl
