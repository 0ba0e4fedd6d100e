// Package config defines the format-agnostic configuration model for
// pagegrid, along with the Loader interface for reading it from files.
//
// The `config.Model` is the single source of truth for the `app` and
// `manifest` packages. Concrete loaders, such as the HCL one, live in
// separate packages and only have to produce a Model.
package config
