// Package template defines the renderer-agnostic template contract used by
// template-backed widget bodies. The pongo subpackage provides the default
// pongo2 implementation.
package template
