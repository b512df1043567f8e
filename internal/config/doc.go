// Package config provides the configuration for Taggregate: which documents
// to scan and in what order, where the tag file lives, and where documents
// with injected tags are written.
//
// Configuration is loaded from a YAML file and passed explicitly to every
// command; there is no process-wide configuration state.
package config
