// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional YAML file, builds the logger, the
// concrete stores and the key and signing services, and exposes them via
// the Wire struct for commands to use.
package app
