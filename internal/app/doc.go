// Package app wires application dependencies for the CLI.
//
// It loads Config (YAML file, then environment, then flags applied by the
// commands), builds the zap logger, and constructs the region catalog, the
// districts client and the console from it, exposing them via the Wire
// struct for commands to use.
package app
