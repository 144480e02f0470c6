// Package main hosts the Shoebox CLI entrypoint and command graph.
//
// The Cobra-based command tree fronts the catalog operations two ways: the
// bare `shoebox` invocation starts the interactive menu shell, and dedicated
// subcommands (find, update, album, tag, overview) expose the same operations
// for scripted use. It centralizes configuration resolution, logging setup,
// and console wiring so subcommands can focus on user experience.
//
// Keep this package lean: behavior belongs in internal/operations and below;
// this layer only translates terminal invocations into operation calls.
package main
