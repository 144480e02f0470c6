// Package operations implements the user-facing catalog features.
//
// Each operation is one independent load, act, optional save, report
// sequence: nothing is cached between operations and every mutation rewrites
// the affected document in full. Operations talk to the outside world through
// exactly two boundaries: the Console interface (prompt for a line, print a
// line) and the document store. That keeps the interactive shell and the
// non-interactive subcommands thin, swappable front ends over the same
// behavior.
package operations
