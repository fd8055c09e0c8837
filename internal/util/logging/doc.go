// Package logging builds the logr.Logger used by the eksutil commands.
//
// Output always goes to stderr so stdout stays free for command results.
// Terminals get human-readable lines; pipelines get one JSON object per line.
package logging
