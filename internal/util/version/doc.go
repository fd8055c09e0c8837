// Package version compares loosely formatted dotted version strings.
//
// Versions are split on "." and compared segment by segment. Numeric
// segments compare as integers, anything else compares as a string, and the
// shorter version is padded with "0" segments.
package version
