// Package system queries the operating system's color-scheme preference.
// Detectors are consulted once, in order, and the first one able to answer
// decides whether dark is preferred.
package system
