// Package model defines the core data structures for darktheme.
package model
