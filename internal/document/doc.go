// Package document models the page the theme is applied to: a root element
// carrying presentation attributes and the clickable elements bound to it.
package document
