// Package render turns a segmented document back into canonical
// markdown and into a standalone styled HTML page.
package render
