// Package application wires the resolved harness settings, the logger and the
// browser driver together. It keeps the main package focused on CLI parsing
// and orchestration.
package application
