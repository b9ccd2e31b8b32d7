// Package ui provides terminal color themes shared by the CLI and TUI
// presentation layers. Colors respect the NO_COLOR convention and can be
// disabled entirely with the -no-color flag.
package ui
