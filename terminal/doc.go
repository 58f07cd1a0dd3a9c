// Package terminal resolves the color capability of the hosting terminal and restores it after a
// crash.
//
// Drawing goes through tcell; this package only prepares the environment tcell reads at screen
// creation and emits the raw reset sequences when the screen cannot be finalized normally.
package terminal
