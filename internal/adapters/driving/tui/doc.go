// Package tui provides the interactive terminal interface for reviewing plans.
//
// Subpackages:
//   - styles: colour theme shared with the plan printer
//   - keymap: keybindings and help text
//   - review: the bubbletea model listing actionable plans
package tui
