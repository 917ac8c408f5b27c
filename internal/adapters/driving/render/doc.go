// Package render prints plans, apply summaries and journal entries for an operator.
//
// Output is coloured with lipgloss when the destination is a terminal and
// plain otherwise, so piped output stays free of escape codes.
package render
