// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the aoc CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, following standard terminal conventions.
var (
	ColorWarning = lipgloss.Color("11") // yellow
	ColorError   = lipgloss.Color("9")  // red
	ColorSuccess = lipgloss.Color("10") // green
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Bold      lipgloss.Style
	Underline lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}{
	Bold:      lipgloss.NewStyle().Bold(true),
	Underline: lipgloss.NewStyle().Underline(true),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
}

// Icon marks a line of CLI output.
type Icon string

const (
	IconCalendar Icon = "📆"
	IconStar     Icon = "⭐"
)

// Render returns the icon as a string.
func (i Icon) Render() string {
	return string(i)
}

// Warnf prints a yellow warning line to stderr. The "Warning:" prefix is
// rendered bold.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		Styles.Warning.Bold(true).Render("Warning:"),
		Styles.Warning.Render(fmt.Sprintf(format, args...)))
}
