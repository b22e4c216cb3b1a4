// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Styles groups every lipgloss style the CLI prints with.
type Styles struct {
	Prompt  lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// newStyles returns styles tuned for the detected terminal mode.
func newStyles(mode TerminalMode) Styles {
	// Darker shades on light backgrounds, brighter ones on dark.
	primary, success, failure, muted, border := "39", "46", "196", "245", "240"
	if mode == TerminalModeLight {
		primary, success, failure, muted, border = "4", "2", "1", "240", "8"
	}

	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(primary)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(failure)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(primary)).
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(border)),
	}
}
