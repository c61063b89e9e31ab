// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tfctl/kdiff/internal/config"
)

// Palette holds the hex colors used by colored text output.
type Palette struct {
	Title   string
	Removed string
	Added   string
	Changed string
}

// DefaultPalette returns colors that read well on a dark or light terminal.
func DefaultPalette(dark bool) Palette {
	if dark {
		return Palette{Title: "#f6be00", Removed: "#ff6e6e", Added: "#5fd75f", Changed: "#00c8f0"}
	}
	return Palette{Title: "#b08800", Removed: "#af0000", Added: "#008700", Changed: "#0088a0"}
}

// ConfiguredPalette returns the colors from the colors.* config keys, falling
// back to defaults picked for the terminal background. Explicit colors are
// used as given; choosing ones that suit the theme is left to the user.
func ConfiguredPalette() Palette {
	def := DefaultPalette(lipgloss.HasDarkBackground())
	return PaletteFrom(func(key, fallback string) string {
		v, _ := config.GetString("colors."+key, fallback)
		return v
	}, def)
}

// PaletteFrom resolves each color through lookup, passing the default as the
// fallback.
func PaletteFrom(lookup func(key, fallback string) string, def Palette) Palette {
	return Palette{
		Title:   lookup("title", def.Title),
		Removed: lookup("removed", def.Removed),
		Added:   lookup("added", def.Added),
		Changed: lookup("changed", def.Changed),
	}
}
