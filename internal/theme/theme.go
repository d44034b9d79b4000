// Package theme holds the light and dark colour tables.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scheme is a concrete colour scheme.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

func (s Scheme) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Preference is what the user picked. System follows the terminal.
type Preference string

const (
	PreferenceSystem Preference = "system"
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
)

// ParsePreference accepts "system", "light" or "dark" in any case. Anything
// else falls back to system.
func ParsePreference(s string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case PreferenceLight:
		return PreferenceLight, true
	case PreferenceDark:
		return PreferenceDark, true
	case PreferenceSystem:
		return PreferenceSystem, true
	default:
		return PreferenceSystem, false
	}
}

// Next cycles light -> dark -> system -> light. Used by the drawer switcher.
func (p Preference) Next() Preference {
	switch p {
	case PreferenceLight:
		return PreferenceDark
	case PreferenceDark:
		return PreferenceSystem
	default:
		return PreferenceLight
	}
}

// Palette is a complete colour table.
type Palette struct {
	Background           lipgloss.Color
	OnBackground         lipgloss.Color
	PrimaryContainer     lipgloss.Color
	OnPrimaryContainer   lipgloss.Color
	SecondaryContainer   lipgloss.Color
	OnSecondaryContainer lipgloss.Color
	Primary              lipgloss.Color
	OnPrimary            lipgloss.Color
	Secondary            lipgloss.Color
	OnSecondary          lipgloss.Color
	Sub                  lipgloss.Color
	Line                 lipgloss.Color
	Unread               lipgloss.Color
	Error                lipgloss.Color
}

var palettes = map[Scheme]Palette{
	Light: {
		Background:           "#FFFFFF",
		OnBackground:         "#000000",
		PrimaryContainer:     "#F9FAFE",
		OnPrimaryContainer:   "#000000",
		SecondaryContainer:   "#E9EBF0",
		OnSecondaryContainer: "#000000",
		Primary:              "#007CBA",
		OnPrimary:            "#FFFFFF",
		Secondary:            "#C71585",
		OnSecondary:          "#FFFFFF",
		Sub:                  "#808080",
		Line:                 "#D1D5DB",
		Unread:               "#EF4444",
		Error:                "#B91C1C",
	},
	Dark: {
		Background:           "#1E1E2D",
		OnBackground:         "#FFFFFF",
		PrimaryContainer:     "#33334A",
		OnPrimaryContainer:   "#FFFFFF",
		SecondaryContainer:   "#2A2A3D",
		OnSecondaryContainer: "#FFFFFF",
		Primary:              "#007CBA",
		OnPrimary:            "#FFFFFF",
		Secondary:            "#C71585",
		OnSecondary:          "#FFFFFF",
		Sub:                  "#D3D3D3",
		Line:                 "#000000",
		Unread:               "#EF4444",
		Error:                "#F87171",
	},
}

// For returns the palette for s. Unknown schemes get the light table.
func For(s Scheme) Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return palettes[Light]
}

// Resolve turns a preference into a scheme. systemDark is only consulted for
// PreferenceSystem.
func Resolve(p Preference, systemDark bool) Scheme {
	switch p {
	case PreferenceLight:
		return Light
	case PreferenceDark:
		return Dark
	default:
		if systemDark {
			return Dark
		}
		return Light
	}
}
