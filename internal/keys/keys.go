// Package keys holds the key strings the UI matches against, derived from
// Bubble Tea's own key names so they cannot drift from runtime values.
//
// Single-character keys ("q", "j", "y") are written inline where used.
package keys

import tea "github.com/charmbracelet/bubbletea"

// Navigation keys
var (
	Up     = tea.KeyMsg{Type: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyMsg{Type: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyMsg{Type: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyMsg{Type: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyMsg{Type: tea.KeyHome}.String()   // "home"
	End    = tea.KeyMsg{Type: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyMsg{Type: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyMsg{Type: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter    = tea.KeyMsg{Type: tea.KeyEnter}.String()    // "enter"
	Tab      = tea.KeyMsg{Type: tea.KeyTab}.String()      // "tab"
	ShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}.String() // "shift+tab"
	Escape   = tea.KeyMsg{Type: tea.KeyEsc}.String()      // "esc"
)

// Ctrl combinations
var (
	CtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}.String() // "ctrl+c"
	CtrlY = tea.KeyMsg{Type: tea.KeyCtrlY}.String() // "ctrl+y"
)
