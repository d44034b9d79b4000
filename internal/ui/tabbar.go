package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/scroll"
)

// tabBarHeight is the top border plus the row of tabs.
const tabBarHeight = 2

const tabFPS = 60

type tabFrameMsg struct{}

// TabBarModel is the bottom navigation. It slides out of view while the
// tracker reports downward scrolling and springs back on the way up.
type TabBarModel struct {
	env     *env
	tracker *scroll.Tracker
	active  Route
	width   int

	spring    harmonica.Spring
	pos, vel  float64
	target    float64
	animating bool
}

func NewTabBarModel(e *env, tracker *scroll.Tracker) TabBarModel {
	return TabBarModel{
		env:     e,
		tracker: tracker,
		active:  RouteChats,
		width:   80,
		spring:  harmonica.NewSpring(harmonica.FPS(tabFPS), 8.0, 1.0),
	}
}

// Active is the focused tab.
func (m TabBarModel) Active() Route { return m.active }

// SetActive focuses r if it is a tab.
func (m *TabBarModel) SetActive(r Route) {
	for _, tr := range tabRoutes {
		if tr == r {
			m.active = r
			return
		}
	}
}

// Next moves focus by delta tabs, wrapping around.
func (m *TabBarModel) Next(delta int) Route {
	i := 0
	for j, r := range tabRoutes {
		if r == m.active {
			i = j
		}
	}
	n := len(tabRoutes)
	m.active = tabRoutes[((i+delta)%n+n)%n]
	return m.active
}

func (m *TabBarModel) SetWidth(w int) { m.width = w }

// Hidden reports whether the bar is fully out of view.
func (m TabBarModel) Hidden() bool {
	return m.Height() == 0
}

// Height is the number of rows currently on screen.
func (m TabBarModel) Height() int {
	return tabBarHeight - int(math.Round(min(max(m.pos, 0), tabBarHeight)))
}

// Sync points the spring at the position the tracker asks for and starts
// the frame loop if it is not already running.
func (m *TabBarModel) Sync() tea.Cmd {
	target := 0.0
	if m.tracker != nil && m.tracker.ScrollingDown() {
		target = tabBarHeight
	}
	if target == m.target && !m.animating {
		return nil
	}
	m.target = target
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/tabFPS, func(time.Time) tea.Msg {
		return tabFrameMsg{}
	})
}

func (m TabBarModel) Update(msg tea.Msg) (TabBarModel, tea.Cmd) {
	if _, ok := msg.(tabFrameMsg); !ok {
		return m, nil
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < 0.01 && math.Abs(m.vel) < 0.01 {
		m.pos, m.vel = m.target, 0
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

func (m TabBarModel) View() string {
	visible := m.Height()
	if visible == 0 {
		return ""
	}

	cells := make([]string, len(tabRoutes))
	cellWidth := max(m.width/len(tabRoutes), 1)
	for i, r := range tabRoutes {
		var label string
		if r == m.active {
			label = m.env.styles.TabActive.Render(r.Icon(true) + " " + m.env.t(r.LabelKey()))
		} else {
			label = m.env.styles.TabInactive.Render(r.Icon(false))
		}
		cells[i] = lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, label)
	}
	bar := m.env.styles.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	lines := strings.Split(bar, "\n")
	if visible < len(lines) {
		lines = lines[:visible]
	}
	return strings.Join(lines, "\n")
}
