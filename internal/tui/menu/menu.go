// ABOUTME: Home menu for authenticated users
// ABOUTME: Lists the app's screens with admin-only entries gated by role

package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// Item identifies a menu destination
type Item int

const (
	ItemTrips Item = iota
	ItemNewTrip
	ItemProfile
	ItemTravelers
	ItemLogout
)

// SelectedMsg is sent when the user picks a menu entry
type SelectedMsg struct {
	Item Item
}

// CancelledMsg is sent when the user backs out of the menu
type CancelledMsg struct{}

type option struct {
	label   string
	icon    icons.Icon
	value   Item
	enabled bool
}

// Menu is the home menu model
type Menu struct {
	options []option
	cursor  int
	width   int
}

// New creates the home menu. Admin-only entries render disabled for travelers.
func New(isAdmin bool) *Menu {
	return &Menu{
		options: []option{
			{label: "My trips", icon: icons.Plane, value: ItemTrips, enabled: true},
			{label: "New trip", icon: icons.Plus, value: ItemNewTrip, enabled: true},
			{label: "Traveler profile", icon: icons.Passport, value: ItemProfile, enabled: true},
			{label: "Traveler directory", icon: icons.Globe, value: ItemTravelers, enabled: isAdmin},
			{label: "Log out", icon: icons.Quit, value: ItemLogout, enabled: true},
		},
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			opt := m.options[m.cursor]
			if !opt.enabled {
				return m, nil
			}
			return m, func() tea.Msg { return SelectedMsg{Item: opt.value} }
		case "q", "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	return m, nil
}

// View renders the menu
func (m *Menu) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Where to?"))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		label := opt.icon.String() + " " + opt.label

		switch {
		case !opt.enabled:
			label = styles.MutedText.Render(label + " (admin only)")
		case i == m.cursor:
			cursor = styles.KeyStyle.Render("> ")
			label = styles.ValueStyle.Render(label)
		}

		b.WriteString(cursor + label + "\n")
	}

	return b.String()
}
