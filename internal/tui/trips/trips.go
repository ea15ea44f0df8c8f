// ABOUTME: Trip list screen with incremental search
// ABOUTME: Cursor-driven list over the traveler's trips with loading and error states

package trips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// OpenMsg is sent when the user opens a trip
type OpenMsg struct {
	ID int
}

// NewMsg is sent when the user wants to plan a new trip
type NewMsg struct{}

// RefreshMsg is sent when the user requests a reload
type RefreshMsg struct{}

// BackMsg is sent when the user leaves the trip list
type BackMsg struct{}

// Model is the trip list screen
type Model struct {
	trips    []client.Trip
	filtered []client.Trip
	cursor   int
	search   textinput.Model
	filterOn bool
	loading  bool
	errMsg   string
	width    int
}

// New creates the trip list in its loading state
func New() *Model {
	search := textinput.New()
	search.Placeholder = "destination..."
	search.CharLimit = 64
	search.Width = 30

	return &Model{
		search:  search,
		loading: true,
	}
}

// SetTrips replaces the list contents and clears the loading state
func (m *Model) SetTrips(trips []client.Trip) {
	m.trips = trips
	m.loading = false
	m.errMsg = ""
	m.applyFilter()
}

// SetError shows a load failure with a retry hint
func (m *Model) SetError(msg string) {
	m.loading = false
	m.errMsg = msg
}

// SetLoading puts the screen back into its loading state
func (m *Model) SetLoading() {
	m.loading = true
	m.errMsg = ""
}

// applyFilter rebuilds the filtered slice from the search query
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.filtered = m.trips
	} else {
		m.filtered = nil
		for _, t := range m.trips {
			haystack := strings.ToLower(t.DestinationCountry + " " + t.DestinationCity)
			if strings.Contains(haystack, query) {
				m.filtered = append(m.filtered, t)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filterOn {
			switch msg.String() {
			case "enter", "esc":
				m.filterOn = false
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "enter":
			if m.errMsg == "" && m.cursor < len(m.filtered) {
				id := m.filtered[m.cursor].ID
				return m, func() tea.Msg { return OpenMsg{ID: id} }
			}
		case "/":
			m.filterOn = true
			return m, m.search.Focus()
		case "n":
			return m, func() tea.Msg { return NewMsg{} }
		case "r":
			return m, func() tea.Msg { return RefreshMsg{} }
		case "q", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	return m, nil
}

// View renders the trip list
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.Plane.String() + " My trips"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(styles.Subtitle.Render("Loading trips..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("r to retry, esc to go back"))
		b.WriteString("\n")
		return b.String()
	}

	if m.filterOn || m.search.Value() != "" {
		b.WriteString(styles.KeyStyle.Render(icons.Search.String()+" Filter: ") + m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.trips) == 0 {
		b.WriteString(styles.Subtitle.Render("No trips yet. Press n to plan your first trip."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.filtered) == 0 {
		b.WriteString(styles.Subtitle.Render("No trips match the filter."))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range m.filtered {
		cursor := "  "
		line := fmt.Sprintf("%s %s, %s  %s %s → %s",
			icons.Pin.String(),
			t.DestinationCity, t.DestinationCountry,
			icons.Calendar.String(), t.StartDate, t.EndDate)
		if t.Purpose != "" {
			line += "  " + styles.MutedText.Render("("+t.Purpose+")")
		}

		if i == m.cursor && !m.filterOn {
			cursor = styles.KeyStyle.Render("> ")
			line = styles.ValueStyle.Render(line)
		}

		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render(fmt.Sprintf("%d of %d trips", len(m.filtered), len(m.trips))))
	b.WriteString("\n")

	return b.String()
}
