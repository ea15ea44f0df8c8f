// ABOUTME: Admin traveler directory screen with incremental search
// ABOUTME: Lists every traveler profile with passport and health details

package travelers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
	"tripsentry/internal/tui/widgets"
)

// RefreshMsg is sent when the user requests a reload
type RefreshMsg struct{}

// BackMsg is sent when the user leaves the directory
type BackMsg struct{}

// Model is the traveler directory screen
type Model struct {
	travelers []client.TravelerProfile
	filtered  []client.TravelerProfile
	cursor    int
	search    textinput.Model
	filterOn  bool
	loading   bool
	errMsg    string
	width     int
}

// New creates the directory in its loading state
func New() *Model {
	search := textinput.New()
	search.Placeholder = "passport number or country..."
	search.CharLimit = 64
	search.Width = 34

	return &Model{
		search:  search,
		loading: true,
	}
}

// SetTravelers replaces the directory contents and clears the loading state
func (m *Model) SetTravelers(travelers []client.TravelerProfile) {
	m.travelers = travelers
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

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.filtered = m.travelers
	} else {
		m.filtered = nil
		for _, t := range m.travelers {
			haystack := strings.ToLower(t.PassportNumber + " " + t.PassportIssuingCountry)
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
		case "/":
			m.filterOn = true
			return m, m.search.Focus()
		case "r":
			return m, func() tea.Msg { return RefreshMsg{} }
		case "q", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	return m, nil
}

// View renders the directory
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.Globe.String() + " Traveler directory"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(styles.Subtitle.Render("Loading travelers..."))
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

	if len(m.travelers) == 0 {
		b.WriteString(styles.Subtitle.Render("No traveler profiles registered yet."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.filtered) == 0 {
		b.WriteString(styles.Subtitle.Render("No travelers match the filter."))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range m.filtered {
		cursor := "  "
		line := fmt.Sprintf("%s %s (%s)  expires %s",
			icons.Passport.String(),
			t.PassportNumber, t.PassportIssuingCountry, t.PassportExpiryDate)
		if t.FrequentTraveler {
			line += "  " + widgets.Badge("frequent", widgets.StatusInfo)
		}

		if i == m.cursor && !m.filterOn {
			cursor = styles.KeyStyle.Render("> ")
		}
		b.WriteString(cursor + line + "\n")

		if i == m.cursor && !m.filterOn && t.HealthConditions != "" {
			b.WriteString("    " + styles.MutedText.Render(icons.Heart.String()+" "+t.HealthConditions) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render(fmt.Sprintf("%d of %d travelers", len(m.filtered), len(m.travelers))))
	b.WriteString("\n")

	return b.String()
}
