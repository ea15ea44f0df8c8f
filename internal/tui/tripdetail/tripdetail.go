// ABOUTME: Trip detail screen with on-demand AI risk analysis
// ABOUTME: Shows trip facts, then the full risk report once analyzed

package tripdetail

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
	"tripsentry/internal/tui/widgets"
)

// AnalyzeMsg is sent when the user requests a risk analysis
type AnalyzeMsg struct {
	TripID int
}

// BackMsg is sent when the user leaves the detail screen
type BackMsg struct{}

// Model is the trip detail screen
type Model struct {
	trip        *client.Trip
	report      *client.RiskReport
	analyzing   bool
	loading     bool
	errMsg      string
	analysisErr string
	width       int
}

// New creates the detail screen in its loading state
func New() *Model {
	return &Model{loading: true}
}

// SetTrip fills in the trip facts and clears the loading state
func (m *Model) SetTrip(trip *client.Trip) {
	m.trip = trip
	m.loading = false
	m.errMsg = ""
}

// SetError shows a load failure
func (m *Model) SetError(msg string) {
	m.loading = false
	m.errMsg = msg
}

// SetReport installs a completed risk analysis
func (m *Model) SetReport(report *client.RiskReport) {
	m.report = report
	m.analyzing = false
	m.analysisErr = ""
}

// SetAnalysisError shows an analysis failure without losing the trip view
func (m *Model) SetAnalysisError(msg string) {
	m.analyzing = false
	m.analysisErr = msg
}

// Analyzing reports whether an analysis request is in flight
func (m *Model) Analyzing() bool {
	return m.analyzing
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			// Ignore repeat presses while a request is in flight
			if m.trip != nil && !m.analyzing {
				m.analyzing = true
				m.analysisErr = ""
				id := m.trip.ID
				return m, func() tea.Msg { return AnalyzeMsg{TripID: id} }
			}
		case "q", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	return m, nil
}

// View renders the detail screen
func (m *Model) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(styles.Subtitle.Render("Loading trip..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("esc to go back"))
		b.WriteString("\n")
		return b.String()
	}

	t := m.trip

	b.WriteString(styles.Title.Render(fmt.Sprintf("%s %s, %s", icons.Pin.String(), t.DestinationCity, t.DestinationCountry)))
	b.WriteString("\n\n")

	b.WriteString(renderFact(icons.Calendar, "Dates", fmt.Sprintf("%s → %s", t.StartDate, t.EndDate)))
	b.WriteString(renderFact(icons.Notes, "Purpose", t.Purpose))
	b.WriteString(renderFact(icons.Hotel, "Accommodation", t.Accommodation))
	b.WriteString(renderFact(icons.Plane, "Transport", t.TransportMode))
	b.WriteString("\n")

	switch {
	case m.analyzing:
		b.WriteString(styles.Subtitle.Render(icons.Analyze.String() + " Analyzing risk... this can take a minute."))
		b.WriteString("\n")
	case m.analysisErr != "":
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + m.analysisErr))
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("a to try again"))
		b.WriteString("\n")
	case m.report != nil:
		b.WriteString(m.renderReport())
	default:
		b.WriteString(styles.Help.Render("Press a to run an AI risk analysis for this trip."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFact(icon icons.Icon, key, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("  %s %s %s\n",
		icon.String(),
		styles.KeyStyle.Render(key+":"),
		styles.ValueStyle.Render(value))
}

func (m *Model) renderReport() string {
	var b strings.Builder
	a := &m.report.Analysis

	b.WriteString(styles.Title.Render(icons.Shield.String() + " Risk assessment"))
	b.WriteString("  ")
	b.WriteString(widgets.RiskBadge(a.RiskLevel))
	b.WriteString("\n\n")

	barWidth := m.width - 20
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	b.WriteString(fmt.Sprintf("  %s %s %.0f/100\n\n",
		styles.KeyStyle.Render("Overall:"),
		styles.ScoreBar(a.OverallRiskScore, barWidth),
		a.OverallRiskScore))

	if len(a.RiskScoreBreakdown) > 0 {
		b.WriteString(styles.Subtitle.Render("Breakdown"))
		b.WriteString("\n")
		for _, cat := range sortedKeys(a.RiskScoreBreakdown) {
			score := a.RiskScoreBreakdown[cat]
			b.WriteString(fmt.Sprintf("  %-14s %s %3.0f\n",
				cat, styles.ScoreBar(score, 20), score))
		}
		b.WriteString("\n")
	}

	if len(a.TopRisks) > 0 {
		b.WriteString(styles.Subtitle.Render("Top risks"))
		b.WriteString("\n")
		for _, risk := range a.TopRisks {
			b.WriteString("  " + icons.Warning.String() + " " + risk + "\n")
		}
		b.WriteString("\n")
	}

	if len(a.AgentReports) > 0 {
		b.WriteString(styles.Subtitle.Render("Specialist agents"))
		b.WriteString("\n")
		b.WriteString(m.renderAgentBlocks(a))
		b.WriteString("\n")
	}

	if len(a.ConsolidatedRecommendations) > 0 {
		b.WriteString(styles.Subtitle.Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range a.ConsolidatedRecommendations {
			b.WriteString("  " + icons.CheckOK.String() + " " + rec + "\n")
		}
		b.WriteString("\n")
	}

	if a.ExecutiveSummary != "" {
		b.WriteString(styles.Panel.Render(styles.Subtitle.Render("Executive summary") + "\n" + a.ExecutiveSummary))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAgentBlocks lays out one score card per agent, two per row
func (m *Model) renderAgentBlocks(a *client.RiskAnalysis) string {
	config := widgets.DefaultScoreBlockConfig()

	var blocks []string
	for _, name := range sortedAgentKeys(a.AgentReports) {
		report := a.AgentReports[name]
		title := report.AgentName
		if title == "" {
			title = name
		}
		blocks = append(blocks, widgets.ScoreBlock(
			icons.Gauge, title, report.RiskScore, report.RiskLevel+" risk", config))
	}

	var rows []string
	for i := 0; i < len(blocks); i += 2 {
		end := i + 2
		if end > len(blocks) {
			end = len(blocks)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAgentKeys(m map[string]client.AgentReport) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
