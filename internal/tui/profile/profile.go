// ABOUTME: Traveler profile editor as a bubbletea model
// ABOUTME: Prefilled huh form that creates or updates the passport record

package profile

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// SubmittedMsg is sent when the form is submitted. ExistingID is empty
// when the user has no profile yet and one should be created.
type SubmittedMsg struct {
	ExistingID string
	Input      client.ProfileInput
}

// CancelledMsg is sent when the user backs out of the editor
type CancelledMsg struct{}

// Model is the profile editor screen
type Model struct {
	form       *huh.Form
	existingID string
	loading    bool
	saved      bool
	errMsg     string
	width      int

	passportNumber string
	issuingCountry string
	expiryDate     string
	healthNotes    string
	frequentFlyer  bool
}

// New creates the editor in its loading state
func New() *Model {
	return &Model{loading: true}
}

// SetProfile prefills the form. A nil profile means none exists yet.
func (m *Model) SetProfile(p *client.TravelerProfile) {
	m.loading = false
	m.errMsg = ""
	if p != nil {
		m.existingID = p.ID
		m.passportNumber = p.PassportNumber
		m.issuingCountry = p.PassportIssuingCountry
		m.expiryDate = p.PassportExpiryDate
		m.healthNotes = p.HealthConditions
		m.frequentFlyer = p.FrequentTraveler
	}
	m.form = m.createForm()
}

// SetError shows a failure. Load failures replace the form; save
// failures keep the entered values.
func (m *Model) SetError(msg string) {
	m.loading = false
	m.errMsg = msg
	m.saved = false
	if m.form != nil {
		m.form = m.createForm()
	}
}

// SetSaved shows the success banner and reopens the form for further edits
func (m *Model) SetSaved(p *client.TravelerProfile) {
	m.saved = true
	m.errMsg = ""
	if p != nil {
		m.existingID = p.ID
	}
	m.form = m.createForm()
}

// InitForm returns the form's init command once the profile is loaded
func (m *Model) InitForm() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

func (m *Model) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Passport number").
				Placeholder("e.g., A1234567").
				CharLimit(20).
				Value(&m.passportNumber).
				Validate(required("Passport number is required")),
			huh.NewInput().
				Title("Issuing country").
				Placeholder("e.g., United States").
				CharLimit(100).
				Value(&m.issuingCountry).
				Validate(required("Issuing country is required")),
			huh.NewInput().
				Title("Passport expiry").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&m.expiryDate).
				Validate(validateDate),
			huh.NewText().
				Title("Health conditions").
				Placeholder("optional, shared with risk agents").
				CharLimit(500).
				Value(&m.healthNotes),
			huh.NewConfirm().
				Title("Frequent traveler?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.frequentFlyer),
		).Title(icons.Passport.String()+" Traveler profile").
			Description("Passport and health details used in assessments"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model. The form's own init runs later through
// InitForm once the profile fetch completes.
func (m *Model) Init() tea.Cmd {
	return m.InitForm()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			form, cmd := m.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.form = f
			}
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		msg := SubmittedMsg{
			ExistingID: m.existingID,
			Input: client.ProfileInput{
				PassportNumber:         strings.TrimSpace(m.passportNumber),
				PassportIssuingCountry: strings.TrimSpace(m.issuingCountry),
				PassportExpiryDate:     strings.TrimSpace(m.expiryDate),
				HealthConditions:       strings.TrimSpace(m.healthNotes),
				FrequentTraveler:       m.frequentFlyer,
			},
		}
		m.saved = false
		return m, func() tea.Msg { return msg }
	}

	return m, cmd
}

// View renders the editor
func (m *Model) View() string {
	if m.loading {
		return styles.Subtitle.Render("Loading profile...") + "\n"
	}

	var b strings.Builder
	if m.saved {
		b.WriteString(styles.SuccessBanner.Render(icons.CheckOK.String() + " Profile saved."))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + m.errMsg))
		b.WriteString("\n\n")
	}
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	return b.String()
}

func required(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("Enter a date as YYYY-MM-DD")
	}
	return nil
}
