// ABOUTME: Account registration screen as a bubbletea model
// ABOUTME: Two-group huh form for credentials plus optional traveler details

package register

import (
	"errors"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// SubmittedMsg is sent when the registration form is submitted
type SubmittedMsg struct {
	Input client.RegisterInput
}

// CancelledMsg is sent when the user backs out of registration
type CancelledMsg struct{}

// Register is the registration screen model
type Register struct {
	form   *huh.Form
	errMsg string
	width  int

	username    string
	email       string
	password    string
	confirm     string
	role        string
	nationality string
	department  string
	jobTitle    string
}

var roleOptions = []huh.Option[string]{
	huh.NewOption("Traveler", client.RoleTraveler),
	huh.NewOption("HR administrator", client.RoleAdmin),
}

// New creates a fresh registration form
func New() *Register {
	r := &Register{role: client.RoleTraveler}
	r.form = r.createForm()
	return r
}

func (r *Register) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("pick a username").
				CharLimit(150).
				Value(&r.username).
				Validate(required("Username is required")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				CharLimit(254).
				Value(&r.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(128).
				Value(&r.password).
				Validate(validatePassword),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				CharLimit(128).
				Value(&r.confirm).
				Validate(r.validateConfirm),
			huh.NewSelect[string]().
				Title("Account role").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(roleOptions...).
				Value(&r.role),
		).Title(icons.User.String()+" Create account").
			Description("Credentials and account role"),
		huh.NewGroup(
			huh.NewInput().
				Title("Nationality").
				Placeholder("optional").
				CharLimit(100).
				Value(&r.nationality),
			huh.NewInput().
				Title("Department").
				Placeholder("optional").
				CharLimit(100).
				Value(&r.department),
			huh.NewInput().
				Title("Job title").
				Placeholder("optional").
				CharLimit(100).
				Value(&r.jobTitle),
		).Title("About you").
			Description("Optional details used in risk assessments"),
	).WithTheme(styles.FormTheme())
}

// SetError shows a server-side failure while keeping the entered values
func (r *Register) SetError(msg string) {
	r.errMsg = msg
	r.form = r.createForm()
}

// Init implements tea.Model
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		form, cmd := r.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			r.form = f
		}
		return r, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return r, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		input := client.RegisterInput{
			Username:    strings.TrimSpace(r.username),
			Email:       strings.TrimSpace(r.email),
			Password:    r.password,
			Role:        r.role,
			Nationality: strings.TrimSpace(r.nationality),
			Department:  strings.TrimSpace(r.department),
			JobTitle:    strings.TrimSpace(r.jobTitle),
		}
		return r, func() tea.Msg { return SubmittedMsg{Input: input} }
	}

	return r, cmd
}

// View implements tea.Model
func (r *Register) View() string {
	out := r.form.View()
	if r.errMsg != "" {
		out = styles.ErrorBanner.Render(icons.Critical.String()+" "+r.errMsg) + "\n\n" + out
	}
	return out
}

func required(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("Enter a valid email address")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

func (r *Register) validateConfirm(s string) error {
	if s != r.password {
		return errors.New("Passwords do not match")
	}
	return nil
}
