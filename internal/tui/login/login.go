// ABOUTME: Login screen as a bubbletea model
// ABOUTME: Collects username and password via a huh form

package login

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// SubmittedMsg is sent when the user submits credentials
type SubmittedMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user backs out of the login screen
type CancelledMsg struct{}

// Login is the login screen model
type Login struct {
	form   *huh.Form
	errMsg string
	width  int

	username string
	password string
}

// New creates a fresh login form
func New() *Login {
	l := &Login{}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("your username").
				CharLimit(150).
				Value(&l.username).
				Validate(requireField("Username is required")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(128).
				Value(&l.password).
				Validate(requireField("Password is required")),
		).Title(icons.Key.String()+" Sign in").
			Description("Enter your credentials to continue"),
	).WithTheme(styles.FormTheme())
}

// SetError shows a server-side failure while keeping the entered values
func (l *Login) SetError(msg string) {
	l.errMsg = msg
	l.form = l.createForm()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		form, cmd := l.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			l.form = f
		}
		return l, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		username, password := l.username, l.password
		return l, func() tea.Msg {
			return SubmittedMsg{Username: username, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	out := l.form.View()
	if l.errMsg != "" {
		out = styles.ErrorBanner.Render(icons.Critical.String()+" "+l.errMsg) + "\n\n" + out
	}
	return out
}

func requireField(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
