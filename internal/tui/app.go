// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, auth guards, and routes input to child screens

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tripsentry/internal/client"
	"tripsentry/internal/session"
	"tripsentry/internal/tui/debuglog"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/login"
	"tripsentry/internal/tui/menu"
	"tripsentry/internal/tui/profile"
	"tripsentry/internal/tui/register"
	"tripsentry/internal/tui/styles"
	"tripsentry/internal/tui/travelers"
	"tripsentry/internal/tui/tripdetail"
	"tripsentry/internal/tui/tripform"
	"tripsentry/internal/tui/trips"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenMenu
	ScreenTrips
	ScreenTripDetail
	ScreenCreateTrip
	ScreenProfile
	ScreenTravelers
)

// Layout constants
const (
	minTerminalWidth = 80
)

// sessionLoadedMsg is sent once the saved session has been read from disk
type sessionLoadedMsg struct{}

// loginDoneMsg is sent when a login request completes
type loginDoneMsg struct {
	tokens *client.AuthTokens
	err    error
}

// registerDoneMsg is sent when a registration request completes
type registerDoneMsg struct {
	user *client.User
	err  error
}

// tripsLoadedMsg is sent when the trip list has been fetched
type tripsLoadedMsg struct {
	trips []client.Trip
	err   error
}

// tripLoadedMsg is sent when a single trip has been fetched
type tripLoadedMsg struct {
	trip *client.Trip
	err  error
}

// tripCreatedMsg is sent when a trip creation request completes
type tripCreatedMsg struct {
	trip *client.Trip
	err  error
}

// analysisDoneMsg is sent when a risk analysis completes
type analysisDoneMsg struct {
	tripID int
	report *client.RiskReport
	err    error
}

// directoryLoadedMsg is sent when the admin traveler directory has been fetched
type directoryLoadedMsg struct {
	travelers []client.TravelerProfile
	err       error
}

// tripFormReadyMsg carries the traveler records needed to build the trip wizard
type tripFormReadyMsg struct {
	travelers []client.TravelerProfile
	err       error
}

// profileLoadedMsg is sent when the caller's own profile has been fetched
type profileLoadedMsg struct {
	profile *client.TravelerProfile
	err     error
}

// profileSavedMsg is sent when a profile create or update completes
type profileSavedMsg struct {
	profile *client.TravelerProfile
	err     error
}

// App is the root model for the TUI
type App struct {
	client   *client.Client
	session  *session.Store
	ctx      context.Context
	screen   Screen
	returnTo Screen
	width    int
	height   int
	ready    bool
	notice   string

	// Child models
	loginScreen    *login.Login
	registerScreen *register.Register
	menuScreen     *menu.Menu
	tripsScreen    *trips.Model
	detailScreen   *tripdetail.Model
	wizardScreen   *tripform.Wizard
	profileScreen  *profile.Model
	dirScreen      *travelers.Model
}

// New creates a new TUI application
func New(apiClient *client.Client, store *session.Store) *App {
	return &App{
		client:   apiClient,
		session:  store,
		ctx:      context.Background(),
		screen:   ScreenLanding,
		returnTo: ScreenMenu,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		if err := a.session.Load(); err != nil {
			debuglog.Error("session load failed", err)
		}
		return sessionLoadedMsg{}
	}
}

// navigate moves to a screen, enforcing auth and role guards. Unauthenticated
// users are sent to the login screen and return to their target afterwards.
func (a *App) navigate(screen Screen) (tea.Model, tea.Cmd) {
	if requiresAuth(screen) && !a.session.IsAuthenticated() {
		a.returnTo = screen
		return a.showLogin()
	}
	if screen == ScreenTravelers && !a.session.IsAdmin() {
		screen = ScreenTrips
	}

	switch screen {
	case ScreenLanding:
		a.screen = ScreenLanding
		return a, nil
	case ScreenLogin:
		return a.showLogin()
	case ScreenRegister:
		a.registerScreen = register.New()
		a.screen = ScreenRegister
		return a, a.registerScreen.Init()
	case ScreenMenu:
		a.menuScreen = menu.New(a.session.IsAdmin())
		a.screen = ScreenMenu
		return a, nil
	case ScreenTrips:
		a.tripsScreen = trips.New()
		a.screen = ScreenTrips
		return a, a.loadTrips()
	case ScreenCreateTrip:
		a.wizardScreen = nil
		a.screen = ScreenCreateTrip
		return a, a.prepareTripForm()
	case ScreenProfile:
		a.profileScreen = profile.New()
		a.screen = ScreenProfile
		return a, a.loadMyProfile()
	case ScreenTravelers:
		a.dirScreen = travelers.New()
		a.screen = ScreenTravelers
		return a, a.loadDirectory()
	}

	return a, nil
}

func (a *App) showLogin() (tea.Model, tea.Cmd) {
	a.loginScreen = login.New()
	a.screen = ScreenLogin
	return a, a.loginScreen.Init()
}

// requiresAuth reports whether a screen needs a signed-in session
func requiresAuth(screen Screen) bool {
	switch screen {
	case ScreenLanding, ScreenLogin, ScreenRegister:
		return false
	}
	return true
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forwardToActive(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.notice = ""
		return a.routeKey(msg)

	case sessionLoadedMsg:
		a.ready = true
		if a.session.IsAuthenticated() {
			return a.navigate(ScreenMenu)
		}
		a.screen = ScreenLanding
		return a, nil

	case login.SubmittedMsg:
		return a, a.doLogin(msg.Username, msg.Password)

	case login.CancelledMsg:
		a.loginScreen = nil
		a.screen = ScreenLanding
		return a, nil

	case loginDoneMsg:
		if msg.err != nil {
			if a.loginScreen != nil {
				a.loginScreen.SetError(errMessage(msg.err))
				return a, a.loginScreen.Init()
			}
			return a, nil
		}
		if err := a.session.Login(*msg.tokens); err != nil {
			debuglog.Error("session save failed", err)
		}
		a.loginScreen = nil
		target := a.returnTo
		a.returnTo = ScreenMenu
		return a.navigate(target)

	case register.SubmittedMsg:
		return a, a.doRegister(msg.Input)

	case register.CancelledMsg:
		a.registerScreen = nil
		a.screen = ScreenLanding
		return a, nil

	case registerDoneMsg:
		if msg.err != nil {
			if a.registerScreen != nil {
				a.registerScreen.SetError(errMessage(msg.err))
				return a, a.registerScreen.Init()
			}
			return a, nil
		}
		a.registerScreen = nil
		a.notice = "Account created. Sign in to continue."
		return a.showLogin()

	case menu.SelectedMsg:
		return a.handleMenuSelection(msg.Item)

	case menu.CancelledMsg:
		return a, tea.Quit

	case trips.OpenMsg:
		a.detailScreen = tripdetail.New()
		a.screen = ScreenTripDetail
		return a, a.loadTrip(msg.ID)

	case trips.NewMsg:
		return a.navigate(ScreenCreateTrip)

	case trips.RefreshMsg:
		if a.tripsScreen != nil {
			a.tripsScreen.SetLoading()
		}
		return a, a.loadTrips()

	case trips.BackMsg:
		return a.navigate(ScreenMenu)

	case tripsLoadedMsg:
		if a.tripsScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.tripsScreen.SetError(errMessage(msg.err))
			return a, nil
		}
		a.tripsScreen.SetTrips(msg.trips)
		return a, nil

	case tripLoadedMsg:
		if a.detailScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.detailScreen.SetError(errMessage(msg.err))
			return a, nil
		}
		a.detailScreen.SetTrip(msg.trip)
		return a, nil

	case tripdetail.AnalyzeMsg:
		return a, a.analyzeTrip(msg.TripID)

	case tripdetail.BackMsg:
		a.detailScreen = nil
		return a.navigate(ScreenTrips)

	case analysisDoneMsg:
		if a.detailScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.detailScreen.SetAnalysisError(errMessage(msg.err))
			return a, nil
		}
		a.detailScreen.SetReport(msg.report)
		return a, nil

	case tripFormReadyMsg:
		return a.handleTripFormReady(msg)

	case tripform.CompleteMsg:
		return a, a.createTrip(msg.Input)

	case tripform.CancelledMsg:
		a.wizardScreen = nil
		return a.navigate(ScreenTrips)

	case tripCreatedMsg:
		if msg.err != nil {
			a.notice = ""
			if a.wizardScreen != nil {
				// Keep the wizard so the user can adjust and resubmit
				a.notice = errMessage(msg.err)
			}
			return a, nil
		}
		a.wizardScreen = nil
		a.notice = fmt.Sprintf("Trip to %s created.", msg.trip.DestinationCity)
		return a.navigate(ScreenTrips)

	case directoryLoadedMsg:
		if a.dirScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.dirScreen.SetError(errMessage(msg.err))
			return a, nil
		}
		a.dirScreen.SetTravelers(msg.travelers)
		return a, nil

	case travelers.RefreshMsg:
		if a.dirScreen != nil {
			a.dirScreen.SetLoading()
		}
		return a, a.loadDirectory()

	case travelers.BackMsg:
		a.dirScreen = nil
		return a.navigate(ScreenMenu)

	case profileLoadedMsg:
		if a.profileScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.profileScreen.SetError(errMessage(msg.err))
			return a, nil
		}
		a.profileScreen.SetProfile(msg.profile)
		return a, a.profileScreen.InitForm()

	case profile.SubmittedMsg:
		return a, a.saveProfile(msg)

	case profile.CancelledMsg:
		a.profileScreen = nil
		return a.navigate(ScreenMenu)

	case profileSavedMsg:
		if a.profileScreen == nil {
			return a, nil
		}
		if msg.err != nil {
			a.profileScreen.SetError(errMessage(msg.err))
		} else {
			a.profileScreen.SetSaved(msg.profile)
		}
		return a, a.profileScreen.InitForm()

	default:
		// huh forms need non-key messages (blink, etc.) forwarded
		return a, a.forwardToActive(msg)
	}
}

func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLanding:
		return a.updateLanding(msg)
	case ScreenLogin:
		if a.loginScreen == nil {
			return a, nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return a, cmd
	case ScreenRegister:
		if a.registerScreen == nil {
			return a, nil
		}
		model, cmd := a.registerScreen.Update(msg)
		a.registerScreen = model.(*register.Register)
		return a, cmd
	case ScreenMenu:
		if a.menuScreen == nil {
			return a, nil
		}
		model, cmd := a.menuScreen.Update(msg)
		a.menuScreen = model.(*menu.Menu)
		return a, cmd
	case ScreenTrips:
		if a.tripsScreen == nil {
			return a, nil
		}
		model, cmd := a.tripsScreen.Update(msg)
		a.tripsScreen = model.(*trips.Model)
		return a, cmd
	case ScreenTripDetail:
		if a.detailScreen == nil {
			return a, nil
		}
		model, cmd := a.detailScreen.Update(msg)
		a.detailScreen = model.(*tripdetail.Model)
		return a, cmd
	case ScreenCreateTrip:
		if a.wizardScreen == nil {
			if msg.String() == "esc" || msg.String() == "q" {
				return a.navigate(ScreenTrips)
			}
			return a, nil
		}
		model, cmd := a.wizardScreen.Update(msg)
		a.wizardScreen = model.(*tripform.Wizard)
		return a, cmd
	case ScreenProfile:
		if a.profileScreen == nil {
			return a, nil
		}
		model, cmd := a.profileScreen.Update(msg)
		a.profileScreen = model.(*profile.Model)
		return a, cmd
	case ScreenTravelers:
		if a.dirScreen == nil {
			return a, nil
		}
		model, cmd := a.dirScreen.Update(msg)
		a.dirScreen = model.(*travelers.Model)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l", "enter":
		return a.navigate(ScreenLogin)
	case "r":
		return a.navigate(ScreenRegister)
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

// forwardToActive routes a message to whichever child screen is active
func (a *App) forwardToActive(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			model, cmd := a.loginScreen.Update(msg)
			a.loginScreen = model.(*login.Login)
			return cmd
		}
	case ScreenRegister:
		if a.registerScreen != nil {
			model, cmd := a.registerScreen.Update(msg)
			a.registerScreen = model.(*register.Register)
			return cmd
		}
	case ScreenMenu:
		if a.menuScreen != nil {
			model, cmd := a.menuScreen.Update(msg)
			a.menuScreen = model.(*menu.Menu)
			return cmd
		}
	case ScreenTrips:
		if a.tripsScreen != nil {
			model, cmd := a.tripsScreen.Update(msg)
			a.tripsScreen = model.(*trips.Model)
			return cmd
		}
	case ScreenTripDetail:
		if a.detailScreen != nil {
			model, cmd := a.detailScreen.Update(msg)
			a.detailScreen = model.(*tripdetail.Model)
			return cmd
		}
	case ScreenCreateTrip:
		if a.wizardScreen != nil {
			model, cmd := a.wizardScreen.Update(msg)
			a.wizardScreen = model.(*tripform.Wizard)
			return cmd
		}
	case ScreenProfile:
		if a.profileScreen != nil {
			model, cmd := a.profileScreen.Update(msg)
			a.profileScreen = model.(*profile.Model)
			return cmd
		}
	case ScreenTravelers:
		if a.dirScreen != nil {
			model, cmd := a.dirScreen.Update(msg)
			a.dirScreen = model.(*travelers.Model)
			return cmd
		}
	}
	return nil
}

func (a *App) handleMenuSelection(item menu.Item) (tea.Model, tea.Cmd) {
	switch item {
	case menu.ItemTrips:
		return a.navigate(ScreenTrips)
	case menu.ItemNewTrip:
		return a.navigate(ScreenCreateTrip)
	case menu.ItemProfile:
		return a.navigate(ScreenProfile)
	case menu.ItemTravelers:
		return a.navigate(ScreenTravelers)
	case menu.ItemLogout:
		if err := a.session.Logout(); err != nil {
			debuglog.Error("logout failed", err)
		}
		a.menuScreen = nil
		a.notice = "Signed out."
		a.screen = ScreenLanding
		return a, nil
	}
	return a, nil
}

func (a *App) handleTripFormReady(msg tripFormReadyMsg) (tea.Model, tea.Cmd) {
	if a.screen != ScreenCreateTrip {
		return a, nil
	}
	if msg.err != nil {
		a.notice = errMessage(msg.err)
		return a.navigate(ScreenTrips)
	}

	if a.session.IsAdmin() {
		a.wizardScreen = tripform.New(0, true)
		a.wizardScreen.SetTravelers(msg.travelers)
	} else {
		a.wizardScreen = tripform.New(ownTravelerID(a.session, msg.travelers), false)
	}
	return a, a.wizardScreen.Init()
}

// ownTravelerID finds the numeric traveler record for the signed-in user.
// The backend scopes the traveler list to the caller for non-admin roles,
// so when no record matches the user id the first record is still theirs.
func ownTravelerID(store *session.Store, profiles []client.TravelerProfile) int {
	user := store.CurrentUser()
	for _, p := range profiles {
		if user != nil && p.User == user.ID {
			if id, err := strconv.Atoi(p.ID); err == nil {
				return id
			}
		}
	}
	if len(profiles) > 0 {
		if id, err := strconv.Atoi(profiles[0].ID); err == nil {
			return id
		}
	}
	return 0
}

// errMessage extracts the display message from an error
func errMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	if !a.ready {
		content = styles.Subtitle.Render("Loading session...")
	} else {
		switch a.screen {
		case ScreenLanding:
			content = a.viewLanding()
		case ScreenLogin:
			content = viewChild(a.loginScreen)
		case ScreenRegister:
			content = viewChild(a.registerScreen)
		case ScreenMenu:
			content = viewChild(a.menuScreen)
		case ScreenTrips:
			content = viewChild(a.tripsScreen)
		case ScreenTripDetail:
			content = viewChild(a.detailScreen)
		case ScreenCreateTrip:
			if a.wizardScreen != nil {
				content = a.wizardScreen.View()
			} else {
				content = styles.Subtitle.Render("Preparing trip form...")
			}
		case ScreenProfile:
			content = viewChild(a.profileScreen)
		case ScreenTravelers:
			content = viewChild(a.dirScreen)
		default:
			content = a.viewLanding()
		}
	}

	if a.notice != "" {
		content = styles.SuccessBanner.Render(icons.Info.String()+" "+a.notice) + "\n\n" + content
	}

	return a.wrapWithFrame(content)
}

// viewChild renders a child model, tolerating a nil screen mid-transition
func viewChild(child interface{ View() string }) string {
	if child == nil {
		return ""
	}
	return child.View()
}

// viewLanding renders the welcome screen for signed-out users
func (a *App) viewLanding() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.Shield.String() + " TripSentry"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("AI-assisted risk assessment for corporate travel."))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.KeyStyle.Render("l") + "  Sign in\n")
	b.WriteString("  " + styles.KeyStyle.Render("r") + "  Create an account\n")
	b.WriteString("  " + styles.KeyStyle.Render("q") + "  Quit\n")

	return b.String()
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("TripSentry"))

	rightText := ""
	if a.session.IsAuthenticated() {
		role := "traveler"
		if a.session.IsAdmin() {
			role = "HR admin"
		}
		rightText = contextStyle.Render(icons.User.String()+" "+role) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with per-screen keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLanding:
		shortcuts = []string{"l Sign in", "r Register", "q Quit"}
	case ScreenLogin, ScreenRegister:
		shortcuts = []string{"Tab Next field", "Enter Submit", "Esc Cancel"}
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenTrips:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "/ Filter", "n New", "r Refresh", "Esc Back"}
	case ScreenTripDetail:
		shortcuts = []string{"a Analyze", "Esc Back"}
	case ScreenCreateTrip:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenProfile:
		shortcuts = []string{"Tab Next field", "Enter Save", "Esc Back"}
	case ScreenTravelers:
		shortcuts = []string{"↑↓ Navigate", "/ Filter", "r Refresh", "Esc Back"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	leftWidth := lipgloss.Width(leftPlainText)
	fillWidth := width - 4 - leftWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// doLogin calls the backend and reports the result
func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		tokens, err := a.client.Login(a.ctx, client.LoginInput{
			Username: username,
			Password: password,
		})
		return loginDoneMsg{tokens: tokens, err: err}
	}
}

// doRegister calls the backend and reports the result
func (a *App) doRegister(input client.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		user, err := a.client.Register(a.ctx, input)
		return registerDoneMsg{user: user, err: err}
	}
}

// loadTrips fetches the trip list
func (a *App) loadTrips() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.ListTrips(a.ctx)
		return tripsLoadedMsg{trips: list, err: err}
	}
}

// loadTrip fetches a single trip
func (a *App) loadTrip(id int) tea.Cmd {
	return func() tea.Msg {
		trip, err := a.client.GetTrip(a.ctx, id)
		return tripLoadedMsg{trip: trip, err: err}
	}
}

// createTrip posts a new trip
func (a *App) createTrip(input client.TripInput) tea.Cmd {
	return func() tea.Msg {
		trip, err := a.client.CreateTrip(a.ctx, input)
		return tripCreatedMsg{trip: trip, err: err}
	}
}

// analyzeTrip requests an AI risk analysis for a trip
func (a *App) analyzeTrip(id int) tea.Cmd {
	return func() tea.Msg {
		report, err := a.client.AnalyzeTripRisk(a.ctx, id)
		return analysisDoneMsg{tripID: id, report: report, err: err}
	}
}

// loadDirectory fetches the traveler directory for admins
func (a *App) loadDirectory() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.ListTravelers(a.ctx)
		return directoryLoadedMsg{travelers: list, err: err}
	}
}

// prepareTripForm fetches the traveler records the wizard needs
func (a *App) prepareTripForm() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.ListTravelers(a.ctx)
		return tripFormReadyMsg{travelers: list, err: err}
	}
}

// loadMyProfile fetches the caller's own traveler profile, if one exists
func (a *App) loadMyProfile() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.ListTravelers(a.ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		user := a.session.CurrentUser()
		for i := range list {
			if user != nil && list[i].User == user.ID {
				return profileLoadedMsg{profile: &list[i]}
			}
		}
		if len(list) > 0 {
			return profileLoadedMsg{profile: &list[0]}
		}
		return profileLoadedMsg{}
	}
}

// saveProfile creates or updates the traveler profile
func (a *App) saveProfile(msg profile.SubmittedMsg) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *client.TravelerProfile
			err   error
		)
		if msg.ExistingID != "" {
			saved, err = a.client.UpdateTravelerProfile(a.ctx, msg.ExistingID, msg.Input)
		} else {
			saved, err = a.client.CreateTravelerProfile(a.ctx, msg.Input)
		}
		return profileSavedMsg{profile: saved, err: err}
	}
}

// Run starts the TUI. Fetch commands inherit ctx, so cancelling it
// aborts any in-flight request along with the program.
func Run(ctx context.Context, apiClient *client.Client, store *session.Store) error {
	app := New(apiClient, store)
	app.ctx = ctx

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
