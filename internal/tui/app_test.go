// ABOUTME: Tests for the root TUI model
// ABOUTME: Covers navigation guards and error message extraction

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/client"
	"tripsentry/internal/session"
	"tripsentry/internal/tui/login"
	"tripsentry/internal/tui/menu"
	"tripsentry/internal/tui/profile"
	"tripsentry/internal/tui/register"
	"tripsentry/internal/tui/travelers"
	"tripsentry/internal/tui/tripdetail"
	"tripsentry/internal/tui/tripform"
	"tripsentry/internal/tui/trips"
)

// Every screen the root hosts must satisfy tea.Model.
var (
	_ tea.Model = (*App)(nil)
	_ tea.Model = (*login.Login)(nil)
	_ tea.Model = (*register.Register)(nil)
	_ tea.Model = (*menu.Menu)(nil)
	_ tea.Model = (*trips.Model)(nil)
	_ tea.Model = (*tripdetail.Model)(nil)
	_ tea.Model = (*tripform.Wizard)(nil)
	_ tea.Model = (*profile.Model)(nil)
	_ tea.Model = (*travelers.Model)(nil)
)

func newTestApp(t *testing.T, tokens *client.AuthTokens) *App {
	t.Helper()

	store := session.New(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if tokens != nil {
		if err := store.Login(*tokens); err != nil {
			t.Fatal(err)
		}
	}

	c := client.New("http://127.0.0.1:1", store)
	app := New(c, store)
	app.ready = true
	return app
}

func TestNavigate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	app := newTestApp(t, nil)

	app.navigate(ScreenTrips)

	if app.screen != ScreenLogin {
		t.Errorf("expected login screen, got %d", app.screen)
	}
	if app.returnTo != ScreenTrips {
		t.Errorf("expected returnTo trips, got %d", app.returnTo)
	}
}

func TestNavigate_PublicScreensNeedNoAuth(t *testing.T) {
	app := newTestApp(t, nil)

	app.navigate(ScreenRegister)
	if app.screen != ScreenRegister {
		t.Errorf("expected register screen, got %d", app.screen)
	}

	app.navigate(ScreenLanding)
	if app.screen != ScreenLanding {
		t.Errorf("expected landing screen, got %d", app.screen)
	}
}

func TestNavigate_NonAdminBouncedFromDirectory(t *testing.T) {
	app := newTestApp(t, &client.AuthTokens{
		Access: "tok", UserID: "u-1", Role: client.RoleTraveler,
	})

	app.navigate(ScreenTravelers)

	if app.screen != ScreenTrips {
		t.Errorf("expected redirect to trips, got %d", app.screen)
	}
}

func TestNavigate_AdminReachesDirectory(t *testing.T) {
	app := newTestApp(t, &client.AuthTokens{
		Access: "tok", UserID: "u-9", Role: client.RoleAdmin,
	})

	app.navigate(ScreenTravelers)

	if app.screen != ScreenTravelers {
		t.Errorf("expected travelers screen, got %d", app.screen)
	}
	if app.dirScreen == nil {
		t.Error("expected directory model to be created")
	}
}

func TestNavigate_AuthenticatedReachesTrips(t *testing.T) {
	app := newTestApp(t, &client.AuthTokens{
		Access: "tok", UserID: "u-1", Role: client.RoleTraveler,
	})

	app.navigate(ScreenTrips)

	if app.screen != ScreenTrips {
		t.Errorf("expected trips screen, got %d", app.screen)
	}
	if app.tripsScreen == nil {
		t.Error("expected trips model to be created")
	}
}

func TestRequiresAuth(t *testing.T) {
	public := []Screen{ScreenLanding, ScreenLogin, ScreenRegister}
	for _, s := range public {
		if requiresAuth(s) {
			t.Errorf("screen %d must not require auth", s)
		}
	}

	private := []Screen{ScreenMenu, ScreenTrips, ScreenTripDetail, ScreenCreateTrip, ScreenProfile, ScreenTravelers}
	for _, s := range private {
		if !requiresAuth(s) {
			t.Errorf("screen %d must require auth", s)
		}
	}
}

func TestErrMessage_APIError(t *testing.T) {
	err := &client.APIError{Message: "Session expired. Please log in again.", Status: 401}

	if got := errMessage(err); got != "Session expired. Please log in again." {
		t.Errorf("expected API message, got %q", got)
	}
}

func TestErrMessage_PlainError(t *testing.T) {
	err := errors.New("cannot connect to backend")

	if got := errMessage(err); got != "cannot connect to backend" {
		t.Errorf("expected plain error text, got %q", got)
	}
}

func TestOwnTravelerID(t *testing.T) {
	store := session.New(t.TempDir())
	if err := store.Login(client.AuthTokens{Access: "tok", UserID: "u-1", Role: client.RoleTraveler}); err != nil {
		t.Fatal(err)
	}

	profiles := []client.TravelerProfile{
		{ID: "3", User: "u-2"},
		{ID: "8", User: "u-1"},
	}
	if got := ownTravelerID(store, profiles); got != 8 {
		t.Errorf("expected own traveler 8, got %d", got)
	}

	if got := ownTravelerID(store, nil); got != 0 {
		t.Errorf("expected 0 for empty list, got %d", got)
	}
}

func TestOwnTravelerID_FallsBackToFirstRecord(t *testing.T) {
	store := session.New(t.TempDir())
	if err := store.Login(client.AuthTokens{Access: "tok", UserID: "u-9", Role: client.RoleTraveler}); err != nil {
		t.Fatal(err)
	}

	// The backend scopes the list to the caller, so a list with no id
	// match still belongs to them and the first record wins.
	profiles := []client.TravelerProfile{
		{ID: "3", User: "u-1"},
		{ID: "5", User: "u-2"},
	}
	if got := ownTravelerID(store, profiles); got != 3 {
		t.Errorf("expected first record 3, got %d", got)
	}
}
