// ABOUTME: Trip planning wizard as a bubbletea model
// ABOUTME: Three huh form steps with a visual progress indicator

package tripform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tripsentry/internal/client"
	"tripsentry/internal/tui/icons"
	"tripsentry/internal/tui/styles"
)

// CompleteMsg is sent when the wizard finishes successfully
type CompleteMsg struct {
	Input client.TripInput
}

// CancelledMsg is sent when the wizard is cancelled
type CancelledMsg struct{}

// Wizard manages the trip planning flow as a bubbletea model
type Wizard struct {
	input     client.TripInput
	form      *huh.Form
	step      int
	width     int
	isAdmin   bool
	travelers []client.TravelerProfile

	// Form field values (strings for huh)
	country       string
	city          string
	traveler      string
	startDate     string
	endDate       string
	purpose       string
	accommodation string
	transport     string
}

// Step names for progress indicator
var stepNames = []string{"Destination", "Dates & Purpose", "Logistics"}

var transportOptions = []huh.Option[string]{
	huh.NewOption("Flight", "flight"),
	huh.NewOption("Train", "train"),
	huh.NewOption("Car", "car"),
	huh.NewOption("Bus", "bus"),
	huh.NewOption("Ship", "ship"),
}

// New creates a wizard. The traveler field defaults to the caller's own
// traveler record. Admins pick from the directory instead (SetTravelers).
func New(defaultTraveler int, isAdmin bool) *Wizard {
	w := &Wizard{
		step:      1,
		isAdmin:   isAdmin,
		transport: "flight",
	}
	if defaultTraveler > 0 {
		w.traveler = strconv.Itoa(defaultTraveler)
	}
	w.form = w.createStep1Form()
	return w
}

// SetTravelers supplies the directory used for the admin traveler select
func (w *Wizard) SetTravelers(travelers []client.TravelerProfile) {
	w.travelers = travelers
	if w.step == 1 {
		w.form = w.createStep1Form()
	}
}

func (w *Wizard) travelerField() huh.Field {
	if w.isAdmin && len(w.travelers) > 0 {
		options := make([]huh.Option[string], 0, len(w.travelers))
		for _, t := range w.travelers {
			label := fmt.Sprintf("%s (%s)", t.PassportNumber, t.PassportIssuingCountry)
			options = append(options, huh.NewOption(label, t.ID))
		}
		return huh.NewSelect[string]().
			Title("Traveler").
			Description("Use ↑/↓ to select, Enter to confirm").
			Options(options...).
			Value(&w.traveler)
	}
	return huh.NewInput().
		Title("Traveler ID").
		Description("Numeric traveler record this trip belongs to").
		Placeholder("e.g., 42").
		CharLimit(10).
		Value(&w.traveler).
		Validate(validateTravelerID)
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination country").
				Placeholder("e.g., Egypt").
				CharLimit(100).
				Value(&w.country).
				Validate(required("Destination country is required")),
			huh.NewInput().
				Title("Destination city").
				Placeholder("e.g., Cairo").
				CharLimit(100).
				Value(&w.city).
				Validate(required("Destination city is required")),
			w.travelerField(),
		).Title("Step 1: Destination").
			Description("Where is this trip going?"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&w.startDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&w.endDate).
				Validate(w.validateEndDate),
			huh.NewInput().
				Title("Purpose").
				Placeholder("e.g., Client meetings").
				CharLimit(200).
				Value(&w.purpose).
				Validate(required("Purpose is required")),
		).Title("Step 2: Dates & Purpose").
			Description("When and why are you traveling?"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accommodation").
				Placeholder("e.g., Hilton Cairo").
				CharLimit(200).
				Value(&w.accommodation).
				Validate(required("Accommodation is required")),
			huh.NewSelect[string]().
				Title("Transport mode").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(transportOptions...).
				Value(&w.transport),
		).Title("Step 3: Logistics").
			Description("Where are you staying and how do you get there?"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.input.DestinationCountry = strings.TrimSpace(w.country)
		w.input.DestinationCity = strings.TrimSpace(w.city)
		w.input.Traveler, _ = strconv.Atoi(strings.TrimSpace(w.traveler))
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.input.StartDate = strings.TrimSpace(w.startDate)
		w.input.EndDate = strings.TrimSpace(w.endDate)
		w.input.Purpose = strings.TrimSpace(w.purpose)
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		w.input.Accommodation = strings.TrimSpace(w.accommodation)
		w.input.TransportMode = w.transport

		input := w.input
		return w, func() tea.Msg {
			return CompleteMsg{Input: input}
		}
	}

	return w, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	barWidth := width - 5
	totalSteps := len(stepNames)
	filledWidth := (w.step * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	styledTitle := titleStyle.Render("New trip")
	titleWidth := lipgloss.Width("New trip")

	topFillWidth := maxInt(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := maxInt(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	progressLinePadded := "│  " + progressBar + " │"

	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Input returns the collected trip input
func (w *Wizard) Input() client.TripInput {
	return w.input
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

func (w *Wizard) validateEndDate(s string) error {
	end, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return errors.New("Enter a date as YYYY-MM-DD")
	}
	start, err := time.Parse("2006-01-02", strings.TrimSpace(w.startDate))
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return errors.New("End date must be on or after the start date")
	}
	return nil
}

func validateTravelerID(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return errors.New("Traveler ID must be a positive number")
	}
	return nil
}
