// ABOUTME: Compact score card widget for risk report displays
// ABOUTME: Combines icon, score, bar, and caption in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripsentry/internal/tui/icons"
)

// ScoreBlockConfig holds configuration for a score block
type ScoreBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
}

// DefaultScoreBlockConfig returns sensible defaults
func DefaultScoreBlockConfig() ScoreBlockConfig {
	return ScoreBlockConfig{
		Width:       26,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#06B6D4"), // Cyan
	}
}

// ScoreBlock renders a bordered card for one risk score: a title in the top
// border, a colored score with status icon, a compact bar, and a caption line.
func ScoreBlock(icon icons.Icon, title string, score float64, caption string, config ScoreBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 26
	}

	innerWidth := config.Width - 4
	barWidth := innerWidth - 7 // leave room for the score

	titleStr := fmt.Sprintf("%s %s", icon.String(), title)
	if len(titleStr) > innerWidth {
		titleStr = titleStr[:innerWidth]
	}

	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)

	// Build the box manually for title-in-border effect
	topBorder := fmt.Sprintf("┌─ %s %s┐",
		titleStyle.Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-len(titleStr)-1)))

	level := StatusFromScore(score)
	var statusColor lipgloss.Color
	switch level {
	case StatusCritical:
		statusColor = BadgeCritBg
	case StatusWarning:
		statusColor = BadgeWarnBg
	default:
		statusColor = BadgeOKBg
	}

	scoreStr := fmt.Sprintf("%3.0f", score)
	scoreLine := fmt.Sprintf("│  %s %s%s│",
		lipgloss.NewStyle().Bold(true).Foreground(statusColor).Render(scoreStr),
		StatusIcon(level),
		strings.Repeat(" ", max(0, innerWidth-6)))

	bar := compactBar(score, barWidth, statusColor)
	barLine := fmt.Sprintf("│  %s%s│", bar, strings.Repeat(" ", max(0, innerWidth-barWidth)))

	captionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	captionLine := fmt.Sprintf("│  %-*s│", innerWidth, captionStyle.Render(truncate(caption, innerWidth)))

	bottomBorder := fmt.Sprintf("└%s┘", strings.Repeat("─", config.Width-2))

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder),
		borderStyle.Render(scoreLine),
		borderStyle.Render(barLine),
		borderStyle.Render(captionLine),
		borderStyle.Render(bottomBorder),
	}, "\n")
}

// compactBar renders a minimal score bar for tight spaces
func compactBar(score float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := int(score / 100.0 * float64(width))
	empty := width - filled

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", empty))
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
