// Package tui provides the terminal user interface for PodGrid.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/podgrid/podgrid/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	ErrorColor      lipgloss.Color
	WarningColor    lipgloss.Color
	MutedColor      lipgloss.Color

	// Base styles
	Base lipgloss.Style

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Box      lipgloss.Style
	Selected lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	// Status bar
	StatusDivider lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeAmber:
		return buildTheme(
			lipgloss.Color("#FFAA00"), lipgloss.Color("#AA7700"), lipgloss.Color("#FFCC66"),
			lipgloss.Color("#000000"), lipgloss.Color("#664400"),
		)
	case config.ColorSchemeWhite:
		return buildTheme(
			lipgloss.Color("#FFFFFF"), lipgloss.Color("#AAAAAA"), lipgloss.Color("#FFFFFF"),
			lipgloss.Color("#000000"), lipgloss.Color("#666666"),
		)
	default:
		return buildTheme(
			lipgloss.Color("#00FF00"), lipgloss.Color("#00AA00"), lipgloss.Color("#66FF66"),
			lipgloss.Color("#000000"), lipgloss.Color("#006600"),
		)
	}
}

func buildTheme(primary, secondary, accent, background, muted lipgloss.Color) *Theme {
	errorColor := lipgloss.Color("#FF4444")
	warningColor := lipgloss.Color("#FFAA00")

	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		MutedColor:      muted,
		ErrorColor:      errorColor,
		WarningColor:    warningColor,
	}

	t.Base = lipgloss.NewStyle().Foreground(primary)

	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().Foreground(secondary)
	t.Value = lipgloss.NewStyle().Foreground(primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.TableRow = lipgloss.NewStyle().Foreground(primary)
	t.TableRowAlt = lipgloss.NewStyle().Foreground(secondary)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// Box characters for drawing
const (
	BoxHorizontal       = "─"
	BoxDoubleHorizontal = "═"
)

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Secondary.Render(strings.Repeat(BoxHorizontal, width))
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Primary.Render(strings.Repeat(BoxDoubleHorizontal, width))
}
