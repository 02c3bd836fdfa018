package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI color codes
const (
	ColorMediumGreen = "40"
	ColorDimGray     = "240"
)

var (
	// DimStyle renders hints below error messages
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDimGray))
	// ValueStyle highlights paths and values in status lines
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMediumGreen))
)

// ColorProfiles lists the accepted color profile names.
var ColorProfiles = []string{"truecolor", "ansi256", "ansi", "ascii"}

// ParseColorProfile maps a profile name to a termenv profile.
// The second result is false for unknown names.
func ParseColorProfile(name string) (termenv.Profile, bool) {
	switch name {
	case "truecolor":
		return termenv.TrueColor, true
	case "ansi256":
		return termenv.ANSI256, true
	case "ansi":
		return termenv.ANSI, true
	case "ascii":
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}

// ApplyColorProfile sets the lipgloss color profile for the whole process.
// An empty name picks truecolor when interactive and ascii otherwise.
// Unknown names fall back to the same default.
func ApplyColorProfile(name string, interactive bool) termenv.Profile {
	profile, ok := ParseColorProfile(name)
	if !ok {
		profile = termenv.Ascii
		if interactive {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
	return profile
}
