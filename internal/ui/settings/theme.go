package settings

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme modes stored under PrefTheme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

var themeLabels = []struct{ mode, label string }{
	{ThemeSystem, "System Default"},
	{ThemeLight, "Light"},
	{ThemeDark, "Dark"},
}

// forcedVariant wraps a theme to force a specific variant (light/dark).
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant.
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme for mode. Unknown modes follow the
// system.
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case ThemeDark:
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case ThemeLight:
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference applies the saved theme.
func LoadThemePreference(a fyne.App) {
	ApplyTheme(a, a.Preferences().StringWithFallback(PrefTheme, ThemeSystem))
}

// SaveThemePreference saves and applies mode.
func SaveThemePreference(a fyne.App, mode string) {
	a.Preferences().SetString(PrefTheme, mode)
	ApplyTheme(a, mode)
}

func themeLabelOptions() []string {
	labels := make([]string, len(themeLabels))
	for i, t := range themeLabels {
		labels[i] = t.label
	}
	return labels
}

func themeLabel(mode string) string {
	for _, t := range themeLabels {
		if t.mode == mode {
			return t.label
		}
	}
	return themeLabels[0].label
}

func themeMode(label string) string {
	for _, t := range themeLabels {
		if t.label == label {
			return t.mode
		}
	}
	return ThemeSystem
}
