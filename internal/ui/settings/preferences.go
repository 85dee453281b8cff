// Package settings holds the viewer's preferences dialog and theme handling.
package settings

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Preference keys.
const (
	PrefAnimationMS = "animationMs"
	PrefTheme       = "appTheme"
)

// AnimationDuration returns the saved card animation duration, or fallback.
func AnimationDuration(prefs fyne.Preferences, fallback time.Duration) time.Duration {
	ms := prefs.IntWithFallback(PrefAnimationMS, int(fallback.Milliseconds()))
	if ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// ResetCardState removes the saved expansion state of every key.
func ResetCardState(prefs fyne.Preferences, keys []string) {
	for _, k := range keys {
		prefs.RemoveValue(k)
	}
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange     func(mode string) // "system", "dark", or "light"
	OnAnimationChange func(d time.Duration)
	OnResetCards      func()
}

// ShowPreferencesDialog displays the preferences dialog with General and
// Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, current time.Duration, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	animationEntry := widget.NewEntry()
	animationEntry.SetText(strconv.FormatInt(current.Milliseconds(), 10))

	resetButton := widget.NewButton("Reset Card Layout", func() {
		if callbacks.OnResetCards != nil {
			callbacks.OnResetCards()
		}
	})

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Card Animation (ms)", animationEntry),
		),
		widget.NewLabel("0 turns card animations off."),
		widget.NewSeparator(),
		resetButton,
		widget.NewLabel("Forget which report sections were expanded."),
	))

	themeSelector := widget.NewSelect(themeLabelOptions(), nil)
	themeSelector.SetSelected(themeLabel(prefs.StringWithFallback(PrefTheme, ThemeSystem)))

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	))

	tabs := container.NewAppTabs(generalTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		if ms, err := strconv.Atoi(animationEntry.Text); err == nil && ms >= 0 {
			prefs.SetInt(PrefAnimationMS, ms)
			if callbacks.OnAnimationChange != nil {
				callbacks.OnAnimationChange(time.Duration(ms) * time.Millisecond)
			}
		}

		mode := themeMode(themeSelector.Selected)
		prefs.SetString(PrefTheme, mode)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}
