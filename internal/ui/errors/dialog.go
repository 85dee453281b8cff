// Package errors presents application errors in the desktop viewer.
package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/whoops/internal/errors"
	"github.com/shhac/whoops/internal/ui/components"
)

var dialogSize = fyne.NewSize(500, 400)

// ShowError displays a classified error with recovery suggestions and a
// collapsed "Technical Details" card. onRetry, when non-nil and the error
// offers a Retry action, is bound to a Retry button.
func ShowError(err error, window fyne.Window, onRetry func()) {
	uiErr := apperrors.ClassifyGRPCError(err)
	if uiErr == nil {
		return
	}

	content := errorContent(uiErr)

	if onRetry != nil && hasAction(uiErr, "Retry") {
		d := dialog.NewCustomConfirm(uiErr.Title, "Retry", "Close", content, func(retry bool) {
			if retry {
				onRetry()
			}
		}, window)
		d.Resize(dialogSize)
		d.Show()
		return
	}

	d := dialog.NewCustom(uiErr.Title, "Close", content, window)
	d.Resize(dialogSize)
	d.Show()
}

// errorContent lays out the message, recovery bullets and details card.
func errorContent(uiErr *apperrors.UIError) *fyne.Container {
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		details := widget.NewLabel(uiErr.Details)
		details.Wrapping = fyne.TextWrapWord
		details.Selectable = true
		content.Add(components.NewCollapsibleSection(
			theme.InfoIcon(), "Technical Details", uiErr.Severity.String(),
			details, nil, "",
		))
	}
	return content
}

func hasAction(uiErr *apperrors.UIError, label string) bool {
	for _, action := range uiErr.Actions {
		if action.Label == label {
			return true
		}
	}
	return false
}
