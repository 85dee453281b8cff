// Package detail renders one crash report as a stack of expandable cards,
// with a raw JSON view as the alternative mode.
package detail

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/report"
	"github.com/shhac/whoops/internal/ui/components"
	"github.com/shhac/whoops/internal/ui/rawview"
)

// SectionKeys lists the preference key of every section card.
var SectionKeys = card.SectionKeys

const maxStackRows = 18

// BuildCards returns the cards for r: Exception (expanded by default),
// Device, Application and, when the report carries one, the gRPC status.
// Each card keeps its expansion state in store under its section key.
func BuildCards(r domain.Report, store card.Store, duration time.Duration) []*components.ExpandableCard {
	opts := func(key string, expanded bool) []components.Option {
		return []components.Option{
			components.WithExpanded(expanded),
			components.WithStateStore(store, key),
			components.WithAnimationDuration(duration),
		}
	}

	cards := []*components.ExpandableCard{
		components.NewExpandableCard(theme.ErrorIcon(), report.Title(r), report.Summary(r),
			func() fyne.CanvasObject { return exceptionBody(r) },
			opts(card.KeyException, true)...),
		components.NewExpandableCard(theme.ComputerIcon(), "Device", report.DeviceSummary(r.Device),
			func() fyne.CanvasObject { return deviceBody(r.Device) },
			opts(card.KeyDevice, false)...),
		components.NewExpandableCard(theme.InfoIcon(), "Application", report.ApplicationSummary(r.Application),
			func() fyne.CanvasObject { return applicationBody(r.Application) },
			opts(card.KeyApplication, false)...),
	}
	if r.Status != nil {
		st := *r.Status
		cards = append(cards, components.NewExpandableCard(theme.WarningIcon(), "gRPC Status", st.Code,
			func() fyne.CanvasObject { return statusBody(st) },
			opts(card.KeyStatus, false)...))
	}
	return cards
}

// RawJSON renders r as indented JSON.
func RawJSON(r domain.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report %s: %w", r.ID, err)
	}
	return string(data), nil
}

func exceptionBody(r domain.Report) fyne.CanvasObject {
	msg := widget.NewLabel(r.Message)
	msg.Wrapping = fyne.TextWrapWord

	objects := []fyne.CanvasObject{msg}
	if r.Goroutine != "" {
		g := widget.NewLabel(r.Goroutine)
		g.TextStyle = fyne.TextStyle{Monospace: true}
		g.Importance = widget.LowImportance
		objects = append(objects, g)
	}
	if r.Stack != "" {
		stack := rawview.NewReadOnlyEntry(r.Stack)
		stack.SetMinRowsVisible(min(strings.Count(r.Stack, "\n")+1, maxStackRows))
		objects = append(objects, stack)
	}
	return container.NewVBox(objects...)
}

func deviceBody(d domain.Device) fyne.CanvasObject {
	return keyValues(report.DeviceFields(d))
}

func applicationBody(a domain.Application) fyne.CanvasObject {
	return keyValues(report.ApplicationFields(a))
}

func statusBody(st domain.Status) fyne.CanvasObject {
	msg := widget.NewLabel(st.Message)
	msg.Wrapping = fyne.TextWrapWord
	objects := []fyne.CanvasObject{msg}

	if st.Details != "" {
		details := widget.NewLabel(st.Details)
		details.Wrapping = fyne.TextWrapWord
		objects = append(objects, widget.NewSeparator(), details)
	}
	if st.Proto != "" {
		objects = append(objects, widget.NewSeparator(), rawview.NewJSONView(st.Proto))
	}
	return container.NewVBox(objects...)
}

// keyValues lays out fields as a two-column form.
func keyValues(fields []report.Field) fyne.CanvasObject {
	grid := container.New(layout.NewFormLayout())
	for _, f := range fields {
		key := widget.NewLabelWithStyle(f.Name, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(f.Value)
		value.Selectable = true
		grid.Add(key)
		grid.Add(value)
	}
	return grid
}

