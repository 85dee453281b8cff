package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/report"
)

// Section icons.
const (
	iconException   = "✖"
	iconDevice      = "▣"
	iconApplication = "◆"
	iconStatus      = "⚠"
)

// reportCards builds the section cards of r. IDs start at firstID.
func reportCards(r domain.Report, store card.Store, d time.Duration, firstID int) []*Card {
	opts := func(key string, expanded bool) []CardOption {
		return []CardOption{WithExpanded(expanded), WithStateStore(store, key), WithDuration(d)}
	}

	cards := []*Card{
		NewCard(firstID, iconException, report.Title(r), report.Summary(r),
			func() []string { return exceptionLines(r) }, opts(card.KeyException, true)...),
		NewCard(firstID+1, iconDevice, "Device", report.DeviceSummary(r.Device),
			func() []string { return fieldLines(report.DeviceFields(r.Device)) }, opts(card.KeyDevice, false)...),
		NewCard(firstID+2, iconApplication, "Application", report.ApplicationSummary(r.Application),
			func() []string { return fieldLines(report.ApplicationFields(r.Application)) }, opts(card.KeyApplication, false)...),
	}
	if r.Status != nil {
		st := *r.Status
		cards = append(cards, NewCard(firstID+3, iconStatus, "gRPC Status", st.Code,
			func() []string { return statusLines(st) }, opts(card.KeyStatus, false)...))
	}
	return cards
}

func exceptionLines(r domain.Report) []string {
	lines := strings.Split(r.Message, "\n")
	if r.Stack != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(strings.TrimRight(r.Stack, "\n"), "\n")...)
	}
	return lines
}

func fieldLines(fields []report.Field) []string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fmt.Sprintf("%-*s  %s", width, f.Name, f.Value)
	}
	return lines
}

func statusLines(st domain.Status) []string {
	lines := strings.Split(st.Message, "\n")
	if st.Details != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(st.Details, "\n")...)
	}
	if st.Proto != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(st.Proto, "\n")...)
	}
	return lines
}
