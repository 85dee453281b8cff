package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shhac/whoops/internal/domain"
)

// Field is one labelled value of a report section.
type Field struct {
	Name  string
	Value string
}

// DeviceFields lists the non-empty device values.
func DeviceFields(d domain.Device) []Field {
	cpus := ""
	if d.NumCPU > 0 {
		cpus = strconv.Itoa(d.NumCPU)
	}
	return nonEmpty([]Field{
		{"OS", d.OS},
		{"Architecture", d.Arch},
		{"Go", d.GoVersion},
		{"CPUs", cpus},
		{"Hostname", d.Hostname},
	})
}

// ApplicationFields lists the application values followed by build settings
// in key order.
func ApplicationFields(a domain.Application) []Field {
	fields := []Field{
		{"Name", a.Name},
		{"Version", a.Version},
		{"Module", a.Module},
	}
	keys := make([]string, 0, len(a.Settings))
	for k := range a.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, Field{k, a.Settings[k]})
	}
	return nonEmpty(fields)
}

// Title returns the headline of r: its classification title, else a
// kind-based fallback.
func Title(r domain.Report) string {
	if r.Title != "" {
		return r.Title
	}
	if r.Kind == domain.KindPanic {
		return "Panic"
	}
	return "Error"
}

// Summary returns "Type: first line of message", or the message alone.
func Summary(r domain.Report) string {
	msg, _, _ := strings.Cut(r.Message, "\n")
	if r.Type == "" {
		return msg
	}
	return r.Type + ": " + msg
}

// DeviceSummary returns "os/arch, go version".
func DeviceSummary(d domain.Device) string {
	return fmt.Sprintf("%s/%s, %s", d.OS, d.Arch, d.GoVersion)
}

// ApplicationSummary returns "name version".
func ApplicationSummary(a domain.Application) string {
	if a.Version == "" {
		return a.Name
	}
	return a.Name + " " + a.Version
}

func nonEmpty(fields []Field) []Field {
	out := fields[:0]
	for _, f := range fields {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
