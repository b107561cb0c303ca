package ui

import (
	"fmt"
	"strings"

	"headerlife/internal/core"
)

// FormatSnapshot renders the named groups of a snapshot as "Label: value"
// lines. Group names match case-insensitively; no names selects every group.
func FormatSnapshot(s core.ParameterSnapshot, groups ...string) []string {
	want := map[string]bool{}
	for _, g := range groups {
		want[strings.ToLower(g)] = true
	}
	var lines []string
	for _, g := range s.Groups {
		if len(want) > 0 && !want[strings.ToLower(g.Name)] {
			continue
		}
		for _, p := range g.Params {
			if p.Value == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}
