package app

import (
	"fmt"

	"leaf-morphogenesis/internal/core"
)

const keyHelp = "space pause  n step  r reset  h hud  q quit"

// panelLines lays out the HUD text: a status line, then each parameter group
// with its values indented below the group name.
func panelLines(status string, s core.ParameterSnapshot) []string {
	lines := []string{status}
	for _, g := range s.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return append(lines, "", keyHelp)
}
