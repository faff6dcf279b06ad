package fold

import (
	"github.com/platewise/menuscan/pkg/menuscan/classify"
)

// Line is a normalized line paired with its classification.
type Line struct {
	Text string
	Role classify.Role
}

// Fold merges modifier and description lines into the preceding title line.
// Modifiers are space-joined onto the last entry; descriptions are em-dash
// joined, but only when the last entry itself has title shape. A modifier
// or description with no usable preceding title is dropped, never emitted
// as its own candidate. Noise lines never reach the output. First-seen
// order is preserved.
func Fold(lines []Line) []string {
	var out []string
	for _, ln := range lines {
		switch ln.Role {
		case classify.RoleModifier:
			if n := len(out); n > 0 {
				out[n-1] += " " + ln.Text
			}
		case classify.RoleDescription:
			if n := len(out); n > 0 && titleShaped(out[n-1]) {
				out[n-1] += " — " + ln.Text
			}
		case classify.RoleTitle:
			out = append(out, ln.Text)
		}
	}
	return out
}

// titleShaped: short or ALL-CAPS, the shapes menus use for dish names.
func titleShaped(s string) bool {
	return classify.IsShort(s) || classify.IsAllCaps(s)
}
