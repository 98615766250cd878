package deck

import (
	"fmt"
	"strings"
)

// Render converts a deck into a deterministic multi-line text summary:
// a header block followed by one formatted block per slide in order.
// It is a human-auditable echo of every mutation, not the system of record.
func Render(d *Deck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — %s\n", d.CompanyName, d.Tagline)
	fmt.Fprintf(&b, "Theme: %s | Slides: %d\n", d.Theme, len(d.Slides))

	for i, s := range d.Slides {
		b.WriteString("\n")
		if s.Icon != "" {
			fmt.Fprintf(&b, "%d. %s %s\n", i+1, s.Icon, s.Title)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s.Title)
		}
		if s.Subtitle != "" {
			fmt.Fprintf(&b, "   %s\n", s.Subtitle)
		}
		if s.Content != "" {
			fmt.Fprintf(&b, "   %s\n", s.Content)
		}
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "   - %s\n", bullet)
		}
		for _, m := range s.Metrics {
			if m.Description != "" {
				fmt.Fprintf(&b, "   - **%s**: %s (%s)\n", m.Label, m.Value, m.Description)
			} else {
				fmt.Fprintf(&b, "   - **%s**: %s\n", m.Label, m.Value)
			}
		}
	}

	return b.String()
}
