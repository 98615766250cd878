// Package deck implements the pitch deck document model: slide and deck
// records, the template generator, the in-memory registry with its single
// "current deck" pointer, and the mutation operations exposed as tools.
package deck

import (
	"slices"

	"github.com/google/uuid"
)

// Themes is the closed set of visual themes, in presentation order.
// The first entry is the default for newly generated decks.
var Themes = []string{"midnight", "clean", "sunset", "forest", "electric"}

// DefaultTheme is the theme assigned to a freshly generated deck.
const DefaultTheme = "midnight"

// ValidTheme reports whether name is a member of the theme set.
func ValidTheme(name string) bool {
	return slices.Contains(Themes, name)
}

// Metric is a single labeled figure shown as a card on a slide.
type Metric struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Slide is one addressable unit of deck content. Type is a free-form
// archetype tag ("title", "problem", ..., "custom"); unknown tags are
// accepted so callers can introduce their own slide kinds.
type Slide struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Content  string   `json:"content,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Metrics  []Metric `json:"metrics,omitempty"`
	Icon     string   `json:"icon,omitempty"`
}

// Deck is the full ordered document: company metadata, active theme, and
// the slide sequence. Slides[0] is always presented first.
type Deck struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"companyName"`
	Tagline     string  `json:"tagline"`
	Theme       string  `json:"theme"`
	Slides      []Slide `json:"slides"`
}

// SlideSpec carries the optional fields for NewSlide. Zero-valued fields
// are simply absent from the resulting slide.
type SlideSpec struct {
	Subtitle string
	Content  string
	Bullets  []string
	Metrics  []Metric
	Icon     string
}

// NewSlide builds a slide with a freshly generated id and the given
// optional fields merged in verbatim. Type is not validated against a
// closed set.
func NewSlide(slideType, title string, spec SlideSpec) Slide {
	return Slide{
		ID:       newID(),
		Type:     slideType,
		Title:    title,
		Subtitle: spec.Subtitle,
		Content:  spec.Content,
		Bullets:  spec.Bullets,
		Metrics:  spec.Metrics,
		Icon:     spec.Icon,
	}
}

// newID returns a short random token. Eight hex characters give 32 bits
// of randomness; collision within a single deck is treated as negligible.
func newID() string {
	return uuid.NewString()[:8]
}

// Clone returns a deep copy of the deck. Handing copies to renderers and
// push channels keeps store-held slides from being aliased outside the
// store lock.
func (d *Deck) Clone() Deck {
	out := *d
	out.Slides = make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		cs := s
		cs.Bullets = slices.Clone(s.Bullets)
		cs.Metrics = slices.Clone(s.Metrics)
		out.Slides[i] = cs
	}
	return out
}
