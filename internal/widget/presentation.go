package widget

import (
	"context"
	"log/slog"
	"sync"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/log"
)

// ThemeSetter persists a theme choice on the authoritative side. It is
// invoked best-effort: a failure never affects local presentation state.
type ThemeSetter func(ctx context.Context, theme string) error

// Presentation tracks which slide is visible and which theme is active
// for one viewer. Navigation clamps at the deck bounds, new deck
// snapshots force a reconciliation (index back to 0), and theme
// selection is optimistic: adopted locally first, persisted
// asynchronously with the outcome discarded.
//
// The browser widget mirrors these transition rules in its script; this
// type is the authoritative expression used by the live preview hub.
type Presentation struct {
	mu      sync.Mutex
	index   int
	theme   string
	count   int
	persist ThemeSetter
	logger  log.Logger
}

// NewPresentation creates a presentation with no slides and the default
// theme. persist may be nil when theme choices need no remote echo.
func NewPresentation(persist ThemeSetter, logger log.Logger) *Presentation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Presentation{
		theme:   deck.DefaultTheme,
		persist: persist,
		logger:  logger,
	}
}

// Apply reconciles against a new authoritative deck snapshot: the
// visible slide resets to 0 and a recognized deck theme is adopted. An
// unrecognized theme keeps the previous local one.
func (p *Presentation) Apply(d deck.Deck) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.index = 0
	p.count = len(d.Slides)
	if deck.ValidTheme(d.Theme) {
		p.theme = d.Theme
	}
}

// Next advances one slide and returns the visible index. Navigating past
// the last slide is a no-op.
func (p *Presentation) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(p.index + 1)
}

// Prev steps back one slide and returns the visible index. Navigating
// before the first slide is a no-op.
func (p *Presentation) Prev() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(p.index - 1)
}

// GoTo jumps to the given slide, clamped to the deck bounds, and returns
// the visible index.
func (p *Presentation) GoTo(i int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(i)
}

// goTo clamps i into [0, count-1]. Callers must hold the lock.
func (p *Presentation) goTo(i int) int {
	if i < 0 {
		i = 0
	}
	if i > p.count-1 {
		i = p.count - 1
	}
	if i < 0 {
		// Empty deck.
		i = 0
	}
	p.index = i
	return p.index
}

// SelectTheme adopts a recognized theme locally, then asynchronously
// asks the ThemeSetter to persist it. Local state is the source of truth
// for display; a persistence failure is logged and discarded, never
// reverted. An unrecognized name keeps the previous theme.
func (p *Presentation) SelectTheme(ctx context.Context, name string) {
	if !deck.ValidTheme(name) {
		p.logger.Debug("ignoring unrecognized theme", "theme", name)
		return
	}

	p.mu.Lock()
	p.theme = name
	persist := p.persist
	p.mu.Unlock()

	if persist == nil {
		return
	}
	go func() {
		if err := persist(ctx, name); err != nil {
			p.logger.Debug("theme persistence failed, keeping local choice",
				"theme", name, "error", err)
		}
	}()
}

// Index returns the visible slide index.
func (p *Presentation) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Theme returns the active theme name.
func (p *Presentation) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}
