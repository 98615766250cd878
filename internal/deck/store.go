package deck

import (
	"log/slog"
	"sync"

	"github.com/deckforge/deckforge/internal/log"
)

// Store is the process-wide deck registry plus the single "current deck"
// pointer that all mutation operations implicitly target. Decks are only
// ever added; nothing removes one for the life of the process.
//
// The store is safe for concurrent use: MCP requests and live preview
// connections run on separate goroutines, so every operation holds the
// lock for its full read-validate-mutate span.
type Store struct {
	mu           sync.RWMutex
	decks        map[string]*Deck
	currentID    string
	defaultTheme string
	logger       log.Logger
}

// StoreConfig configures a Store.
type StoreConfig struct {
	// DefaultTheme is assigned to newly generated decks. Empty means
	// DefaultTheme (the first member of the theme set).
	DefaultTheme string
	// Logger receives operation logs. Nil falls back to slog.Default().
	Logger log.Logger
}

// NewStore creates an empty store with no current deck.
func NewStore(cfg StoreConfig) *Store {
	theme := cfg.DefaultTheme
	if theme == "" {
		theme = DefaultTheme
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		decks:        make(map[string]*Deck),
		defaultTheme: theme,
		logger:       logger,
	}
}

// Generate builds a deck from the fixed nine-slide template, registers it,
// and makes it current. Returns the deck snapshot and its text rendering.
func (s *Store) Generate(in GenerateInput) (Deck, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := newDeckFromTemplate(in, s.defaultTheme)
	s.decks[d.ID] = d
	s.currentID = d.ID

	s.logger.Info("deck generated",
		"deck_id", d.ID,
		"company", d.CompanyName,
		"slides", len(d.Slides))

	return d.Clone(), Render(d)
}

// Current returns a snapshot of the current deck, or ok=false when the
// pointer is unset or points at a missing entry.
func (s *Store) Current() (Deck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.current()
	if !ok {
		return Deck{}, false
	}
	return d.Clone(), true
}

// Len reports how many decks have been generated in this process.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.decks)
}

// current resolves the current deck pointer. Callers must hold the lock.
func (s *Store) current() (*Deck, bool) {
	if s.currentID == "" {
		return nil, false
	}
	d, ok := s.decks[s.currentID]
	return d, ok
}
