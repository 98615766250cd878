package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCurrentDeck indicates a mutation was invoked before any deck
	// was generated in this process.
	ErrNoCurrentDeck = errors.New("no deck found, generate a pitch deck first")

	// ErrInvalidSlideIndex indicates an index outside [0, slide count).
	ErrInvalidSlideIndex = errors.New("invalid slide index")

	// ErrInvalidTheme indicates a theme name outside the fixed theme set.
	ErrInvalidTheme = errors.New("invalid theme")
)

// SlideIndexError reports an out-of-range slide index together with the
// valid range. Unwraps to ErrInvalidSlideIndex.
type SlideIndexError struct {
	Index int
	Count int
}

func (e *SlideIndexError) Error() string {
	return fmt.Sprintf("invalid slide index %d: deck has %d slides (0-%d)", e.Index, e.Count, e.Count-1)
}

func (e *SlideIndexError) Unwrap() error { return ErrInvalidSlideIndex }

// ThemeError reports a rejected theme name together with the allowed set.
// Unwraps to ErrInvalidTheme.
type ThemeError struct {
	Name string
}

func (e *ThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q, choose one of: %s", e.Name, strings.Join(Themes, ", "))
}

func (e *ThemeError) Unwrap() error { return ErrInvalidTheme }
