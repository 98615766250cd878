package deck

import "slices"

// UpdateSlideInput holds the partial-update fields for UpdateSlide. Nil
// pointers (and a nil slice) mean "leave the field untouched".
type UpdateSlideInput struct {
	Index   int
	Title   *string
	Content *string
	Bullets []string
}

// UpdateSlide overwrites the provided fields of the slide at Index on the
// current deck, leaving omitted fields as they are. Returns the updated
// deck snapshot and its text rendering.
func (s *Store) UpdateSlide(in UpdateSlideInput) (Deck, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.current()
	if !ok {
		return Deck{}, "", ErrNoCurrentDeck
	}
	if in.Index < 0 || in.Index >= len(d.Slides) {
		return Deck{}, "", &SlideIndexError{Index: in.Index, Count: len(d.Slides)}
	}

	slide := &d.Slides[in.Index]
	if in.Title != nil {
		slide.Title = *in.Title
	}
	if in.Content != nil {
		slide.Content = *in.Content
	}
	if in.Bullets != nil {
		slide.Bullets = slices.Clone(in.Bullets)
	}

	s.logger.Info("slide updated", "deck_id", d.ID, "index", in.Index)
	return d.Clone(), Render(d), nil
}

// AddSlideInput holds the fields for AddSlide. Type defaults to "custom"
// when empty. Position is a hint: nil or out of range means append.
type AddSlideInput struct {
	Title    string
	Content  string
	Type     string
	Position *int
	Bullets  []string
}

// AddSlide builds a new slide and inserts it at the requested position,
// or appends when the position is omitted or out of range. An out-of-range
// position is deliberately not an error.
func (s *Store) AddSlide(in AddSlideInput) (Deck, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.current()
	if !ok {
		return Deck{}, "", ErrNoCurrentDeck
	}

	slideType := in.Type
	if slideType == "" {
		slideType = "custom"
	}
	slide := NewSlide(slideType, in.Title, SlideSpec{
		Content: in.Content,
		Bullets: in.Bullets,
	})

	if in.Position != nil && *in.Position >= 0 && *in.Position <= len(d.Slides) {
		d.Slides = slices.Insert(d.Slides, *in.Position, slide)
	} else {
		d.Slides = append(d.Slides, slide)
	}

	s.logger.Info("slide added", "deck_id", d.ID, "slide_id", slide.ID, "type", slideType)
	return d.Clone(), Render(d), nil
}

// RemoveSlide deletes the slide at index from the current deck; the
// remaining slides shift down. No minimum slide count is enforced, so a
// deck may be reduced to zero slides.
func (s *Store) RemoveSlide(index int) (Deck, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.current()
	if !ok {
		return Deck{}, "", ErrNoCurrentDeck
	}
	if index < 0 || index >= len(d.Slides) {
		return Deck{}, "", ErrInvalidSlideIndex
	}

	removed := d.Slides[index]
	d.Slides = slices.Delete(d.Slides, index, index+1)

	s.logger.Info("slide removed", "deck_id", d.ID, "slide_id", removed.ID, "index", index)
	return d.Clone(), Render(d), nil
}

// ChangeTheme sets the current deck's theme. The theme set is enforced
// here as well as in the tool schema: the live preview channel reaches
// this method without passing through schema validation, so the store
// owns the invariant.
func (s *Store) ChangeTheme(theme string) (Deck, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.current()
	if !ok {
		return Deck{}, "", ErrNoCurrentDeck
	}
	if !ValidTheme(theme) {
		return Deck{}, "", &ThemeError{Name: theme}
	}

	d.Theme = theme
	s.logger.Info("theme changed", "deck_id", d.ID, "theme", theme)
	return d.Clone(), Render(d), nil
}
