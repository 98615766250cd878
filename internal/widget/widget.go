// Package widget renders the pitch deck as a self-contained interactive
// HTML slideshow and models the viewer-side presentation state machine.
package widget

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/deckforge/deckforge/internal/deck"
)

//go:embed widget.tmpl
var templateFS embed.FS

// Renderer builds the slideshow HTML document for a deck. The document
// is fully self-contained: styles, theme palettes, and the navigation
// script are inlined, with the deck snapshot embedded as JSON.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded widget template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "widget.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing widget template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// templateData is the widget template's input.
type templateData struct {
	Title    string
	DeckJSON template.JS
	WSPath   string
}

// Render produces the static widget document used as the MCP UI
// resource: the deck is inlined and all interaction is local.
func (r *Renderer) Render(d deck.Deck) (string, error) {
	return r.render(d, "")
}

// RenderLive produces the live preview variant: on top of the static
// widget, the script connects to wsPath, reconciles on pushed deck
// snapshots, and echoes theme selections back over the socket.
func (r *Renderer) RenderLive(d deck.Deck, wsPath string) (string, error) {
	if wsPath == "" {
		return "", fmt.Errorf("wsPath is required for live rendering")
	}
	return r.render(d, wsPath)
}

func (r *Renderer) render(d deck.Deck, wsPath string) (string, error) {
	// json.Marshal escapes <, >, and & so the payload can never close
	// the surrounding script element.
	deckJSON, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshaling deck: %w", err)
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, templateData{
		Title:    d.CompanyName,
		DeckJSON: template.JS(deckJSON),
		WSPath:   wsPath,
	})
	if err != nil {
		return "", fmt.Errorf("executing widget template: %w", err)
	}
	return buf.String(), nil
}
