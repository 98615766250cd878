package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/deck"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestRender_ContainsDeckJSON(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	d := fiveSlideDeck()
	html, err := r.Render(d)
	require.NoError(t, err)

	assert.Contains(t, html, `"companyName":"Acme"`)
	assert.Contains(t, html, `"theme":"midnight"`)
	assert.Contains(t, html, d.Slides[0].ID)
}

func TestRender_ContainsThemePalettes(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(fiveSlideDeck())
	require.NoError(t, err)

	for _, theme := range deck.Themes {
		assert.Contains(t, html, theme+":", "palette for %s", theme)
		assert.Contains(t, html, `data-theme="`+theme+`"`, "swatch for %s", theme)
	}
}

func TestRender_StaticHasNoSocket(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(fiveSlideDeck())
	require.NoError(t, err)

	assert.NotContains(t, html, "new WebSocket")
}

func TestRenderLive_ConnectsSocket(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderLive(fiveSlideDeck(), "/ws")
	require.NoError(t, err)

	assert.Contains(t, html, "new WebSocket")
	assert.Contains(t, html, "/ws")
}

func TestRenderLive_RequiresPath(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.RenderLive(fiveSlideDeck(), "")
	assert.Error(t, err)
}

func TestRender_EscapesScriptBreakout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	d := fiveSlideDeck()
	d.Slides[0].Title = "</script><script>alert(1)</script>"

	html, err := r.Render(d)
	require.NoError(t, err)

	// json.Marshal escapes angle brackets, so the payload cannot close
	// the script element.
	assert.NotContains(t, html, "</script><script>alert(1)")
}

func TestRender_SelfContained(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(fiveSlideDeck())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "keydown")
	assert.Contains(t, html, "nav-arrow")
	assert.Contains(t, html, "slide-counter")
}
