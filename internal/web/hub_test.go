package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/deck"
)

// dialWS connects a websocket client to a running preview server.
func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + wsPath
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

// readDeckMessage blocks until the next deck push arrives.
func readDeckMessage(t *testing.T, ws *websocket.Conn) deckMessage {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg deckMessage
	require.NoError(t, ws.ReadJSON(&msg))
	return msg
}

// onlyPresentation returns the presentation state of the hub's single
// connected viewer.
func onlyPresentation(t *testing.T, h *Hub) presentationState {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.Len(t, h.conns, 1)
	for c := range h.conns {
		return presentationState{index: c.pres.Index(), theme: c.pres.Theme()}
	}
	panic("unreachable")
}

type presentationState struct {
	index int
	theme string
}

func TestHub_SeedsNewViewerWithCurrentDeck(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.Generate(deck.GenerateInput{CompanyName: "Acme", Description: "sells widgets"})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws := dialWS(t, ts)
	msg := readDeckMessage(t, ws)

	assert.Equal(t, "deck", msg.Type)
	assert.Equal(t, "Acme", msg.Deck.CompanyName)
	assert.Len(t, msg.Deck.Slides, 9)
}

func TestHub_PublishReachesAllViewers(t *testing.T) {
	srv, store, hub := newTestServer(t)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws1 := dialWS(t, ts)
	ws2 := dialWS(t, ts)
	require.Eventually(t, func() bool { return hub.Clients() == 2 },
		2*time.Second, 10*time.Millisecond)

	d, _ := store.Generate(deck.GenerateInput{CompanyName: "Globex", Description: "global exports"})
	hub.Publish(d)

	for _, ws := range []*websocket.Conn{ws1, ws2} {
		msg := readDeckMessage(t, ws)
		assert.Equal(t, "deck", msg.Type)
		assert.Equal(t, "Globex", msg.Deck.CompanyName)
	}
}

func TestHub_NavigationDrivesViewerState(t *testing.T) {
	srv, store, hub := newTestServer(t)
	store.Generate(deck.GenerateInput{CompanyName: "Acme", Description: "sells widgets"})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws := dialWS(t, ts)
	readDeckMessage(t, ws) // seed

	require.NoError(t, ws.WriteJSON(clientMessage{Action: "next"}))
	require.NoError(t, ws.WriteJSON(clientMessage{Action: "next"}))
	require.Eventually(t, func() bool { return onlyPresentation(t, hub).index == 2 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.WriteJSON(clientMessage{Action: "goto", Index: 100}))
	require.Eventually(t, func() bool { return onlyPresentation(t, hub).index == 8 },
		2*time.Second, 10*time.Millisecond, "goto clamps to last slide")

	require.NoError(t, ws.WriteJSON(clientMessage{Action: "prev"}))
	require.Eventually(t, func() bool { return onlyPresentation(t, hub).index == 7 },
		2*time.Second, 10*time.Millisecond)
}

func TestHub_ThemeSelectionPersistsAndBroadcasts(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.Generate(deck.GenerateInput{CompanyName: "Acme", Description: "sells widgets"})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws := dialWS(t, ts)
	readDeckMessage(t, ws) // seed

	require.NoError(t, ws.WriteJSON(clientMessage{Action: "theme", Theme: "forest"}))

	require.Eventually(t, func() bool {
		d, ok := store.Current()
		return ok && d.Theme == "forest"
	}, 2*time.Second, 10*time.Millisecond, "theme routes through the store")

	msg := readDeckMessage(t, ws)
	assert.Equal(t, "deck", msg.Type)
	assert.Equal(t, "forest", msg.Deck.Theme)
}

func TestHub_UnknownThemeIgnored(t *testing.T) {
	srv, store, hub := newTestServer(t)
	store.Generate(deck.GenerateInput{CompanyName: "Acme", Description: "sells widgets"})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws := dialWS(t, ts)
	readDeckMessage(t, ws) // seed

	require.NoError(t, ws.WriteJSON(clientMessage{Action: "theme", Theme: "neon"}))
	require.NoError(t, ws.WriteJSON(clientMessage{Action: "theme", Theme: "sunset"}))

	require.Eventually(t, func() bool {
		d, ok := store.Current()
		return ok && d.Theme == "sunset"
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "sunset", onlyPresentation(t, hub).theme)
}

func TestHub_DisconnectRemovesViewer(t *testing.T) {
	srv, _, hub := newTestServer(t)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	ws := dialWS(t, ts)
	require.Eventually(t, func() bool { return hub.Clients() == 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 },
		2*time.Second, 10*time.Millisecond)
}
