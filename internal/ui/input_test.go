package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/termselect/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTypeAheadList(t *testing.T, labels ...string) *menu.List {
	t.Helper()
	list, err := menu.NewList()
	require.NoError(t, err)
	for _, label := range labels {
		require.NoError(t, list.Add(menu.NewItem(label)))
	}
	return list
}

func TestBestMatch(t *testing.T) {
	list := newTypeAheadList(t, "Home", "Help", "Settings", "Exit", "Shell")

	cases := []struct {
		query string
		want  string
	}{
		{"help", "Help"},
		{"  EXIT ", "Exit"},
		{"h", "Home"},
		{"he", "Help"},
		{"ting", "Settings"},
		{"stg", "Settings"},
		{"shl", "Shell"},
	}
	for _, tc := range cases {
		match := BestMatch(list, tc.query)
		if assert.NotNil(t, match, tc.query) {
			assert.Equal(t, tc.want, match.Label, tc.query)
		}
	}
}

func TestBestMatchNoMatch(t *testing.T) {
	list := newTypeAheadList(t, "Home", "Help")

	assert.Nil(t, BestMatch(list, ""))
	assert.Nil(t, BestMatch(list, "   "))
	assert.Nil(t, BestMatch(list, "zzz"))
	assert.Nil(t, BestMatch(newTypeAheadList(t), "home"))
}

func TestBestMatchIgnoresDisabledItems(t *testing.T) {
	list := newTypeAheadList(t, "Archive", "About")
	list.Items()[0].Enabled = false

	match := BestMatch(list, "a")
	require.NotNil(t, match)
	assert.Equal(t, "About", match.Label)
	assert.Nil(t, BestMatch(list, "archive"))
}

func TestTypeAheadJumpsAndRenders(t *testing.T) {
	m, screen := newTestMenu(t, Arrowed, "Home", "Help", "Settings", "Exit")
	clock := time.Unix(0, 0)
	ta := AttachTypeAhead(m, time.Second)
	ta.now = func() time.Time { return clock }
	m.Render(true)

	m.HandleKey(Key("s"))
	assert.Equal(t, "Settings", m.Items().Selected().Label)
	m.HandleKey(Key("e"))
	assert.Equal(t, "se", ta.Query())
	assert.Equal(t, "Settings", m.Items().Selected().Label)

	clock = clock.Add(2 * time.Second)
	m.HandleKey(Key("h"))
	assert.Equal(t, "h", ta.Query())
	assert.Equal(t, "Home", m.Items().Selected().Label)
	m.HandleKey(Key("e"))
	assert.Equal(t, "he", ta.Query())
	assert.Equal(t, []string{"Home", "> Help", "Settings", "Exit", ""}, screen.Lines())
}

func TestTypeAheadLeavesSelectionWithoutMatch(t *testing.T) {
	m, screen := newTestMenu(t, BackgroundFilled, "Home", "Help")
	AttachTypeAhead(m, 0)
	m.Render(true)
	writes := screen.Writes()

	m.HandleKey(Key("q"))
	m.HandleKey(Key("down"))

	assert.Equal(t, "Help", m.Items().Selected().Label)
	assert.Equal(t, writes+3, screen.Writes())
}
