package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/termselect/internal/logging/events"
	"github.com/atomicstack/termselect/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultTypeAheadReset is how long typed characters accumulate into one
// query.
const DefaultTypeAheadReset = time.Second

// TypeAhead moves a menu's selection to the item best matching what the user
// types. Typing after a pause of at least the reset interval starts a new
// query.
type TypeAhead struct {
	reset time.Duration
	query string
	last  time.Time
	now   func() time.Time
}

// AttachTypeAhead subscribes a TypeAhead to m's key events. A non-positive
// reset uses DefaultTypeAheadReset.
func AttachTypeAhead(m *Menu, reset time.Duration) *TypeAhead {
	if reset <= 0 {
		reset = DefaultTypeAheadReset
	}
	ta := &TypeAhead{reset: reset, now: time.Now}
	m.OnKeyPressed(ta.handleKey)
	return ta
}

// Query returns the characters typed so far.
func (t *TypeAhead) Query() string {
	return t.query
}

func (t *TypeAhead) handleKey(m *Menu, k tea.KeyMsg) {
	if k.Type != tea.KeyRunes || k.Alt || len(k.Runes) == 0 {
		return
	}
	now := t.now()
	if now.Sub(t.last) >= t.reset {
		t.query = ""
	}
	t.last = now
	t.query += string(k.Runes)

	match := BestMatch(m.Items(), t.query)
	if match == nil || match == m.Items().Selected() {
		return
	}
	if m.Items().Select(match) {
		events.Menu.Jump(m.Name(), t.query, match.Label)
		m.Render(false)
	}
}

// BestMatch returns the enabled item whose label best matches query: an
// exact match first, then a prefix, then a substring, then the closest fuzzy
// match. Ties go to the earlier item. It returns nil when nothing matches.
func BestMatch(list *menu.List, query string) *menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	var candidates []*menu.Item
	for item := range list.All() {
		if item.Enabled {
			candidates = append(candidates, item)
		}
	}
	lower := strings.ToLower(trimmed)
	for _, item := range candidates {
		if strings.EqualFold(item.Label, trimmed) {
			return item
		}
	}
	for _, item := range candidates {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return item
		}
	}
	for _, item := range candidates {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return item
		}
	}
	labels := make([]string, len(candidates))
	for i, item := range candidates {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return nil
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return candidates[best.OriginalIndex]
}
