package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/core/find"
)

// Search finds query on the active sheet and jumps to the first match in
// the given direction.
func (e *Editor) Search(query string, forward bool) {
	if query == "" {
		return
	}
	count, res, ok := e.finder.Search(query, forward)
	if !ok {
		e.Notify(fmt.Sprintf("Pattern not found: %s", query))
		return
	}
	e.jumpToMatch(res)
	e.Notify(fmt.Sprintf("%d matches found for: %s", count, query))
}

// NextMatch jumps to the next match in the search direction, re-running the
// last query if the cache was invalidated.
func (e *Editor) NextMatch() {
	if res, ok := e.finder.Next(); ok {
		e.jumpToMatch(res)
	}
}

// PrevMatch jumps to the next match against the search direction.
func (e *Editor) PrevMatch() {
	if res, ok := e.finder.Prev(); ok {
		e.jumpToMatch(res)
	}
}

// DisableSearchHighlight hides match highlighting until the next search.
func (e *Editor) DisableSearchHighlight() {
	e.finder.DisableHighlight()
	e.Notify("Search highlighting disabled")
}

func (e *Editor) jumpToMatch(res find.Result) {
	e.SetCursor(res.Pos)
	switch {
	case res.Wrapped && res.Forward:
		e.Notify("Search wrapped to top")
	case res.Wrapped:
		e.Notify("Search wrapped to bottom")
	}
}
