package modehandler

import "github.com/bethropolis/tabula/internal/logger"

// executeSearch runs a search typed after '/' or '?'. An empty line
// repeats the previous query in the new direction.
func (mh *ModeHandler) executeSearch(query string, forward bool) {
	if query == "" {
		query = mh.editor.Finder().Query()
	}
	if query == "" {
		return
	}
	logger.DebugTagf("search", "ModeHandler: Searching for '%s' (forward=%v)", query, forward)
	mh.editor.Search(query, forward)
}
