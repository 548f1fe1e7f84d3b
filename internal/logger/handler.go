package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter traces every filtering decision to stderr. Toggled by -debug-log.
var debugFilter bool

// SetDebugFilter enables or disables tracing of the filter itself.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

func debugFilterf(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg, file := recordSource(r)
	if pkg != "" && !h.cfg.packages.allows(pkg) {
		debugFilterf("dropped %q: package %s", r.Message, pkg)
		return nil
	}
	if file != "" && !h.cfg.files.allows(file) {
		debugFilterf("dropped %q: file %s", r.Message, file)
		return nil
	}

	tag, tagFound := recordTag(r)
	if tagFound && !h.cfg.tags.allows(tag) {
		debugFilterf("dropped %q: tag %s", r.Message, tag)
		return nil
	}
	// Filtering for specific tags drops untagged messages.
	if !tagFound && h.cfg.tags.enabled != nil {
		debugFilterf("dropped %q: untagged", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// recordSource resolves the package directory and base filename of the record's caller.
func recordSource(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			found = true
			return false
		}
		return true
	})
	return tag, found
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
