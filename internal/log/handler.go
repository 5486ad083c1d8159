package log

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// sensitiveKeys contains attribute keys that are always masked.
var sensitiveKeys = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"password":      true,
	"passwd":        true,
	"secret":        true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"access_token":  true,
}

// sensitiveKeywords are substrings that mark a key or query parameter as sensitive.
var sensitiveKeywords = []string{"password", "passwd", "secret", "token", "auth", "credential"}

// TidyHandler wraps an slog.Handler and rewrites attribute values before
// passing records on.
type TidyHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the user's home directory; empty disables path shortening.
	home string
}

// NewTidyHandler creates a TidyHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
func NewTidyHandler(handler slog.Handler) *TidyHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &TidyHandler{handler: handler, home: home}
}

// WithHome returns a copy of h that shortens paths under home.
// An empty home disables shortening.
func (h *TidyHandler) WithHome(home string) *TidyHandler {
	return &TidyHandler{handler: h.handler, home: filepath.Clean(home)}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TidyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *TidyHandler) Handle(ctx context.Context, r slog.Record) error {
	tidy := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		tidy.AddAttrs(h.tidyAttr(a))
		return true
	})
	return h.handler.Handle(ctx, tidy)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *TidyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	tidy := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		tidy[i] = h.tidyAttr(a)
	}
	return &TidyHandler{handler: h.handler.WithAttrs(tidy), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *TidyHandler) WithGroup(name string) slog.Handler {
	return &TidyHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// tidyAttr rewrites a single attribute, recursing into groups.
func (h *TidyHandler) tidyAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		tidy := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			tidy[i] = h.tidyAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(tidy...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	if strings.Contains(s, "?") {
		s = maskQuery(s)
	}
	return slog.String(a.Key, h.shortenPath(s))
}

// shortenPath replaces the home directory prefix of s with "~".
func (h *TidyHandler) shortenPath(s string) string {
	if h.home == "" || h.home == "." || h.home == string(filepath.Separator) {
		return s
	}
	if s == h.home {
		return "~"
	}
	if strings.HasPrefix(s, h.home+string(filepath.Separator)) {
		return "~" + s[len(h.home):]
	}
	return s
}

// isSensitiveKey reports whether an attribute key names a credential.
// The bare word "key" is not matched: it would hit keys like "primary_key".
func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if sensitiveKeys[k] {
		return true
	}
	for _, kw := range sensitiveKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

// maskQuery masks credential-like query parameters of a URL string.
// Strings that do not parse as URLs are returned unchanged.
func maskQuery(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.RawQuery == "" {
		return s
	}
	q := u.Query()
	changed := false
	for k := range q {
		if isSensitiveKey(k) {
			q.Set(k, MaskValue)
			changed = true
		}
	}
	if !changed {
		return s
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// NewLogger creates a text slog.Logger wrapped in a TidyHandler.
// verbose selects Debug level; otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTidyHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a JSON slog.Logger wrapped in a TidyHandler.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTidyHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

// handlerOptions returns the level settings for verbose or quiet output.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
