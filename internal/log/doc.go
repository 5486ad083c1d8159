// Package log provides the slog setup shared by every migtrends command.
//
// TidyHandler wraps any slog.Handler and rewrites attributes before they
// reach it:
//   - file paths under the user's home directory are shortened to "~/..."
//   - values of credential-like keys (password, token, secret, ...) are masked
//   - credential-like query parameters in logged URLs are masked
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Info("dataset loaded", "path", "/home/alice/data/emigrants.csv")
//	// path=~/data/emigrants.csv
package log
