// Package log provides the audit's logging setup, built on top of the
// standard slog package.
//
// Analysis attributes routinely carry free text lifted straight from
// crawled pages: fact context windows, banner OCR blocks, section items.
// Logging those verbatim floods the output with page prose, so the
// TrimHandler caps string attribute values at a fixed length before
// passing records to the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("fact extracted",
//	    "context", fact.Context, // long windows are trimmed
//	    "url", fact.SourceURL,
//	)
package log
