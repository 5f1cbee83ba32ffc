// Package pdfio gives the pipeline uniform access to statement PDFs. Two
// backends of differing fidelity sit behind the Document interface: the
// primary one recovers table cells from word positions, the fallback only
// yields plain text, which pushes callers onto their text-line scanning
// path.
package pdfio

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrTablesUnavailable is returned by backends that cannot recover table
// structure. Callers fall back to scanning page text line by line.
var ErrTablesUnavailable = errors.New("pdfio: table recovery not supported by this backend")

// Document is read-only access to one statement PDF. Pages are 1-based.
type Document interface {
	// NumPages reports the page count.
	NumPages() int
	// PageText returns the plain text of one page.
	PageText(page int) (string, error)
	// PageTables returns the tables recovered from one page, each table a
	// slice of rows of cell strings. Backends without positional data
	// return ErrTablesUnavailable.
	PageTables(page int) ([][][]string, error)
	// Close releases the underlying file.
	Close() error
}

// Open opens a statement PDF with the highest-fidelity backend available,
// falling back to the plain-text backend when the primary one cannot parse
// the file.
func Open(path string, logger *slog.Logger) (Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := openPositional(path)
	if err == nil {
		return doc, nil
	}
	logger.Warn("positional pdf backend failed, trying plain-text backend",
		slog.String("path", path),
		slog.Any("error", err),
	)

	fallback, ferr := openPlainText(path)
	if ferr != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, ferr)
	}
	return fallback, nil
}
