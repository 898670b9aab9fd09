// Package editor abstracts the document handle the preview dialog borrows:
// file identity, content type, and the current text.
package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Editor exposes the base document to the dialog. The dialog borrows the
// editor; it never writes through it.
type Editor interface {
	// Name identifies the document, typically its file path.
	Name() string

	// ContentType is the document's MIME type, best effort.
	ContentType() string

	// Text returns the document's current text.
	Text(ctx context.Context) (string, error)
}

// File is an Editor backed by a file on disk. Each Text call re-reads the
// file, matching an editor buffer that is fetched fresh per request.
type File struct {
	Path string
}

func (f File) Name() string { return f.Path }

func (f File) ContentType() string { return contentTypeFor(f.Path) }

func (f File) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return string(data), nil
}

// Buffer is an in-memory Editor for tests and embedding callers.
type Buffer struct {
	DocName string
	Type    string
	Content string
}

func (b Buffer) Name() string { return b.DocName }

func (b Buffer) ContentType() string {
	if b.Type != "" {
		return b.Type
	}
	return contentTypeFor(b.DocName)
}

func (b Buffer) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.Content, nil
}

// contentTypeFor resolves a MIME type from the file name via the chroma
// lexer registry, falling back to the extension and then to plain text.
func contentTypeFor(filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return "text/plain"
	}
	cfg := lexer.Config()
	if len(cfg.MimeTypes) > 0 {
		return cfg.MimeTypes[0]
	}
	return "text/plain"
}

// LanguageFor returns the chroma language name for a file, for display.
func LanguageFor(filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return "plain text"
	}
	lexer = chroma.Coalesce(lexer)
	return lexer.Config().Name
}
