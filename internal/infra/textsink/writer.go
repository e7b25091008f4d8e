package textsink

import (
	"context"
	"io"
	"strings"

	"github.com/ivan-guerra/rot13/internal/domain"
)

// Writer writes transformed text to W. With TrailingNewline set, the output is
// terminated by a newline unless the text already ends with one.
type Writer struct {
	W               io.Writer
	TrailingNewline bool
}

func NewWriter(w io.Writer, trailingNewline bool) *Writer {
	return &Writer{W: w, TrailingNewline: trailingNewline}
}

func (s *Writer) WriteText(_ context.Context, text string) error {
	if s.TrailingNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(s.W, text); err != nil {
		return &domain.OpError{
			Op:   "textsink.write",
			Kind: domain.KindOutputWrite,
			Err:  err,
		}
	}
	return nil
}
