// Package textsource provides the input side of the rot13 command: an explicit
// argument or a reader consumed to EOF.
package textsource

import (
	"context"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/ivan-guerra/rot13/internal/domain"
)

// Arg is text passed explicitly on the command line.
type Arg string

func (a Arg) ReadText(context.Context) (string, error) {
	return string(a), nil
}

// Reader reads all of R and requires it to be valid UTF-8.
type Reader struct {
	R io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{R: r}
}

func (s *Reader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := io.ReadAll(transform.NewReader(s.R, encoding.UTF8Validator))
	if err != nil {
		return "", &domain.OpError{
			Op:   "textsource.read",
			Kind: domain.KindInputRead,
			Err:  err,
		}
	}
	return string(b), nil
}
