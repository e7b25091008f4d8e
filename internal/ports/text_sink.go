package ports

import "context"

// TextSink receives the transformed text.
type TextSink interface {
	WriteText(ctx context.Context, text string) error
}
