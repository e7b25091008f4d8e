package ports

import "context"

// TextSource supplies the text to transform (e.g., a CLI argument or stdin).
type TextSource interface {
	ReadText(ctx context.Context) (string, error)
}
