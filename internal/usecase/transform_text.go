package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ivan-guerra/rot13/internal/ports"
	"github.com/ivan-guerra/rot13/internal/rot13"
)

type TransformText struct {
	source ports.TextSource
	sink   ports.TextSink
	logger *slog.Logger
}

type TransformOption func(*TransformText)

func WithLogger(l *slog.Logger) TransformOption {
	return func(uc *TransformText) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewTransformText(src ports.TextSource, sink ports.TextSink, opts ...TransformOption) *TransformText {
	uc := &TransformText{
		source: src,
		sink:   sink,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the whole input, applies ROT13 and hands the result to the sink.
// Nothing reaches the sink when the source fails.
func (uc *TransformText) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	text, err := uc.source.ReadText(ctx)
	if err != nil {
		uc.logger.Error("transform.read_failed", "error", err)
		return err
	}
	uc.logger.Debug("transform.start", "bytes", len(text))

	out := rot13.String(text)

	if err := uc.sink.WriteText(ctx, out); err != nil {
		uc.logger.Error("transform.write_failed", "error", err)
		return err
	}

	uc.logger.Debug("transform.done", "bytes", len(out), "duration", time.Since(start))
	return nil
}
