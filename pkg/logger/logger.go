package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Option configures New.
type Option func(*options)

type options struct {
	out        io.Writer
	level      slog.Leveler
	text       bool
	extractors []ContextExtractor
}

// WithOutput sets the destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		if l != nil {
			o.level = l
		}
	}
}

// WithText switches from JSON to logfmt-style text output.
func WithText() Option {
	return func(o *options) {
		o.text = true
	}
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a logger. Output is JSON unless WithText is given.
func New(opts ...Option) *slog.Logger {
	o := &options{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.text {
		h = slog.NewTextHandler(o.out, ho)
	} else {
		h = slog.NewJSONHandler(o.out, ho)
	}
	return slog.New(NewLogHandlerDecorator(h, o.extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type controlKey struct{}

type control struct {
	kind string
	name string
}

// WithControl records the control being built or rendered in ctx.
func WithControl(ctx context.Context, kind, name string) context.Context {
	return context.WithValue(ctx, controlKey{}, control{kind: kind, name: name})
}

// ControlExtractor attaches the control recorded by WithControl as a "control" group.
func ControlExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		c, ok := ctx.Value(controlKey{}).(control)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("control", slog.String("kind", c.kind), slog.String("name", c.name)), true
	}
}
