package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/dom"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/vdom"
)

// TracerName is the default OpenTelemetry tracer name.
const TracerName = "github.com/FifthTry/ftd/pkg/render"

// Main builds a page under the runtime's body.
type Main func(rt *element.Runtime) error

// Renderer runs render passes. It holds no per-pass state and is safe for
// concurrent use; every pass gets its own runtime and document.
type Renderer struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Passes log at Debug, failures at Error.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithTracer sets the tracer. The default comes from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger: slog.Default(),
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the output of an SSR pass.
type Result struct {
	// Body is the markup of the body's children.
	Body string
	// Stylesheet is the <style id="styles"> element for the pass.
	Stylesheet string
	// Nodes is the number of ordinals drawn.
	Nodes int
	// Elements is the number of addressable nodes in Body. It is below
	// Nodes when the pass destroyed nodes it created.
	Elements int
	// Classes is the number of registered rules.
	Classes  int
	Duration time.Duration
}

// Document returns a minimal HTML document holding the result.
func (res *Result) Document() string {
	return "<html><head>" + res.Stylesheet + "</head><body>" + res.Body + "</body></html>"
}

// SSR renders main into a fresh server-side tree.
func (r *Renderer) SSR(ctx context.Context, main Main) (*Result, error) {
	doc := dom.NewSSR(vdom.NewCounter())
	rt, stats, err := r.pass(ctx, doc, main)
	if err != nil {
		return nil, err
	}
	return &Result{
		Body:       doc.Root().ChildrenHTML(),
		Stylesheet: rt.Stylesheet(),
		Nodes:      stats.nodes,
		Elements:   vdom.Count(doc.Root()),
		Classes:    stats.classes,
		Duration:   stats.duration,
	}, nil
}

// Hydrate parses server-rendered page markup and replays main over it.
// Every server node must be claimed; leftovers mean the page was rendered
// from a different program or state and fail with E040. On success the
// document is switched to live mode.
func (r *Renderer) Hydrate(ctx context.Context, page io.Reader, main Main) (*Session, error) {
	doc, err := dom.NewHydrate(vdom.NewCounter(), page)
	if err != nil {
		return nil, err
	}
	rt, _, err := r.pass(ctx, doc, func(rt *element.Runtime) error {
		if err := main(rt); err != nil {
			return err
		}
		if n := doc.Pending(); n > 0 {
			return errors.New("E040").WithDetailf("%d server node(s) were not claimed", n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	doc.Finish()
	return &Session{rt: rt, doc: doc.LiveDocument}, nil
}

// Live builds main into a fresh live document.
func (r *Renderer) Live(ctx context.Context, main Main) (*Session, error) {
	doc := dom.NewLive(vdom.NewCounter())
	rt, _, err := r.pass(ctx, doc, main)
	if err != nil {
		return nil, err
	}
	return &Session{rt: rt, doc: doc}, nil
}

type passStats struct {
	nodes    int
	classes  int
	duration time.Duration
}

func (r *Renderer) pass(ctx context.Context, doc dom.Document, main Main) (*element.Runtime, passStats, error) {
	mode := doc.Mode().String()
	_, span := r.tracer.Start(ctx, "ftd.render."+mode)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, passStats{}, err
	}

	start := time.Now()
	rt := element.NewRuntime(doc)
	err := run(rt, main)
	stats := passStats{
		nodes:    doc.Counter().Current(),
		classes:  rt.Registry().Len(),
		duration: time.Since(start),
	}

	span.SetAttributes(
		attribute.String("ftd.mode", mode),
		attribute.Int("ftd.nodes", stats.nodes),
		attribute.Int("ftd.classes", stats.classes),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.observe(mode, "error", stats.nodes, stats.classes, stats.duration)
		r.logger.Error("render failed", "mode", mode, "code", errors.Code(err), "error", err)
		return nil, stats, err
	}

	span.SetStatus(codes.Ok, "")
	r.metrics.observe(mode, "ok", stats.nodes, stats.classes, stats.duration)
	r.logger.Debug("render",
		"mode", mode,
		"nodes", stats.nodes,
		"classes", stats.classes,
		"duration", stats.duration,
	)
	return rt, stats, nil
}

// run calls main, turning a panic into an error.
func run(rt *element.Runtime, main Main) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("render: panic: %v", rec)
		}
	}()
	return main(rt)
}

// Session is a live or hydrated document that stays reactive after the
// pass.
type Session struct {
	rt  *element.Runtime
	doc *dom.LiveDocument
}

// Runtime returns the session's runtime; its Body is the root for later
// updates.
func (s *Session) Runtime() *element.Runtime { return s.rt }

// Document returns the host document.
func (s *Session) Document() *dom.LiveDocument { return s.doc }

// HTML returns the whole document.
func (s *Session) HTML() string { return s.doc.HTML() }

// BodyHTML returns the markup of the body's children.
func (s *Session) BodyHTML() string { return s.doc.BodyHTML() }

// Stylesheet returns the rules appended to the live stylesheet.
func (s *Session) Stylesheet() string { return s.doc.Stylesheet() }
