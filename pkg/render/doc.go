// Package render runs render passes and writes the page shell.
//
// A pass builds a page through the element runtime against one kind of
// host document:
//
//	r := render.NewRenderer(render.WithLogger(logger), render.WithMetrics(m))
//
//	res, err := r.SSR(ctx, main)          // markup and stylesheet
//	s, err := r.Hydrate(ctx, page, main)  // re-attach to res's markup
//	s, err := r.Live(ctx, main)           // build a fresh live document
//
// main is any func(*element.Runtime) error; program.Interpreter.Main
// returns one. Runtime panics raised during a pass (hydration mismatches,
// unknown property kinds) are recovered at the pass boundary and returned
// as errors. Each pass opens an OpenTelemetry span named
// "ftd.render.<mode>" and, when metrics are configured, counts renders,
// nodes and classes and observes the pass duration.
//
// Page writes a complete HTML document around an SSR result, embedding the
// state snapshot a hydration pass needs; StateFromPage reads it back.
package render
