// Package errors provides coded, actionable errors for the ftd runtime.
//
// Two kinds of failure reach users. Contract violations (an unknown
// property kind, a hydration pass that cannot find a server-rendered node)
// abort the render pass; tooling failures (bad config, undecodable program,
// failed upload) are returned normally. Both carry a stable code.
//
// # Error Categories
//
//   - runtime: instruction stream and runtime disagree
//   - hydration: SSR output and the hydration pass diverged
//   - program: program source or binary stream is malformed
//   - config: project configuration problems
//   - publish: object storage failures
//   - cli: command line usage
//
// # Usage
//
//	err := errors.New("E040").
//	    WithDetail(`no element with data-id="7"`).
//	    WithSuggestion("re-render the page with the same program")
//
//	fmt.Println(err.FormatTerminal())
package errors
