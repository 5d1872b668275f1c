// Package dom is the host document abstraction.
//
// One Document interface has three implementations, chosen once per render
// pass:
//
//   - SSRDocument creates vdom nodes stamped with their creation ordinal;
//     the tree serializes to an HTML string.
//   - LiveDocument creates real nodes in an HTML document tree
//     (golang.org/x/net/html) standing in for a browser document.
//   - HydrateDocument creates nothing during its pass: each CreateElement
//     call finds the server-rendered node whose data-id equals the ordinal.
//
// All three draw exactly one ordinal per CreateElement call from a shared
// counter, except for the body, which is the pass root.
package dom
