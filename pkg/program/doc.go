// Package program turns page sources into instruction streams and replays
// them through the element runtime.
//
// A page source (YAML or JSON) declares cells, lists and a node tree:
//
//	name: counter
//	cells:
//	  count: 0
//	  open: false
//	lists:
//	  todos: [milk, eggs]
//	body:
//	  - kind: column
//	    props:
//	      padding: 8px
//	    children:
//	      - kind: integer
//	        props:
//	          integer-value: $count
//	        on_click: {action: increment, target: count, value: 1}
//	      - kind: text
//	        if: open
//	        props:
//	          string-value: Details
//	      - kind: text
//	        for: todos
//	        props:
//	          string-value: $item
//
// A prop value of "$name" binds the cell name; "$item" and "$index" bind
// the entry of the innermost loop. "if" accepts "cell" or "!cell".
//
// Compile flattens a source into a protocol.Program. An Interpreter replays
// a program against a State, the set of live cells and lists, and a State
// can be snapshotted so a hydration pass starts from the values the server
// rendered with.
package program
