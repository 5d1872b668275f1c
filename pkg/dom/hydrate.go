package dom

import (
	"io"
	"strconv"

	"golang.org/x/net/html"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/vdom"
)

// HydrateDocument re-attaches to server-rendered markup. During the pass
// every CreateElement call returns the existing node whose data-id equals
// the next ordinal. Finish switches the document to live behaviour.
type HydrateDocument struct {
	*LiveDocument
	index    map[int]*html.Node
	finished bool
}

// NewHydrate parses server-rendered HTML and indexes every data-id.
func NewHydrate(counter *vdom.Counter, r io.Reader) (*HydrateDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.New("E042").Wrap(err)
	}
	live := newLiveFromTree(counter, root, newHandlerTable())
	if live.body == nil {
		return nil, errors.New("E042")
	}

	d := &HydrateDocument{
		LiveDocument: live,
		index:        make(map[int]*html.Node),
	}
	d.indexIDs(root)
	return d, nil
}

func (d *HydrateDocument) indexIDs(n *html.Node) {
	if n.Type == html.ElementNode {
		if raw, ok := getAttribute(n, "data-id"); ok {
			if id, err := strconv.Atoi(raw); err == nil {
				d.index[id] = n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.indexIDs(c)
	}
}

// Mode implements Document.
func (d *HydrateDocument) Mode() Mode {
	if d.finished {
		return ModeLive
	}
	return ModeHydrate
}

// Finish ends the hydration pass. Later CreateElement calls create fresh
// nodes.
func (d *HydrateDocument) Finish() {
	d.finished = true
	d.index = nil
}

// CreateElement implements Document. A missing node means the SSR output
// and the instruction stream have diverged; it panics with E040.
func (d *HydrateDocument) CreateElement(tag string) Node {
	if d.finished || tag == TagBody {
		return d.LiveDocument.CreateElement(tag)
	}

	id := d.counter.Next()
	n, ok := d.index[id]
	if !ok {
		panic(errors.New("E040").
			WithDetailf(`no element with data-id="%d" for <%s>`, id, tag).
			WithSuggestion("hydrate with the same program and state that produced the HTML"))
	}
	delete(d.index, id)

	if tag == TagComment {
		comment := &html.Node{Type: html.CommentNode, Data: CommentText}
		if n.Parent != nil {
			n.Parent.InsertBefore(comment, n)
			n.Parent.RemoveChild(n)
		}
		return d.wrap(comment)
	}
	return d.wrap(n)
}

// Pending returns the number of server-rendered nodes not yet claimed.
func (d *HydrateDocument) Pending() int {
	return len(d.index)
}

// AppendStyle implements Document. Server-rendered pages already carry the
// stylesheet, so rules are only appended once the pass has finished.
func (d *HydrateDocument) AppendStyle(rule string) {
	if d.finished {
		d.LiveDocument.AppendStyle(rule)
	}
}
