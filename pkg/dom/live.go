package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/FifthTry/ftd/pkg/vdom"
)

// shell is the empty document a live render starts from.
const shell = `<!DOCTYPE html><html><head><style id="styles"></style></head><body></body></html>`

// LiveDocument mutates an HTML document tree.
type LiveDocument struct {
	counter  *vdom.Counter
	root     *html.Node
	body     *html.Node
	styles   *html.Node
	handlers *handlerTable
}

// NewLive creates a live document over an empty page.
func NewLive(counter *vdom.Counter) *LiveDocument {
	root, err := html.Parse(strings.NewReader(shell))
	if err != nil {
		// strings.Reader never fails and the parser accepts any input.
		panic(err)
	}
	return newLiveFromTree(counter, root, newHandlerTable())
}

func newLiveFromTree(counter *vdom.Counter, root *html.Node, handlers *handlerTable) *LiveDocument {
	return &LiveDocument{
		counter:  counter,
		root:     root,
		body:     findElement(root, isTag(TagBody)),
		styles:   findElement(root, hasID("styles")),
		handlers: handlers,
	}
}

// Mode implements Document.
func (d *LiveDocument) Mode() Mode { return ModeLive }

// Body implements Document.
func (d *LiveDocument) Body() Node { return d.wrap(d.body) }

// Counter implements Document.
func (d *LiveDocument) Counter() *vdom.Counter { return d.counter }

// CreateElement implements Document.
func (d *LiveDocument) CreateElement(tag string) Node {
	if tag == TagBody {
		return d.Body()
	}
	d.counter.Next()
	if tag == TagComment {
		return d.wrap(&html.Node{Type: html.CommentNode, Data: CommentText})
	}
	return d.wrap(&html.Node{Type: html.ElementNode, Data: tag})
}

// AppendStyle implements Document.
func (d *LiveDocument) AppendStyle(rule string) {
	if d.styles == nil {
		head := findElement(d.root, isTag("head"))
		if head == nil {
			return
		}
		d.styles = &html.Node{
			Type: html.ElementNode,
			Data: "style",
			Attr: []html.Attribute{{Key: "id", Val: "styles"}},
		}
		head.AppendChild(d.styles)
	}
	d.styles.AppendChild(&html.Node{Type: html.TextNode, Data: rule + "\n"})
}

// Stylesheet returns the text of the live stylesheet.
func (d *LiveDocument) Stylesheet() string {
	if d.styles == nil {
		return ""
	}
	var b strings.Builder
	for c := d.styles.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// Render writes the whole document.
func (d *LiveDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML renders the whole document to a string.
func (d *LiveDocument) HTML() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// BodyHTML renders only the children of the body.
func (d *LiveDocument) BodyHTML() string {
	var buf bytes.Buffer
	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func (d *LiveDocument) wrap(n *html.Node) *htmlNode {
	return &htmlNode{n: n, handlers: d.handlers}
}
