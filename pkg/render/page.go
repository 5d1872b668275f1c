package render

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/FifthTry/ftd/internal/errors"
)

// StateElementID is the id of the script element holding the state
// snapshot.
const StateElementID = "ftd-state"

// stateType keeps browsers from executing the snapshot.
const stateType = "application/x-ftd-state"

// PageData is everything the page shell renders.
type PageData struct {
	// Page is the page name, recorded next to the snapshot.
	Page  string
	Title string
	// Lang defaults to "en".
	Lang string
	Meta []MetaTag

	// Result is the SSR output placed in <head> and <body>.
	Result *Result

	// State is the encoded state snapshot; empty omits it.
	State string

	// ReloadURL is the dev reload websocket path; empty omits the script.
	ReloadURL string

	// Dark and Mobile add the "dark" and "mobile" body classes that select
	// the alternate color and typography rules.
	Dark   bool
	Mobile bool
}

// MetaTag is a <meta> element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// Page returns the page shell component.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, pageHTML(data))
		return err
	})
}

// RenderPage writes the page shell to w.
func RenderPage(ctx context.Context, w io.Writer, data PageData) error {
	return Page(data).Render(ctx, w)
}

func pageHTML(data PageData) string {
	lang := data.Lang
	if lang == "" {
		lang = "en"
	}
	res := data.Result
	if res == nil {
		res = &Result{}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + templ.EscapeString(lang) + `">` + "\n")

	b.WriteString("<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if data.Title != "" {
		b.WriteString("<title>" + templ.EscapeString(data.Title) + "</title>\n")
	}
	for _, m := range data.Meta {
		b.WriteString("<meta")
		if m.Name != "" {
			b.WriteString(` name="` + templ.EscapeString(m.Name) + `"`)
		}
		if m.Property != "" {
			b.WriteString(` property="` + templ.EscapeString(m.Property) + `"`)
		}
		b.WriteString(` content="` + templ.EscapeString(m.Content) + `">` + "\n")
	}
	b.WriteString(res.Stylesheet)
	b.WriteString("\n</head>\n")

	var classes []string
	if data.Dark {
		classes = append(classes, "dark")
	}
	if data.Mobile {
		classes = append(classes, "mobile")
	}
	if len(classes) > 0 {
		b.WriteString(`<body class="` + strings.Join(classes, " ") + `">`)
	} else {
		b.WriteString("<body>")
	}
	b.WriteString(res.Body)

	if data.State != "" {
		b.WriteString("\n" + `<script type="` + stateType + `" id="` + StateElementID + `" data-page="` +
			templ.EscapeString(data.Page) + `">` + data.State + "</script>")
	}
	if data.ReloadURL != "" {
		b.WriteString("\n<script>" + reloadScript(data.ReloadURL) + "</script>")
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// reloadScript listens on the dev channel and reloads on a reload frame
// (first byte 0x01) or when the server goes away.
func reloadScript(url string) string {
	quoted, _ := json.Marshal(url)
	return `(function(){var p=location.protocol==="https:"?"wss://":"ws://";` +
		`var ws=new WebSocket(p+location.host+` + string(quoted) + `);ws.binaryType="arraybuffer";` +
		`ws.onmessage=function(e){if(new Uint8Array(e.data)[0]===1)location.reload()};` +
		`ws.onclose=function(){setTimeout(function(){location.reload()},1000)}})();`
}

// StateFromPage reads the page name and state snapshot from a rendered
// page. A page without a snapshot fails with E041.
func StateFromPage(r io.Reader) (page, state string, err error) {
	z := html.NewTokenizer(r)
	inState := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return "", "", errors.New("E041").WithDetail("page has no state snapshot")
			}
			return "", "", errors.New("E041").Wrap(z.Err())

		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Script {
				continue
			}
			var id, name string
			for _, a := range tok.Attr {
				switch a.Key {
				case "id":
					id = a.Val
				case "data-page":
					name = a.Val
				}
			}
			if id == StateElementID {
				inState = true
				page = name
			}

		case html.TextToken:
			if inState {
				return page, strings.TrimSpace(string(z.Text())), nil
			}

		case html.EndTagToken:
			if inState {
				return page, "", nil
			}
		}
	}
}
