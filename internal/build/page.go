package build

import (
	"bytes"
	"context"
	"io"
	"sort"

	"github.com/FifthTry/ftd/pkg/program"
	"github.com/FifthTry/ftd/pkg/render"
)

// Request describes one page render.
type Request struct {
	// Overrides replace initial cell and list values, keyed by name.
	Overrides map[string]string

	Dark   bool
	Mobile bool

	// ReloadURL adds the dev reload script when set.
	ReloadURL string
}

// RenderPage renders the page program of in to a complete document on w,
// with the state snapshot hydration replays from.
func RenderPage(ctx context.Context, r *render.Renderer, in *program.Interpreter, req Request, w io.Writer) (*render.Result, error) {
	prog := in.Program()
	st := program.NewState(prog)

	names := make([]string, 0, len(req.Overrides))
	for name := range req.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := st.Override(name, req.Overrides[name]); err != nil {
			return nil, err
		}
	}

	res, err := r.SSR(ctx, in.Main(st))
	if err != nil {
		return nil, err
	}
	snapshot, err := st.Encode()
	if err != nil {
		return nil, err
	}

	err = render.RenderPage(ctx, w, render.PageData{
		Page:      prog.Name,
		Title:     prog.Name,
		Result:    res,
		State:     snapshot,
		ReloadURL: req.ReloadURL,
		Dark:      req.Dark,
		Mobile:    req.Mobile,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Verify hydrates a rendered document with the program of in, replaying
// the state snapshot embedded in it. A document rendered from another
// program or state fails with E040 or E041.
func Verify(ctx context.Context, r *render.Renderer, in *program.Interpreter, page []byte) (*render.Session, error) {
	_, snapshot, err := render.StateFromPage(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	st, err := program.DecodeState(in.Program(), snapshot)
	if err != nil {
		return nil, err
	}
	return r.Hydrate(ctx, bytes.NewReader(page), in.Main(st))
}
