package dev

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/a-h/templ"

	"github.com/FifthTry/ftd/internal/errors"
)

// Recoverer turns a handler panic into a logged 500 error page.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				logger.Error("handler panicked",
					"path", r.URL.Path,
					"error", err,
					"stack", string(debug.Stack()),
				)
				writeErrorPage(w, http.StatusInternalServerError, err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusFor maps an error to the status the dev server answers with.
func statusFor(err error) int {
	switch errors.Code(err) {
	case "E502":
		return http.StatusNotFound
	case "E202", "E204":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeErrorPage writes an HTML error page for err.
func writeErrorPage(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	fmt.Fprint(w, errorPageHTML(status, err))
}

func errorPageHTML(status int, err error) string {
	title := http.StatusText(status)
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + templ.EscapeString(title) + "</title>\n")
	b.WriteString(`<style>body{font-family:monospace;margin:40px;background:#111;color:#eee}` +
		`h1{color:#f55}pre{white-space:pre-wrap;background:#1a1a1a;padding:20px;border:1px solid #333}` +
		`.hint{color:#888}</style>` + "\n</head>\n<body>\n")
	b.WriteString("<h1>" + templ.EscapeString(fmt.Sprintf("%d %s", status, title)) + "</h1>\n")

	var fe *errors.FtdError
	if stderrors.As(err, &fe) && fe.Code != "" {
		b.WriteString("<pre>" + templ.EscapeString(fe.Error()) + "</pre>\n")
		if fe.Suggestion != "" {
			b.WriteString(`<p class="hint">` + templ.EscapeString(fe.Suggestion) + "</p>\n")
		}
		if fe.DocURL != "" {
			b.WriteString(`<p class="hint"><a href="` + templ.EscapeString(fe.DocURL) + `">` +
				templ.EscapeString(fe.DocURL) + "</a></p>\n")
		}
	} else {
		b.WriteString("<pre>" + templ.EscapeString(err.Error()) + "</pre>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
