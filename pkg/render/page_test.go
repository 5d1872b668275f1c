package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
)

func TestPage(t *testing.T) {
	res := &Result{
		Body:       `<div data-id="1">hi</div>`,
		Stylesheet: "<style id=\"styles\">\n</style>",
	}
	var buf bytes.Buffer
	err := RenderPage(context.Background(), &buf, PageData{
		Page:      "home",
		Title:     "Tom & Jerry",
		Meta:      []MetaTag{{Name: "description", Content: `a "quoted" page`}},
		Result:    res,
		State:     "c3RhdGU",
		ReloadURL: "/_ftd/reload",
		Dark:      true,
		Mobile:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Tom &amp; Jerry</title>",
		`content="a &#34;quoted&#34; page"`,
		`<style id="styles">`,
		`<body class="dark mobile"><div data-id="1">hi</div>`,
		`id="ftd-state" data-page="home">c3RhdGU</script>`,
		`"/_ftd/reload"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}

func TestPageMinimal(t *testing.T) {
	var buf bytes.Buffer
	if err := Page(PageData{Lang: "de"}).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `<html lang="de">`) || !strings.Contains(out, "<body>") {
		t.Errorf("page = %s", out)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "<title>") {
		t.Errorf("optional parts rendered:\n%s", out)
	}
}

func TestStateFromPage(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(context.Background(), &buf, PageData{
		Page:      "todo",
		Result:    &Result{Body: "<div data-id=\"1\"></div>"},
		State:     "abc_-123",
		ReloadURL: "/_ftd/reload",
	}); err != nil {
		t.Fatal(err)
	}

	page, state, err := StateFromPage(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if page != "todo" || state != "abc_-123" {
		t.Errorf("StateFromPage = %q, %q", page, state)
	}

	_, _, err = StateFromPage(strings.NewReader("<html><body><script>x()</script></body></html>"))
	if errors.Code(err) != "E041" {
		t.Errorf("err = %v, want E041", err)
	}
}
