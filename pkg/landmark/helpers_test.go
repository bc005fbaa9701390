package landmark_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

const page = `<!DOCTYPE html>
<html><body>
<header id="banner"><a id="home" href="/">Home</a></header>
<main id="main">
  <a id="main-link" href="#">Start</a>
  <section id="intro" aria-label="Intro"><p id="intro-text">Hello</p></section>
</main>
<nav id="nav" aria-label="Primary">
  <a id="nav-1" href="#">One</a>
  <a id="nav-2" href="#">Two</a>
</nav>
<div id="search" role="search"><input id="q"></div>
<aside id="side"><p id="side-text">Aside</p></aside>
<footer id="footer"><a id="legal" href="#">Legal</a></footer>
</body></html>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDoc(t *testing.T) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.ParseString(page)
	require.NoError(t, err)
	return doc
}

func newRegistry(t *testing.T, doc *htmldoc.Document, opts ...landmark.Option) *landmark.Registry {
	t.Helper()
	opts = append([]landmark.Option{landmark.WithLogger(quietLogger())}, opts...)
	return landmark.New(doc, opts...)
}

func byID(t *testing.T, doc *htmldoc.Document, id string) *html.Node {
	t.Helper()
	n := doc.ByID(id)
	require.NotNil(t, n, "no element with id %q", id)
	return n
}

// add registers the elements with the given ids and roles.
func add(t *testing.T, reg *landmark.Registry, doc *htmldoc.Document, id string, role landmark.Role, label string) *html.Node {
	t.Helper()
	n := byID(t, doc, id)
	reg.Add(landmark.Landmark{Element: n, Role: role, Label: label})
	return n
}

func id(el landmark.Element) string {
	n, ok := el.(*html.Node)
	if !ok || n == nil {
		return ""
	}
	v, _ := htmldoc.Attr(n, "id")
	return v
}

func ids(els []landmark.Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = id(el)
	}
	return out
}

func order(reg *landmark.Registry) []string {
	var out []string
	for _, l := range reg.Landmarks() {
		out = append(out, id(l.Element))
	}
	return out
}
