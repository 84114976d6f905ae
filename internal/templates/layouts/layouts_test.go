package layouts

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/irvingdinh/aurorus/internal/meta"
	"github.com/irvingdinh/aurorus/internal/view"
)

func parse(t *testing.T, n *vdom.VNode) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(view.String(n)))
	require.NoError(t, err)
	return doc
}

func TestAppLayoutFrame(t *testing.T) {
	child := vdom.P(vdom.ID("payload"), vdom.Text("hello <world>"))
	layout := AppLayout(child)

	assert.Equal(t, 1, view.Count(layout, view.BySlot("navbar")))
	assert.Equal(t, 1, view.Count(layout, view.BySlot("sidebar")))
	assert.Equal(t, 1, view.Count(layout, view.Is(child)), "children must appear exactly once")

	content := view.FindAll(layout, view.BySlot("content"))
	require.Len(t, content, 1)
	require.Len(t, content[0].Children, 1)
	assert.Same(t, child, content[0].Children[0])
	assert.Equal(t, "hello <world>", view.TextContent(child), "children must not be modified")
}

func TestAppLayoutIdentityItem(t *testing.T) {
	doc := parse(t, AppLayout())

	items := doc.Find(`[data-slot="sidebar"] [data-slot="sidebar-header"] [data-slot="sidebar-item"]`)
	require.Equal(t, 1, items.Length())

	link := items.Find("a")
	require.Equal(t, 1, link.Length())
	href, _ := link.Attr("href")
	assert.Equal(t, "/", href)

	assert.Equal(t, OwnerName, strings.TrimSpace(items.Find(`[data-slot="sidebar-label"]`).Text()))

	img := items.Find(`[data-slot="avatar"] img`)
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	assert.Equal(t, "/assets/profile-picture.jpg", src)
	alt, _ := img.Attr("alt")
	assert.Equal(t, OwnerName, alt)

	section := doc.Find(`[data-slot="sidebar-header"] > [data-slot="section"]`)
	assert.True(t, section.HasClass("max-lg:hidden"))
}

func TestAppLayoutSidebarBodyIsEmpty(t *testing.T) {
	doc := parse(t, AppLayout())

	body := doc.Find(`[data-slot="sidebar-body"]`)
	require.Equal(t, 1, body.Length())
	assert.Equal(t, 0, body.Children().Length())
}

func TestAppLayoutEmptyContentKeepsFrame(t *testing.T) {
	for name, layout := range map[string]*vdom.VNode{
		"no children":    AppLayout(),
		"nil child":      AppLayout(nil),
		"empty fragment": AppLayout(vdom.Fragment()),
	} {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, layout)
			assert.Equal(t, 1, doc.Find(`[data-slot="navbar"]`).Length())
			assert.Equal(t, 1, doc.Find(`[data-slot="sidebar"]`).Length())
			content := doc.Find(`[data-slot="content"]`)
			require.Equal(t, 1, content.Length())
			assert.Equal(t, "", content.Text())
		})
	}
}

func TestAppLayoutIsStable(t *testing.T) {
	assert.Equal(t, view.String(AppLayout(vdom.Text("x"))), view.String(AppLayout(vdom.Text("x"))))
}

func TestDocument(t *testing.T) {
	out := Document(DocumentOptions{
		Meta: meta.Descriptors{meta.Title("Page"), meta.Name("description", "About")},
	}, vdom.P(vdom.Text("body")))

	html := view.String(out)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html><html"), html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	assert.Equal(t, "Page", doc.Find("head title").Text())
	desc, _ := doc.Find(`head meta[name="description"]`).Attr("content")
	assert.Equal(t, "About", desc)
	charset, _ := doc.Find("head meta[charset]").Attr("charset")
	assert.Equal(t, "utf-8", charset)
	css, _ := doc.Find(`head link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "/assets/app.css", css)
	assert.Equal(t, "body", doc.Find("body p").Text())
}

func TestDocumentOverrides(t *testing.T) {
	doc := parse(t, Document(DocumentOptions{Lang: "vi", Stylesheet: "/x.css"}, nil))

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "vi", lang)
	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "/x.css", css)
	assert.Equal(t, 0, doc.Find("title").Length())
}
