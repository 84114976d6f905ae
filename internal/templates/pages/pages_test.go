package pages

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingdinh/aurorus/internal/meta"
	"github.com/irvingdinh/aurorus/internal/view"
)

func TestLandingMeta(t *testing.T) {
	want := meta.Descriptors{
		{Title: "Irving Dinh - Just another software engineer"},
		{Name: "description", Content: "Just another software engineer"},
	}
	assert.Equal(t, want, LandingMeta())
}

func TestLandingMetaReturnsFreshSlice(t *testing.T) {
	first := LandingMeta()
	first[0].Title = "changed"
	assert.Equal(t, "Irving Dinh - Just another software engineer", LandingMeta().Title())
}

func TestLandingView(t *testing.T) {
	tree := Landing()

	assert.Equal(t, 1, view.Count(tree, view.BySlot("sidebar-layout")), "exactly one layout shell")
	assert.Same(t, tree, view.FindAll(tree, view.BySlot("sidebar-layout"))[0], "shell wraps the view")

	content := view.FindAll(tree, view.BySlot("content"))
	require.Len(t, content, 1)
	texts := view.FindAll(content[0], view.BySlot("text"))
	require.Len(t, texts, 1)
	assert.Equal(t, "Lorem ipsum dolor sit amet", view.TextContent(texts[0]))
}

func TestLandingIsIdempotent(t *testing.T) {
	assert.Equal(t, Landing(), Landing())
	assert.Equal(t, view.String(LandingPage.Document()), view.String(LandingPage.Document()))
}

func TestLandingDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(view.String(LandingPage.Document())))
	require.NoError(t, err)

	assert.Equal(t, "Irving Dinh - Just another software engineer", doc.Find("head title").Text())
	desc, ok := doc.Find(`head meta[name="description"]`).Attr("content")
	require.True(t, ok)
	assert.Equal(t, "Just another software engineer", desc)

	assert.Equal(t, 1, doc.Find(`[data-slot="navbar"]`).Length())
	assert.Equal(t, 1, doc.Find(`[data-slot="sidebar"]`).Length())
	assert.Equal(t, "Lorem ipsum dolor sit amet", doc.Find(`[data-slot="content"] p[data-slot="text"]`).Text())
}

func TestNotFound(t *testing.T) {
	assert.Equal(t, "Not Found - Irving Dinh", NotFoundMeta().Title())

	tree := NotFound()
	assert.Equal(t, 1, view.Count(tree, view.BySlot("navbar")))
	assert.Contains(t, view.TextContent(tree), "Page not found")
}

func TestZeroPageRendersEmptyDocument(t *testing.T) {
	html := view.String(Page{}.Document())
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html><html"))
	assert.NotContains(t, html, "<title")
}
