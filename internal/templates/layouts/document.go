package layouts

import (
	. "github.com/vango-go/vango/el"

	"github.com/irvingdinh/aurorus/internal/meta"
)

// DocumentOptions configures the HTML document around a page.
type DocumentOptions struct {
	Lang       string
	Stylesheet string
	Meta       meta.Descriptors
}

const (
	defaultLang       = "en"
	defaultStylesheet = "/assets/app.css"
)

// Document builds the <html> root: the fixed head entries, the page's
// metadata in declaration order, then body. view.Render adds the doctype.
func Document(opts DocumentOptions, body *VNode) *VNode {
	if opts.Lang == "" {
		opts.Lang = defaultLang
	}
	if opts.Stylesheet == "" {
		opts.Stylesheet = defaultStylesheet
	}

	return Html(
		Lang(opts.Lang),
		Class("bg-white lg:bg-zinc-100 dark:bg-zinc-900 dark:lg:bg-zinc-950"),
		Head(
			meta.Charset("utf-8").Node(),
			meta.Name("viewport", "width=device-width, initial-scale=1").Node(),
			opts.Meta.Nodes(),
			LinkEl(Rel("stylesheet"), Href(opts.Stylesheet)),
		),
		Body(Class("text-zinc-950 antialiased dark:text-white"), body),
	)
}
