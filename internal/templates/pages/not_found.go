package pages

import (
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/irvingdinh/aurorus/internal/meta"
	"github.com/irvingdinh/aurorus/internal/templates/layouts"
	"github.com/irvingdinh/aurorus/internal/ui"
)

// NotFoundPage is rendered for any path without a route.
var NotFoundPage = Page{Meta: NotFoundMeta, View: NotFound}

func NotFoundMeta() meta.Descriptors {
	return meta.Descriptors{
		meta.Title("Not Found - " + layouts.OwnerName),
		meta.Name("robots", "noindex"),
	}
}

func NotFound() *vdom.VNode {
	return layouts.AppLayout(
		vdom.H1(vdom.Class("text-2xl/8 font-semibold text-zinc-950 sm:text-xl/8 dark:text-white"), vdom.Text("Page not found")),
		ui.Text(
			ui.Class[*ui.TextConfig]("mt-4"),
			ui.TextContent("The page you are looking for does not exist."),
		),
	)
}
