package pages

import (
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/irvingdinh/aurorus/internal/meta"
	"github.com/irvingdinh/aurorus/internal/templates/layouts"
	"github.com/irvingdinh/aurorus/internal/ui"
)

// LandingPage is served at the site root.
var LandingPage = Page{Meta: LandingMeta, View: Landing}

// LandingMeta returns the landing page's head entries.
func LandingMeta() meta.Descriptors {
	return meta.Descriptors{
		meta.Title("Irving Dinh - Just another software engineer"),
		meta.Name("description", "Just another software engineer"),
	}
}

func Landing() *vdom.VNode {
	return layouts.AppLayout(
		ui.Text(ui.TextContent("Lorem ipsum dolor sit amet")),
	)
}
