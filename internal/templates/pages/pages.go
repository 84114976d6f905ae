// Package pages holds one view per route.
package pages

import (
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/irvingdinh/aurorus/internal/meta"
	"github.com/irvingdinh/aurorus/internal/templates/layouts"
)

// Page pairs a route's head entries with its view. Both are evaluated on
// every render.
type Page struct {
	Meta func() meta.Descriptors
	View func() *vdom.VNode
}

// Document renders the page as a full HTML document.
func (p Page) Document() *vdom.VNode {
	var ds meta.Descriptors
	if p.Meta != nil {
		ds = p.Meta()
	}
	var body *vdom.VNode
	if p.View != nil {
		body = p.View()
	}
	return layouts.Document(layouts.DocumentOptions{Meta: ds}, body)
}
