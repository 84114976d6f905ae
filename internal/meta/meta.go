// Package meta declares the head entries a page contributes to its document.
package meta

import "github.com/vango-go/vango/pkg/vdom"

// Descriptor is one document head entry. Exactly one of Title, Name or
// Charset is set; Content accompanies Name.
type Descriptor struct {
	Title   string
	Name    string
	Content string
	Charset string
}

// Title declares the document title.
func Title(title string) Descriptor {
	return Descriptor{Title: title}
}

// Name declares a <meta name content> entry such as description.
func Name(name, content string) Descriptor {
	return Descriptor{Name: name, Content: content}
}

// Charset declares the document character set.
func Charset(charset string) Descriptor {
	return Descriptor{Charset: charset}
}

// Node returns the head element for d, or nil for a zero descriptor.
func (d Descriptor) Node() *vdom.VNode {
	switch {
	case d.Title != "":
		return vdom.Title(vdom.Text(d.Title))
	case d.Name != "":
		return vdom.Meta(vdom.Name(d.Name), vdom.Content(d.Content))
	case d.Charset != "":
		return vdom.Meta(vdom.Charset(d.Charset))
	default:
		return nil
	}
}

// Descriptors is an ordered list of head entries.
type Descriptors []Descriptor

// Title returns the first title entry, or "" if there is none.
func (ds Descriptors) Title() string {
	for _, d := range ds {
		if d.Title != "" {
			return d.Title
		}
	}
	return ""
}

// Nodes returns the head elements in declaration order, skipping zero entries.
func (ds Descriptors) Nodes() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(ds))
	for _, d := range ds {
		if n := d.Node(); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
