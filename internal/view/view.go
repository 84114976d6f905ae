// Package view renders vdom trees through templ handlers and gives tests
// structural queries over them.
package view

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/vango-go/vango/pkg/render"
	"github.com/vango-go/vango/pkg/vdom"
)

const doctype = "<!DOCTYPE html>"

// Component adapts a tree to templ.Component. A tree rooted at <html> is
// preceded by the doctype.
func Component(node *vdom.VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(ctx, w, node)
	})
}

// Render writes node as HTML. Each call uses a fresh renderer, so hydration
// IDs restart at h1 and the output for equal trees is identical.
func Render(ctx context.Context, w io.Writer, node *vdom.VNode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if node == nil {
		return nil
	}
	if node.Kind == vdom.KindElement && node.Tag == "html" {
		if _, err := io.WriteString(w, doctype); err != nil {
			return err
		}
	}
	r := render.NewRenderer(render.RendererConfig{})
	if err := r.RenderToWriter(w, node); err != nil {
		return fmt.Errorf("render %s: %w", describe(node), err)
	}
	return nil
}

// String renders node, returning an empty string if rendering fails.
func String(node *vdom.VNode) string {
	var buf bytes.Buffer
	if err := Render(context.Background(), &buf, node); err != nil {
		return ""
	}
	return buf.String()
}

func describe(n *vdom.VNode) string {
	if n.Kind == vdom.KindElement {
		return "<" + n.Tag + ">"
	}
	return fmt.Sprintf("node kind %d", n.Kind)
}
