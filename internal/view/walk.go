package view

import (
	"fmt"
	"strings"

	"github.com/vango-go/vango/pkg/vdom"
)

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *vdom.VNode, fn func(*vdom.VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every node under n (n included) matching pred, in
// document order.
func FindAll(n *vdom.VNode, pred func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	Walk(n, func(v *vdom.VNode) bool {
		if pred(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Count returns the number of nodes under n matching pred.
func Count(n *vdom.VNode, pred func(*vdom.VNode) bool) int {
	return len(FindAll(n, pred))
}

// BySlot matches elements carrying data-slot=slot.
func BySlot(slot string) func(*vdom.VNode) bool {
	return func(v *vdom.VNode) bool {
		return v.Kind == vdom.KindElement && Slot(v) == slot
	}
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(v *vdom.VNode) bool {
		return v.Kind == vdom.KindElement && v.Tag == tag
	}
}

// Is matches exactly the given node.
func Is(target *vdom.VNode) func(*vdom.VNode) bool {
	return func(v *vdom.VNode) bool { return v == target }
}

// Prop returns an attribute as a string and whether it was set.
func Prop(n *vdom.VNode, key string) (string, bool) {
	if n == nil || n.Props == nil {
		return "", false
	}
	v, ok := n.Props[key]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Slot returns the node's data-slot attribute.
func Slot(n *vdom.VNode) string {
	s, _ := Prop(n, "data-slot")
	return s
}

// TextContent concatenates all text under n.
func TextContent(n *vdom.VNode) string {
	var b strings.Builder
	Walk(n, func(v *vdom.VNode) bool {
		if v.Kind == vdom.KindText {
			b.WriteString(v.Text)
		}
		return true
	})
	return b.String()
}
