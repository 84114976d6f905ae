package ui

import "github.com/vango-go/vango/pkg/vdom"

type TextConfig struct{ BaseConfig }

func (c *TextConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type TextOption = Option[*TextConfig]

// TextContent is shorthand for a single text child.
func TextContent(s string) TextOption {
	return Child[*TextConfig](vdom.Text(s))
}

// Text is a body-copy paragraph.
func Text(opts ...TextOption) *vdom.VNode {
	c := apply(&TextConfig{}, opts)
	return c.element(vdom.P, "text", "text-base/6 text-zinc-500 sm:text-sm/6 dark:text-zinc-400")
}
