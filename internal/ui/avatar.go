package ui

import "github.com/vango-go/vango/pkg/vdom"

type AvatarConfig struct {
	BaseConfig
	Src string
	Alt string
}

func (c *AvatarConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AvatarOption = Option[*AvatarConfig]

func AvatarSrc(src string) AvatarOption {
	return func(c *AvatarConfig) { c.Src = src }
}

func AvatarAlt(alt string) AvatarOption {
	return func(c *AvatarConfig) { c.Alt = alt }
}

// Avatar renders a round image. Without a src it is an empty outlined badge.
func Avatar(opts ...AvatarOption) *vdom.VNode {
	c := apply(&AvatarConfig{}, opts)

	defaults := CN(
		"inline-grid shrink-0 align-middle [--avatar-radius:20%] *:col-start-1 *:row-start-1",
		"outline -outline-offset-1 outline-black/10 dark:outline-white/10",
		"rounded-full *:rounded-full",
	)

	var img *vdom.VNode
	if c.Src != "" {
		img = vdom.Img(vdom.Class("size-full"), vdom.Src(c.Src), vdom.Alt(c.Alt))
	}
	return c.element(vdom.Span, "avatar", defaults, img)
}
