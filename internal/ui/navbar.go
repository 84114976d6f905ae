package ui

import "github.com/vango-go/vango/pkg/vdom"

type NavbarConfig struct{ BaseConfig }

func (c *NavbarConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type NavbarOption = Option[*NavbarConfig]

// Navbar is the top navigation bar, shown below the lg breakpoint.
func Navbar(opts ...NavbarOption) *vdom.VNode {
	c := apply(&NavbarConfig{}, opts)
	return c.element(vdom.Nav, "navbar", "flex flex-1 items-center gap-4 py-2.5")
}
