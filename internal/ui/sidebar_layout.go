package ui

import "github.com/vango-go/vango/pkg/vdom"

type SidebarLayoutConfig struct {
	BaseConfig
	Navbar  *vdom.VNode
	Sidebar *vdom.VNode
}

func (c *SidebarLayoutConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarLayoutOption = Option[*SidebarLayoutConfig]

func LayoutNavbar(n *vdom.VNode) SidebarLayoutOption {
	return func(c *SidebarLayoutConfig) { c.Navbar = n }
}

func LayoutSidebar(n *vdom.VNode) SidebarLayoutOption {
	return func(c *SidebarLayoutConfig) { c.Sidebar = n }
}

// SidebarLayout is the application frame: a fixed sidebar column from the lg
// breakpoint up, a navbar header below it, and a content region holding the
// Child options. Navbar and sidebar are each rendered exactly once; which one
// is visible is left to the utility classes.
func SidebarLayout(opts ...SidebarLayoutOption) *vdom.VNode {
	c := apply(&SidebarLayoutConfig{}, opts)

	content := make([]any, 0, len(c.Options)+2)
	content = append(content, vdom.Data("slot", "content"), vdom.Class("mx-auto max-w-6xl"))
	content = append(content, c.Options...)

	return vdom.Div(
		vdom.Data("slot", "sidebar-layout"),
		vdom.Class(CN(
			"relative isolate flex min-h-svh w-full bg-white max-lg:flex-col lg:bg-zinc-100 dark:bg-zinc-900 dark:lg:bg-zinc-950",
			joinClasses(c.Classes),
		)),
		vdom.Div(vdom.Class("fixed inset-y-0 left-0 w-64 max-lg:hidden"), c.Sidebar),
		vdom.Header(
			vdom.Class("flex items-center px-4 lg:hidden"),
			vdom.Div(vdom.Class("min-w-0 flex-1"), c.Navbar),
		),
		vdom.Main(
			vdom.Class("flex flex-1 flex-col pb-2 lg:min-w-0 lg:pt-2 lg:pr-2 lg:pl-64"),
			vdom.Div(
				vdom.Class("grow p-6 lg:rounded-lg lg:bg-white lg:p-10 lg:shadow-xs lg:ring-1 lg:ring-zinc-950/5 dark:lg:bg-zinc-900 dark:lg:ring-white/10"),
				vdom.Div(content...),
			),
		),
	)
}
