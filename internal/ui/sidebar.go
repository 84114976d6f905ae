package ui

import "github.com/vango-go/vango/pkg/vdom"

// Sidebar
type SidebarConfig struct{ BaseConfig }

func (c *SidebarConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarOption = Option[*SidebarConfig]

func Sidebar(opts ...SidebarOption) *vdom.VNode {
	c := apply(&SidebarConfig{}, opts)
	return c.element(vdom.Nav, "sidebar", "flex h-full min-h-0 flex-col")
}

// SidebarHeader
type SidebarHeaderConfig struct{ BaseConfig }

func (c *SidebarHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarHeaderOption = Option[*SidebarHeaderConfig]

func SidebarHeader(opts ...SidebarHeaderOption) *vdom.VNode {
	c := apply(&SidebarHeaderConfig{}, opts)
	return c.element(vdom.Div, "sidebar-header",
		"flex flex-col border-b border-zinc-950/5 p-4 dark:border-white/5 [&>[data-slot=section]+[data-slot=section]]:mt-2.5")
}

// SidebarBody
type SidebarBodyConfig struct{ BaseConfig }

func (c *SidebarBodyConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarBodyOption = Option[*SidebarBodyConfig]

func SidebarBody(opts ...SidebarBodyOption) *vdom.VNode {
	c := apply(&SidebarBodyConfig{}, opts)
	return c.element(vdom.Div, "sidebar-body",
		"flex flex-1 flex-col overflow-y-auto p-4 [&>[data-slot=section]+[data-slot=section]]:mt-8")
}

// SidebarSection
type SidebarSectionConfig struct{ BaseConfig }

func (c *SidebarSectionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarSectionOption = Option[*SidebarSectionConfig]

func SidebarSection(opts ...SidebarSectionOption) *vdom.VNode {
	c := apply(&SidebarSectionConfig{}, opts)
	return c.element(vdom.Div, "section", "flex flex-col gap-0.5")
}

// SidebarItem
type SidebarItemConfig struct {
	BaseConfig
	Href string
}

func (c *SidebarItemConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarItemOption = Option[*SidebarItemConfig]

func SidebarItemHref(href string) SidebarItemOption {
	return func(c *SidebarItemConfig) { c.Href = href }
}

const sidebarItemClasses = "flex w-full items-center gap-3 rounded-lg px-2 py-2.5 text-left text-base/6 font-medium text-zinc-950 sm:py-2 sm:text-sm/5 " +
	"*:data-[slot=avatar]:-m-0.5 *:data-[slot=avatar]:size-7 sm:*:data-[slot=avatar]:size-6 " +
	"hover:bg-zinc-950/5 data-current:bg-zinc-950/5 dark:text-white dark:hover:bg-white/5"

// SidebarItem renders a link when Href is set and a button otherwise. Options
// (children and attributes) land on the inner link or button; classes land on
// the outer wrapper.
func SidebarItem(opts ...SidebarItemOption) *vdom.VNode {
	c := apply(&SidebarItemConfig{}, opts)

	inner := make([]any, 0, len(c.Options)+1)
	inner = append(inner, vdom.Class(sidebarItemClasses))
	inner = append(inner, c.Options...)

	var target *vdom.VNode
	if c.Href != "" {
		target = vdom.A(append([]any{vdom.Href(c.Href)}, inner...)...)
	} else {
		target = vdom.Button(append([]any{vdom.Type("button")}, inner...)...)
	}

	return vdom.Span(
		vdom.Data("slot", "sidebar-item"),
		vdom.Class(CN("relative", joinClasses(c.Classes))),
		target,
	)
}

// SidebarLabel
type SidebarLabelConfig struct{ BaseConfig }

func (c *SidebarLabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SidebarLabelOption = Option[*SidebarLabelConfig]

func SidebarLabel(opts ...SidebarLabelOption) *vdom.VNode {
	c := apply(&SidebarLabelConfig{}, opts)
	return c.element(vdom.Span, "sidebar-label", "truncate")
}
