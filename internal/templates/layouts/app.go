// Package layouts holds the page frames shared by every route.
package layouts

import (
	"github.com/vango-go/vango/pkg/vdom"

	"github.com/irvingdinh/aurorus/internal/ui"
)

const (
	OwnerName          = "Irving Dinh"
	ProfilePicturePath = "/assets/profile-picture.jpg"
)

// AppLayout wraps children in the site chrome: navbar, sidebar with the
// owner's identity link, and the content region. Children are placed as-is.
// The frame is rendered even when children is empty.
func AppLayout(children ...*vdom.VNode) *vdom.VNode {
	return ui.SidebarLayout(
		ui.LayoutNavbar(ui.Navbar()),
		ui.LayoutSidebar(sidebar()),
		ui.Child[*ui.SidebarLayoutConfig](children...),
	)
}

func sidebar() *vdom.VNode {
	identity := ui.SidebarItem(
		ui.SidebarItemHref("/"),
		ui.Child[*ui.SidebarItemConfig](
			ui.Avatar(ui.AvatarSrc(ProfilePicturePath), ui.AvatarAlt(OwnerName)),
			ui.SidebarLabel(ui.Child[*ui.SidebarLabelConfig](vdom.Text(OwnerName))),
		),
	)

	return ui.Sidebar(ui.Child[*ui.SidebarConfig](
		ui.SidebarHeader(ui.Child[*ui.SidebarHeaderConfig](
			ui.SidebarSection(
				ui.Class[*ui.SidebarSectionConfig]("max-lg:hidden"),
				ui.Child[*ui.SidebarSectionConfig](identity),
			),
		)),
		ui.SidebarBody(),
	))
}
