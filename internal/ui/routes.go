package ui

// Route is a screen reachable from the tab bar or the drawer.
type Route int

const (
	RouteChats Route = iota
	RouteStories
	RouteCommunity
	RouteCalls
	RouteHome
	RouteProfile
)

// tabRoutes are the bottom tabs in display order.
var tabRoutes = []Route{RouteChats, RouteStories, RouteCommunity, RouteCalls}

// drawerRoutes are the drawer entries in display order.
var drawerRoutes = []Route{RouteHome, RouteProfile}

// routeKeys maps routes onto the suffix shared by their translation keys.
var routeKeys = map[Route]string{
	RouteChats:     "chats",
	RouteStories:   "stories",
	RouteCommunity: "communities",
	RouteCalls:     "calls",
	RouteHome:      "home",
	RouteProfile:   "profile",
}

type routeIcon struct {
	focused, unfocused string
}

var routeIcons = map[Route]routeIcon{
	RouteChats:     {"◉", "○"},
	RouteStories:   {"▣", "□"},
	RouteCommunity: {"◈", "◇"},
	RouteCalls:     {"✆", "☏"},
	RouteHome:      {"⌂", "⌂"},
	RouteProfile:   {"☻", "☺"},
}

// LabelKey is the translation key for the route's tab or drawer label.
func (r Route) LabelKey() string {
	switch r {
	case RouteHome, RouteProfile:
		return "drawer." + routeKeys[r]
	default:
		return "menu." + routeKeys[r]
	}
}

// HeaderKey is the translation key for the header title, or "" for routes
// that show no title.
func (r Route) HeaderKey() string {
	if r == RouteHome {
		return ""
	}
	return "header_title." + routeKeys[r]
}

// Icon returns the glyph for the route.
func (r Route) Icon(focused bool) string {
	icon := routeIcons[r]
	if focused {
		return icon.focused
	}
	return icon.unfocused
}
