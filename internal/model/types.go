package model

import "time"

// Route is a navigation path such as "/dashboard". Routes are compared as
// exact strings; no trailing-slash or prefix normalization is applied.
type Route string

// Icon names a glyph resolved by the icon provider. The names follow the
// hero icon set the dashboard was designed with.
type Icon string

const (
	IconHome           Icon = "home"
	IconUsers          Icon = "users"
	IconUserPlus       Icon = "user-plus"
	IconClipboard      Icon = "clipboard-document-list"
	IconCalendarDays   Icon = "calendar-days"
	IconFolder         Icon = "folder"
	IconCalendar       Icon = "calendar"
	IconCurrency       Icon = "currency-dollar"
	IconChartBar       Icon = "chart-bar"
	IconDocument       Icon = "document-text"
	IconCog            Icon = "cog"
	IconUser           Icon = "user"
	IconBell           Icon = "bell"
	IconChat           Icon = "chat-bubble-left-right"
	IconBuilding       Icon = "building-office"
	IconVideo          Icon = "video-camera"
	IconPlus           Icon = "plus"
	IconChevronLeft    Icon = "chevron-left"
	IconChevronRight   Icon = "chevron-right"
	IconChevronDown    Icon = "chevron-down"
	IconChevronUp      Icon = "chevron-up"
	IconSearch         Icon = "magnifying-glass"
	IconBars           Icon = "bars-3"
	IconClose          Icon = "x-mark"
	IconEnvelope       Icon = "envelope"
	IconPhone          Icon = "phone"
	IconIdentification Icon = "identification"
	IconMapPin         Icon = "map-pin"
)

// Receipt acknowledges an accepted intake record.
type Receipt struct {
	ID         string
	AcceptedAt time.Time
}
