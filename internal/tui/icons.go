package tui

import "github.com/tinytelemetry/tecvac/internal/model"

// Each glyph is a single terminal cell wide.
var unicodeGlyphs = map[model.Icon]string{
	model.IconHome:           "⌂",
	model.IconUsers:          "☷",
	model.IconUserPlus:       "✚",
	model.IconClipboard:      "☰",
	model.IconCalendarDays:   "▦",
	model.IconFolder:         "▤",
	model.IconCalendar:       "▣",
	model.IconCurrency:       "$",
	model.IconChartBar:       "▥",
	model.IconDocument:       "≣",
	model.IconCog:            "✲",
	model.IconUser:           "☻",
	model.IconBell:           "◉",
	model.IconChat:           "❝",
	model.IconBuilding:       "▙",
	model.IconVideo:          "▶",
	model.IconPlus:           "+",
	model.IconChevronLeft:    "«",
	model.IconChevronRight:   "»",
	model.IconChevronDown:    "▾",
	model.IconChevronUp:      "▴",
	model.IconSearch:         "⌕",
	model.IconBars:           "≡",
	model.IconClose:          "×",
	model.IconEnvelope:       "✉",
	model.IconPhone:          "☏",
	model.IconIdentification: "#",
	model.IconMapPin:         "⌖",
}

var asciiGlyphs = map[model.Icon]string{
	model.IconHome:           "H",
	model.IconUsers:          "U",
	model.IconUserPlus:       "+",
	model.IconClipboard:      "T",
	model.IconCalendarDays:   "E",
	model.IconFolder:         "P",
	model.IconCalendar:       "L",
	model.IconCurrency:       "$",
	model.IconChartBar:       "%",
	model.IconDocument:       "R",
	model.IconCog:            "*",
	model.IconUser:           "@",
	model.IconBell:           "!",
	model.IconChat:           "\"",
	model.IconBuilding:       "B",
	model.IconVideo:          ">",
	model.IconPlus:           "+",
	model.IconChevronLeft:    "<",
	model.IconChevronRight:   ">",
	model.IconChevronDown:    "v",
	model.IconChevronUp:      "^",
	model.IconSearch:         "?",
	model.IconBars:           "=",
	model.IconClose:          "x",
	model.IconEnvelope:       "m",
	model.IconPhone:          "t",
	model.IconIdentification: "#",
	model.IconMapPin:         "o",
}

// glyph resolves an icon name for the active skin. Unknown names render as
// a bullet.
func glyph(icon model.Icon) string {
	table := unicodeGlyphs
	if asciiIcons {
		table = asciiGlyphs
	}
	if g, ok := table[icon]; ok {
		return g
	}
	if asciiIcons {
		return "*"
	}
	return "•"
}
