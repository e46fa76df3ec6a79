package core

import (
	"errors"
	"fmt"
	"strings"
)

// Color is a foreground colour for a screen cell. The platform maps it to a
// terminal colour; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// ColorCount is the number of defined colours.
	ColorCount
)

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

// colorInfo holds the config name and ANSI 256 code of each colour.
var colorInfo = [ColorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright_red", "9"},
	ColorBrightGreen:   {"bright_green", "10"},
	ColorBrightYellow:  {"bright_yellow", "11"},
	ColorBrightBlue:    {"bright_blue", "12"},
	ColorBrightMagenta: {"bright_magenta", "13"},
	ColorBrightCyan:    {"bright_cyan", "14"},
	ColorBrightWhite:   {"bright_white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// String returns the colour's config name.
func (c Color) String() string {
	if c >= ColorCount {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorInfo[c].name
}

// ANSI returns the ANSI 256 colour code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= ColorCount {
		return ""
	}
	return colorInfo[c].ansi
}

// ParseColor looks a colour up by config name. Matching ignores case and
// accepts '-' or ' ' in place of '_'. An empty name is ColorDefault.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "" {
		return ColorDefault, nil
	}
	for i, info := range colorInfo {
		if info.name == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
