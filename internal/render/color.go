package render

import "github.com/charmbracelet/lipgloss"

// RGB returns the 8-bit channels of a "#rrggbb" color. Malformed values are white.
func RGB(c lipgloss.Color) (r, g, b uint8) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(s[1:3]), parseHexByte(s[3:5]), parseHexByte(s[5:7])
}

func parseHexByte(s string) uint8 {
	var val int
	for _, c := range s {
		val *= 16
		if c >= '0' && c <= '9' {
			val += int(c - '0')
		} else if c >= 'a' && c <= 'f' {
			val += int(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			val += int(c - 'A' + 10)
		}
	}
	return uint8(val)
}
