package scene

import (
	"fmt"
	"strings"
)

// lineFormat is the parsed form of a format string like "b--" or "ro".
type lineFormat struct {
	color  string
	style  string
	marker string
}

var (
	formatStyles  = []string{"--", "-.", "-", ":"}
	formatMarkers = "ov^<>sDd+x."
	formatColors  = "bgrcmykw"
)

// parseFormat parses a format string consisting of an optional color
// letter, line style and marker symbol, in any order. If a marker but no
// line style is given, the line is not stroked.
func parseFormat(s string) (lineFormat, error) {
	var f lineFormat
	rest := s
	for rest != "" {
		matched := false
		for _, ls := range formatStyles {
			if strings.HasPrefix(rest, ls) {
				if f.style != "" {
					return f, fmt.Errorf("format %q: two line styles", s)
				}
				f.style = ls
				rest = rest[len(ls):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		c := rest[:1]
		switch {
		case strings.Contains(formatMarkers, c):
			if f.marker != "" {
				return f, fmt.Errorf("format %q: two markers", s)
			}
			f.marker = c
		case strings.Contains(formatColors, c):
			if f.color != "" {
				return f, fmt.Errorf("format %q: two colors", s)
			}
			f.color = c
		default:
			return f, fmt.Errorf("format %q: unrecognized character %q", s, c)
		}
		rest = rest[1:]
	}

	switch {
	case f.style == "" && f.marker != "":
		f.style = "None"
	case f.style == "":
		f.style = "-"
	}
	if f.marker == "" {
		f.marker = "None"
	}
	return f, nil
}
