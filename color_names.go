package prim

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/prim/internal/cssfunc"
)

// Known colors are the SVG 1.1 / CSS keyword table plus "transparent".
// Both maps are filled once in init and only read afterwards.
var (
	knownByName  map[string]Color
	knownByValue map[uint32]string
	knownNames   []string
)

func init() {
	knownByName = make(map[string]Color, len(colornames.Names)+1)
	knownByValue = make(map[uint32]string, len(colornames.Names)+1)
	add := func(name string, c Color) {
		knownByName[name] = c
		// Names are visited alphabetically, so for aliases such as
		// aqua/cyan the first name wins.
		if _, dup := knownByValue[c.ToUInt32()]; !dup {
			knownByValue[c.ToUInt32()] = name
		}
	}
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		add(name, Color{A: rgba.A, R: rgba.R, G: rgba.G, B: rgba.B})
	}
	add("transparent", Transparent)

	knownNames = make([]string, 0, len(knownByName))
	for name := range knownByName {
		knownNames = append(knownNames, name)
	}
	slices.Sort(knownNames)
}

// LookupColorName returns the known color with the given name. The lookup
// ignores case and surrounding whitespace.
func LookupColorName(name string) (Color, bool) {
	c, ok := knownByName[cssfunc.Fold(strings.TrimSpace(name))]
	return c, ok
}

// KnownColorNames returns the sorted, lower-case names of all known colors.
func KnownColorNames() []string {
	return slices.Clone(knownNames)
}

// knownColorName returns the canonical name of c, if c is a known color.
func knownColorName(c Color) (string, bool) {
	name, ok := knownByValue[c.ToUInt32()]
	return name, ok
}
