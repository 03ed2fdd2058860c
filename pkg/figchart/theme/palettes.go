// Package theme provides the static color palettes and the base style every
// chart builds on.
package theme

import "sort"

// Palette is a named, ordered list of colors cycled across series.
type Palette struct {
	// Name is the display name.
	Name string
	// Colors are hex colors in cycle order.
	Colors []string
}

// DefaultPalette is the palette key used when none or an unknown one is set.
const DefaultPalette = "nature"

// Palettes maps palette keys to palettes.
var Palettes = map[string]Palette{
	"default": {
		Name:   "Classic",
		Colors: []string{"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de", "#3ba272", "#fc8452", "#9a60b4", "#ea7ccc"},
	},
	"academic": {
		Name:   "Academic",
		Colors: []string{"#2c3e50", "#3498db", "#e74c3c", "#27ae60", "#f39c12", "#8e44ad", "#1abc9c", "#d35400", "#7f8c8d"},
	},
	"vibrant": {
		Name:   "Vibrant",
		Colors: []string{"#ff6b6b", "#4ecdc4", "#ffe66d", "#a855f7", "#06d6a0", "#118ab2", "#ef476f", "#ffd166", "#073b4c"},
	},
	"pastel": {
		Name:   "Pastel",
		Colors: []string{"#a8d8ea", "#aa96da", "#fcbad3", "#ffffd2", "#b5ead7", "#c7ceea", "#ffdac1", "#e2f0cb", "#ff9aa2"},
	},
	"earth": {
		Name:   "Earth",
		Colors: []string{"#8B4513", "#D2691E", "#DAA520", "#556B2F", "#BC8F8F", "#A0522D", "#6B8E23", "#CD853F", "#8FBC8F"},
	},
	"ocean": {
		Name:   "Ocean",
		Colors: []string{"#006994", "#0099cc", "#40bfb0", "#87ceeb", "#005f73", "#0a9396", "#94d2bd", "#e9d8a6", "#ee9b00"},
	},
	"nature": {
		Name:   "Nature",
		Colors: []string{"#E64B35", "#4DBBD5", "#00A087", "#3C5488", "#F39B7F", "#8491B4", "#91D1C2", "#DC0000", "#7E6148"},
	},
	"science": {
		Name:   "Science",
		Colors: []string{"#3B4992", "#EE0000", "#008B45", "#631879", "#008280", "#BB0021", "#5F559B", "#A20056", "#808180"},
	},
	"lancet": {
		Name:   "Lancet",
		Colors: []string{"#00468B", "#ED0000", "#42B540", "#0099B4", "#925E9F", "#FDAF91", "#AD002A", "#ADB6B6", "#1B1919"},
	},
	"jama": {
		Name:   "JAMA",
		Colors: []string{"#374E55", "#DF8F44", "#00A1D5", "#B24745", "#79AF97", "#6A6599", "#80796B"},
	},
}

// HeatmapRamp is the sequential blue ramp used by heatmap color scales.
var HeatmapRamp = []string{"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"}

// Lookup returns the palette for key, falling back to DefaultPalette.
// The returned colors are a fresh slice.
func Lookup(key string) Palette {
	p, ok := Palettes[key]
	if !ok {
		p = Palettes[DefaultPalette]
	}
	p.Colors = append([]string(nil), p.Colors...)
	return p
}

// Keys returns the palette keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(Palettes))
	for k := range Palettes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
