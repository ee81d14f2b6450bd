package styles

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

// ThemeColor is one palette family of the pro style, resolved from a
// shape's fill color.
type ThemeColor struct {
	Accent         string
	Glow           string
	GradientTop    string
	GradientBottom string
}

var (
	themeBlue   = ThemeColor{Accent: "#60a5fa", Glow: "#3b82f6", GradientTop: "#16294d", GradientBottom: "#0b1530"}
	themeGreen  = ThemeColor{Accent: "#4ade80", Glow: "#22c55e", GradientTop: "#14432a", GradientBottom: "#0a2417"}
	themeRed    = ThemeColor{Accent: "#f87171", Glow: "#ef4444", GradientTop: "#4d1a1a", GradientBottom: "#2a0d0d"}
	themeOrange = ThemeColor{Accent: "#fb923c", Glow: "#f97316", GradientTop: "#4a2512", GradientBottom: "#271209"}
	themePurple = ThemeColor{Accent: "#c084fc", Glow: "#a855f7", GradientTop: "#3b1d5e", GradientBottom: "#1f0e33"}
	themeCyan   = ThemeColor{Accent: "#22d3ee", Glow: "#06b6d4", GradientTop: "#0e3a44", GradientBottom: "#071f26"}
	themePink   = ThemeColor{Accent: "#f472b6", Glow: "#ec4899", GradientTop: "#4b1932", GradientBottom: "#270c19"}
	themeYellow = ThemeColor{Accent: "#facc15", Glow: "#eab308", GradientTop: "#4a3b0d", GradientBottom: "#252006"}

	// themeDefault covers empty and unmatched fill colors.
	themeDefault = ThemeColor{Accent: "#94a3b8", Glow: "#64748b", GradientTop: "#273244", GradientBottom: "#141b26"}
)

// themePalette maps known fill literals to their family. Lookup is
// case-insensitive.
var themePalette = map[string]ThemeColor{
	"blue":    themeBlue,
	"#3b82f6": themeBlue,
	"#60a5fa": themeBlue,
	"#2563eb": themeBlue,

	"green":   themeGreen,
	"#22c55e": themeGreen,
	"#4ade80": themeGreen,
	"#16a34a": themeGreen,

	"red":     themeRed,
	"#ef4444": themeRed,
	"#f87171": themeRed,
	"#dc2626": themeRed,

	"orange":  themeOrange,
	"#f97316": themeOrange,
	"#fb923c": themeOrange,
	"#f59e0b": themeOrange,

	"purple":  themePurple,
	"violet":  themePurple,
	"#a855f7": themePurple,
	"#8b5cf6": themePurple,
	"#c084fc": themePurple,

	"cyan":    themeCyan,
	"teal":    themeCyan,
	"#06b6d4": themeCyan,
	"#14b8a6": themeCyan,
	"#22d3ee": themeCyan,

	"pink":    themePink,
	"magenta": themePink,
	"#ec4899": themePink,
	"#f472b6": themePink,

	"yellow":  themeYellow,
	"#eab308": themeYellow,
	"#facc15": themeYellow,
	"#fde047": themeYellow,
}

// Theme resolves a fill color to its palette family, falling back to the
// default family for empty or unknown colors.
func Theme(fill string) ThemeColor {
	if tc, ok := themePalette[strings.ToLower(fill)]; ok {
		return tc
	}
	return themeDefault
}

// ColorID derives a markup-safe identifier from a color literal by
// stripping everything outside [0-9a-zA-Z]. Colors that strip to nothing
// yield "default".
func ColorID(color string) string {
	var sb strings.Builder
	for _, r := range color {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "default"
	}
	return sb.String()
}

// Pro style document colors.
const (
	proBackgroundTop    = "#101729"
	proBackgroundBottom = "#070b14"
	proGridStroke       = "#ffffff"
	proLabelColor       = "#e2e8f0"
	proGridStep         = 24
)

// writeThemeResources emits the shared defs for a shape set: one glow
// filter, gradient, and arrow marker per distinct accent color in use,
// the default family always among them, plus the background gradient and
// grid pattern. Families are collected in a pre-pass keyed by accent
// color id so each is emitted exactly once however many shapes share it.
func writeThemeResources(buf *bytes.Buffer, shapes []canvas.Shape) {
	families := map[string]ThemeColor{
		ColorID(themeDefault.Accent): themeDefault,
	}
	for i := range shapes {
		tc := Theme(shapes[i].Fill)
		families[ColorID(tc.Accent)] = tc
	}

	ids := make([]string, 0, len(families))
	for id := range families {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <linearGradient id="bg-gradient" x1="0" y1="0" x2="0" y2="1"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`+"\n",
		proBackgroundTop, proBackgroundBottom)
	fmt.Fprintf(buf, `    <pattern id="grid" width="%d" height="%d" patternUnits="userSpaceOnUse"><path d="M %d 0 L 0 0 0 %d" fill="none" stroke="%s" stroke-opacity="0.04"/></pattern>`+"\n",
		proGridStep, proGridStep, proGridStep, proGridStep, proGridStroke)
	for _, id := range ids {
		tc := families[id]
		fmt.Fprintf(buf, `    <filter id="glow-%s" x="-50%%" y="-50%%" width="200%%" height="200%%"><feDropShadow dx="0" dy="0" stdDeviation="4" flood-color="%s" flood-opacity="0.55"/></filter>`+"\n",
			id, tc.Glow)
		fmt.Fprintf(buf, `    <linearGradient id="grad-%s" x1="0" y1="0" x2="0" y2="1"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`+"\n",
			id, tc.GradientTop, tc.GradientBottom)
		fmt.Fprintf(buf, `    <marker id="arrow-%s" viewBox="0 0 10 10" refX="8.5" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 Z" fill="%s"/></marker>`+"\n",
			id, tc.Accent)
	}
	buf.WriteString("  </defs>\n")
}
