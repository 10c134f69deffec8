package report

import (
	"github.com/fatih/color"

	"igreport-core/align"
	"igreport-core/germline"
)

// Style is an ANSI attribute list applied to one report cell. An empty style
// leaves the cell untouched, which also keeps test output byte-stable.
type Style []color.Attribute

func (s Style) paint(text string) string {
	if len(s) == 0 {
		return text
	}
	return color.New(s...).Sprint(text)
}

func (s Style) merge(o Style) Style {
	if len(o) == 0 {
		return s
	}
	if len(s) == 0 {
		return o
	}
	out := make(Style, 0, len(s)+len(o))
	out = append(out, s...)
	return append(out, o...)
}

// FgRGB builds a truecolor foreground style, for palette overrides.
func FgRGB(r, g, b uint8) Style {
	return Style{38, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b)}
}

// BgRGB builds a truecolor background style, for palette overrides.
func BgRGB(r, g, b uint8) Style {
	return Style{48, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b)}
}

// Styles maps report elements to terminal styles.
type Styles struct {
	Mismatch Style
	Gap      Style
	Special  Style // isobaric / rotated spans
	Modified Style // residues carrying a modification
	Context  Style // unaligned flanking residues
	Ruler    Style

	RegionBG     map[germline.Region]Style
	AnnotationFG map[germline.Annotation]Style
}

// DefaultStyles is the stock legend: mismatches red, gaps and special spans
// yellow, modified residues underlined blue, CDR loops shaded, conserved
// residues blue and N-glycan sites green.
func DefaultStyles() *Styles {
	return &Styles{
		Mismatch: Style{color.FgRed},
		Gap:      Style{color.FgYellow},
		Special:  Style{color.FgYellow},
		Modified: Style{color.FgBlue, color.Underline},
		Context:  Style{color.Faint},
		Ruler:    Style{color.Faint},
		RegionBG: map[germline.Region]Style{
			germline.CDR1: {color.BgRed, color.FgBlack},
			germline.CDR2: {color.BgGreen, color.FgBlack},
			germline.CDR3: {color.BgBlue, color.FgBlack},
		},
		AnnotationFG: map[germline.Annotation]Style{
			germline.Conserved: {color.FgBlue},
			germline.NGlycan:   {color.FgGreen},
		},
	}
}

// PlainStyles renders every cell unstyled; used for CSV-safe output and in
// golden tests.
func PlainStyles() *Styles {
	return &Styles{
		RegionBG:     map[germline.Region]Style{},
		AnnotationFG: map[germline.Annotation]Style{},
	}
}

func (s *Styles) stepStyle(t align.MatchType) Style {
	switch t {
	case align.Mismatch:
		return s.Mismatch
	case align.Gap:
		return s.Gap
	case align.Isobaric, align.Rotation:
		return s.Special
	}
	return nil
}
