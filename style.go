package ansifmt

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"
)

// Color is a numeric SGR color code. The zero value NoColor means that no
// color has been assigned.
//
// Foreground colors use codes 30–37, background colors 40–47. The tables in
// package palette bind display names to these codes; the segment model
// treats them as opaque numbers.
type Color int

// NoColor is the absent color. Segments without an explicit color carry
// NoColor and render with the terminal's defaults.
const NoColor Color = 0

// IsSet reports whether a color has been assigned.
func (c Color) IsSet() bool {
	return c != NoColor
}

// String returns the decimal SGR code, or "-" for NoColor.
func (c Color) String() string {
	if !c.IsSet() {
		return "-"
	}
	return strconv.Itoa(int(c))
}

// Attr is a set of independent text attributes, held as a bitfield.
type Attr uint8

// Text attributes applicable to a run of characters. Encode order is fixed:
// bold before underline.
const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrUnderline
)

// attrCodes maps attributes to their SGR codes, in encode order.
var attrCodes = []struct {
	attr Attr
	code string
}{
	{AttrBold, "1"},
	{AttrUnderline, "4"},
}

// Add returns the union of attribute sets.
func (a Attr) Add(other Attr) Attr {
	return a | other
}

// Minus returns a without the attributes in other.
func (a Attr) Minus(other Attr) Attr {
	return a & ^other
}

// Contains reports whether all attributes of other are set in a.
func (a Attr) Contains(other Attr) bool {
	return a&other == other
}

func (a Attr) String() string {
	if a == AttrNone {
		return "plain"
	}
	var sb strings.Builder
	if a.Contains(AttrBold) {
		sb.WriteString("b")
	}
	if a.Contains(AttrUnderline) {
		sb.WriteString("u")
	}
	return sb.String()
}

// --- Style -----------------------------------------------------------------

// Style is the complete styling of a run of text: an optional foreground
// color, an optional background color and a set of attributes. The zero
// value is the unstyled run.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// WithForeground returns a copy of the style with the foreground replaced.
func (sty Style) WithForeground(c Color) Style {
	sty.Foreground = c
	return sty
}

// WithBackground returns a copy of the style with the background replaced.
func (sty Style) WithBackground(c Color) Style {
	sty.Background = c
	return sty
}

// WithAttrs returns a copy of the style with the attribute set replaced.
func (sty Style) WithAttrs(a Attr) Style {
	sty.Attrs = a
	return sty
}

// Bold returns a copy of the style with the bold attribute set.
func (sty Style) Bold() Style {
	sty.Attrs = sty.Attrs.Add(AttrBold)
	return sty
}

// Underline returns a copy of the style with the underline attribute set.
func (sty Style) Underline() Style {
	sty.Attrs = sty.Attrs.Add(AttrUnderline)
	return sty
}

// IsZero reports whether the style carries no attribute at all. Runs with a
// zero style are emitted as raw text, without escape wrapping.
func (sty Style) IsZero() bool {
	return !sty.Foreground.IsSet() && !sty.Background.IsSet() && sty.Attrs == AttrNone
}

// Equals reports whether this style looks equal to another one.
func (sty Style) Equals(other Style) bool {
	return sty == other
}

// Codes returns the ordered SGR code list for the style: attribute codes
// first (bold before underline), then foreground, then background. The
// result is empty for the zero style.
func (sty Style) Codes() []string {
	if sty.IsZero() {
		return nil
	}
	codes := make([]string, 0, 4)
	for _, ac := range attrCodes {
		if sty.Attrs.Contains(ac.attr) {
			codes = append(codes, ac.code)
		}
	}
	if sty.Foreground.IsSet() {
		codes = append(codes, sty.Foreground.String())
	}
	if sty.Background.IsSet() {
		codes = append(codes, sty.Background.String())
	}
	return codes
}

// String returns an informational string for the style. Clients must not
// rely on its format.
func (sty Style) String() string {
	if sty.IsZero() {
		return "[plain]"
	}
	return "[" + strings.Join(sty.Codes(), ";") + "]"
}

// --- Style patches ---------------------------------------------------------

// StylePatch is a partial style change, to be merged into the styles of the
// segments a selection covers. Only the fields a caller explicitly sets
// override; unset fields fall through to each affected segment's own prior
// value. The zero patch changes nothing.
type StylePatch struct {
	foreground    Color
	hasForeground bool
	background    Color
	hasBackground bool
	attrs         Attr
	hasAttrs      bool
}

// Patch creates an empty style patch.
func Patch() StylePatch {
	return StylePatch{}
}

// Foreground sets the patch to override the foreground color.
func (p StylePatch) Foreground(c Color) StylePatch {
	p.foreground = c
	p.hasForeground = true
	return p
}

// Background sets the patch to override the background color.
func (p StylePatch) Background(c Color) StylePatch {
	p.background = c
	p.hasBackground = true
	return p
}

// Attrs sets the patch to override the attribute set.
func (p StylePatch) Attrs(a Attr) StylePatch {
	p.attrs = a
	p.hasAttrs = true
	return p
}

// IsEmpty reports whether the patch overrides nothing.
func (p StylePatch) IsEmpty() bool {
	return !p.hasForeground && !p.hasBackground && !p.hasAttrs
}

// MergeInto applies the patch on top of a prior style, attribute by
// attribute.
func (p StylePatch) MergeInto(sty Style) Style {
	if p.hasForeground {
		sty.Foreground = p.foreground
	}
	if p.hasBackground {
		sty.Background = p.background
	}
	if p.hasAttrs {
		sty.Attrs = p.attrs
	}
	return sty
}
