package ansifmt

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// ApplyStyle applies a style patch to the characters a selection covers,
// splitting segments at the selection boundaries. Characters outside the
// selection are left untouched, byte for byte and style for style.
//
// The patch merges per attribute: a segment partially covered by the
// selection keeps its own prior foreground if the patch carries none.
// Adjacent segments ending up with identical style are not merged; clients
// wanting fewer segments may run Coalesce afterwards.
//
// An inactive (zero-width) selection returns the document unchanged.
// Selection bounds are clamped to valid text positions.
func ApplyStyle(doc Document, sel Selection, patch StylePatch) Document {
	fulltext := doc.String()
	spn := sel.span().clamped(len(fulltext))
	if spn.void() {
		tracer().Debugf("apply style: void selection, nothing to style")
		return doc
	}
	tracer().Debugf("apply style: %v onto [%d,%d)", patch.MergeInto(Style{}), spn.l, spn.r)
	styled := make(Document, 0, len(doc)+2)
	pos := 0 // text position of the current segment
	for _, seg := range doc {
		styled = append(styled, sliceSegment(seg, pos, spn, patch)...)
		pos += seg.Len()
	}
	styled.checkInvariants(fulltext)
	return styled
}

// sliceSegment cuts a single segment against the selection span and returns
// its replacement run(s): an unaffected prefix, the restyled overlap and an
// unaffected suffix. Empty slices are dropped. A segment entirely outside
// the span is returned unchanged.
func sliceSegment(seg Segment, pos int, spn span, patch StylePatch) []Segment {
	overlap := toSpan(spn.l-pos, spn.r-pos).clamped(seg.Len())
	if overlap.void() {
		return []Segment{seg}
	}
	parts := make([]Segment, 0, 3)
	if overlap.l > 0 {
		parts = append(parts, Segment{
			Text:  seg.Text[:overlap.l],
			Style: seg.Style,
		})
	}
	parts = append(parts, Segment{
		Text:  seg.Text[overlap.l:overlap.r],
		Style: patch.MergeInto(seg.Style),
	})
	if overlap.r < seg.Len() {
		parts = append(parts, Segment{
			Text:  seg.Text[overlap.r:],
			Style: seg.Style,
		})
	}
	return parts
}
