package ansifmt

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Selection is a caller-supplied character range over the full text,
// expressed as two byte offsets. Anchor is where the selection started,
// Cursor is where it currently extends to; the two may be given in either
// order. Selections are ephemeral state owned by the caller, not by the
// document.
type Selection struct {
	Anchor, Cursor int
}

// Active reports whether the selection covers a non-empty range. A
// zero-width selection is not a valid selection and disables style
// application.
func (sel Selection) Active() bool {
	return sel.Anchor != sel.Cursor
}

// Ordered returns the selection bounds in ascending order (start, end).
func (sel Selection) Ordered() (start, end int) {
	if sel.Anchor <= sel.Cursor {
		return sel.Anchor, sel.Cursor
	}
	return sel.Cursor, sel.Anchor
}

// Text extracts the selected substring from content, clamping the bounds to
// valid positions.
func (sel Selection) Text(content string) string {
	spn := sel.span().clamped(len(content))
	if spn.void() {
		return ""
	}
	return content[spn.l:spn.r]
}

// Clear collapses the selection so that Anchor equals Cursor.
func (sel *Selection) Clear() {
	sel.Anchor = sel.Cursor
}

// SelectAll expands the selection to cover the entire content of the given
// length.
func (sel *Selection) SelectAll(length int) {
	sel.Anchor = 0
	sel.Cursor = length
}

func (sel Selection) span() span {
	l, r := sel.Ordered()
	return span{l, r}
}

// --- Span ------------------------------------------------------------------

type span struct {
	l int
	r int
}

func toSpan(from, to int) span {
	if from > to {
		from, to = to, from
	}
	return span{from, to}
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() int {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

func (spn span) covers(length int) bool {
	return spn.l <= 0 && spn.r >= length
}

// clamped restricts the span to valid positions of a text of the given
// length. This may result in a void span; no error is flagged.
func (spn span) clamped(length int) span {
	if spn.l < 0 {
		spn.l = 0
	}
	if spn.r > length {
		spn.r = length
	}
	return spn
}
