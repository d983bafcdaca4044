package ansifmt

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"
)

// Segment is a contiguous run of characters sharing identical style.
// Segments are never empty; zero-length runs are dropped by every operation
// that could produce them.
type Segment struct {
	Text  string
	Style Style
}

// Len returns the segment length in bytes.
func (seg Segment) Len() int {
	return len(seg.Text)
}

// String returns an informational string for the segment. Clients must not
// rely on its format.
func (seg Segment) String() string {
	return seg.Style.String() + "(" + seg.Text + ")"
}

// --- Document --------------------------------------------------------------

// Document is an ordered partition of a text into styled segments: the
// concatenated segment texts equal the full text exactly, with no gaps and
// no overlaps, and a character belongs to exactly one segment.
//
// A Document is treated as an immutable value. Operations return a fresh
// Document and never modify their input, so a document held by a caller
// stays valid across operations on derived documents.
//
// Document{} is a valid object and behaves like the empty text.
type Document []Segment

// DocumentFromString creates a document holding the complete text as a
// single unstyled segment. The empty string yields the empty document.
func DocumentFromString(text string) Document {
	if text == "" {
		return Document{}
	}
	return Document{{Text: text}}
}

// String returns the full text of the document, without any styling.
func (doc Document) String() string {
	var sb strings.Builder
	for _, seg := range doc {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Len returns the length of the document's full text in bytes.
func (doc Document) Len() int {
	n := 0
	for _, seg := range doc {
		n += seg.Len()
	}
	return n
}

// IsVoid reports whether the document has no text.
func (doc Document) IsVoid() bool {
	return len(doc) == 0
}

// FragmentCount returns the number of segments in the document.
func (doc Document) FragmentCount() int {
	return len(doc)
}

// EachSegment applies a function to each segment in left-to-right order.
// pos is the text position of the segment within the overall text.
//
// This may be thought of as a “push”-interface to access the runs of a
// document. For a “pull”-interface please refer to RangeSegment.
func (doc Document) EachSegment(f func(seg Segment, pos int) error) error {
	pos := 0
	for _, seg := range doc {
		if err := f(seg, pos); err != nil {
			return err
		}
		pos += seg.Len()
	}
	return nil
}

// RangeSegment returns an iterator over all segments in logical order,
// together with their text positions.
func (doc Document) RangeSegment() iter.Seq2[Segment, int] {
	return func(yield func(Segment, int) bool) {
		pos := 0
		for _, seg := range doc {
			if !yield(seg, pos) {
				return
			}
			pos += seg.Len()
		}
	}
}

// StyleRun holds a style and the text position where the run starts.
type StyleRun struct {
	Style    Style
	Position int
	Length   int
}

// StyleRuns returns a slice of style runs for the document.
func (doc Document) StyleRuns() []StyleRun {
	runs := make([]StyleRun, len(doc))
	pos := 0
	for i, seg := range doc {
		runs[i] = StyleRun{Style: seg.Style, Position: pos, Length: seg.Len()}
		pos += seg.Len()
	}
	return runs
}

// StyleAt returns the style at byte position pos of the document.
func (doc Document) StyleAt(pos int) (Style, error) {
	cur := 0
	for _, seg := range doc {
		if pos < cur+seg.Len() {
			return seg.Style, nil
		}
		cur += seg.Len()
	}
	return Style{}, ErrIndexOutOfBounds
}

// Coalesce merges adjacent segments of identical style. Coalescing is an
// optional cleanup: it reduces the segment count but never changes the full
// text nor the encoded output.
func Coalesce(doc Document) Document {
	if len(doc) < 2 {
		return doc
	}
	merged := make(Document, 0, len(doc))
	for _, seg := range doc {
		if n := len(merged); n > 0 && merged[n-1].Style.Equals(seg.Style) {
			merged[n-1].Text += seg.Text
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// checkInvariants asserts the partition invariants at component boundaries:
// segments are non-empty and their lengths sum to the length of fulltext.
func (doc Document) checkInvariants(fulltext string) {
	n := 0
	for _, seg := range doc {
		assert(seg.Len() > 0, "document must not contain empty segments")
		n += seg.Len()
	}
	assert(n == len(fulltext), "segment lengths must sum to full text length")
}
