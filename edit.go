package ansifmt

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// ReconcileEdit reconciles a document with the new full text after an edit.
// Edits are assumed to grow or shrink the text at its end; arbitrary-position
// insertion is not modeled (see the package documentation).
//
// When the text grows, the added suffix inherits the style of the last
// segment: continuing to type extends whatever the user was just writing.
// A document that carries no styling at all is replaced wholesale by a
// single unstyled segment. When the text shrinks, segments are kept left to
// right while they fit, the first partially-fitting segment is truncated and
// all segments after it are dropped.
//
// ReconcileEdit is total: it never fails and always returns a well-formed
// document (possibly empty, if newtext is empty).
func ReconcileEdit(doc Document, newtext string) Document {
	oldlen := doc.Len()
	delta := len(newtext) - oldlen
	tracer().Debugf("reconcile edit: delta=%d", delta)
	var reconciled Document
	switch {
	case delta > 0:
		reconciled = growTail(doc, newtext)
	case delta < 0:
		reconciled = shrinkTail(doc, newtext)
	default:
		// equal-length replacement is not a supported edit
		reconciled = doc
	}
	reconciled.checkInvariants(newtext)
	return reconciled
}

// growTail appends the newly added suffix to the last segment, preserving
// its style.
func growTail(doc Document, newtext string) Document {
	if len(doc) == 0 || (len(doc) == 1 && doc[0].Style.IsZero()) {
		// user is typing into a fresh box with nothing styled yet
		return DocumentFromString(newtext)
	}
	oldlen := doc.Len()
	grown := make(Document, len(doc))
	copy(grown, doc)
	last := &grown[len(grown)-1]
	last.Text += newtext[oldlen:]
	return grown
}

// shrinkTail walks segments left to right with a remaining-length budget,
// truncating the first segment the budget does not cover and dropping the
// rest.
func shrinkTail(doc Document, newtext string) Document {
	remaining := len(newtext)
	shrunk := make(Document, 0, len(doc))
	for _, seg := range doc {
		if remaining >= seg.Len() {
			shrunk = append(shrunk, seg)
			remaining -= seg.Len()
			continue
		}
		if remaining > 0 {
			shrunk = append(shrunk, Segment{
				Text:  seg.Text[:remaining],
				Style: seg.Style,
			})
		}
		break
	}
	return shrunk
}

// Clear discards all styling and returns a single unstyled segment holding
// fulltext verbatim. There is no undo.
func Clear(doc Document, fulltext string) Document {
	cleared := DocumentFromString(fulltext)
	cleared.checkInvariants(fulltext)
	return cleared
}
