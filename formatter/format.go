package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"

	"github.com/npillmayer/ansifmt"
)

// Format is an interface for formatting drivers, given an io.Writer.
//
// Preamble is called once before the first segment, Postamble once after the
// last one. StyledText is called for every segment in left-to-right text
// order.
type Format interface {
	Preamble(w io.Writer) error
	StyledText(s string, sty ansifmt.Style, w io.Writer) error
	Postamble(w io.Writer) error
}

// Output formats a styled document using a given formatter.
//
// Neither out nor format may be nil. A void document produces no output at
// all, not even the preamble.
func Output(doc ansifmt.Document, out io.Writer, format Format) error {
	if out == nil || format == nil {
		return ansifmt.ErrIllegalArguments
	}
	if doc.IsVoid() {
		return nil
	}
	if err := format.Preamble(out); err != nil {
		return err
	}
	err := doc.EachSegment(func(seg ansifmt.Segment, pos int) error {
		tracer().Debugf("format segment %v @ %d", seg, pos)
		return format.StyledText(seg.Text, seg.Style, out)
	})
	if err != nil {
		return err
	}
	return format.Postamble(out)
}
