/*
Package ansifmt builds styled text for terminal-aware chat renderers.

A piece of text is held as an ordered partition into segments, where each
segment is a contiguous run of characters sharing one style (foreground
color, background color, bold/underline flags). The partition is kept
consistent while the underlying text is edited and while style changes are
applied to arbitrary character ranges, splitting segments at range
boundaries as needed.

The package root owns the segment model. Serializing a document into an
escape-coded string is the job of package formatter; the fixed color
vocabulary lives in package palette.

Text positions are byte offsets into the full text. A selection is a
half-open range [start,end); zero-width selections never trigger a style
change.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ansifmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ansifmt'
func tracer() tracing.Trace {
	return tracing.Select("ansifmt")
}

// assert guards internal invariants. Failing an assertion indicates a caller
// contract violation, not a recoverable runtime condition.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// DocumentError is an error type for the ansifmt module
type DocumentError string

func (e DocumentError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the document's text.
const ErrIndexOutOfBounds = DocumentError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DocumentError("illegal arguments")
