package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/ansifmt"
)

// Escape sequence fragments for Discord's fenced 'ansi' code blocks. The
// literal shape of the output is a compatibility contract with the chat
// renderer and must be reproduced bit-exact.
const (
	fenceOpen  = "```ansi\n"
	fenceClose = "\n```"
	escIntro   = "\x1b["
	escDone    = "m"
	escReset   = "\x1b[0m"
)

// Discord is a format for escape-coded fenced code blocks as rendered by
// terminal-aware chat clients. The zero value is ready to use.
type Discord struct{}

// Preamble opens the fenced block with the fixed language tag.
// (Part of interface Format)
func (d Discord) Preamble(w io.Writer) error {
	_, err := io.WriteString(w, fenceOpen)
	return err
}

// StyledText emits one span: styled runs are wrapped into an escape
// introducer with the semicolon-joined SGR codes and a trailing reset,
// unstyled runs are emitted raw.
// (Part of interface Format)
func (d Discord) StyledText(s string, sty ansifmt.Style, w io.Writer) error {
	if sty.IsZero() {
		_, err := io.WriteString(w, s)
		return err
	}
	var sb strings.Builder
	sb.WriteString(escIntro)
	sb.WriteString(strings.Join(sty.Codes(), ";"))
	sb.WriteString(escDone)
	sb.WriteString(s)
	sb.WriteString(escReset)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Postamble closes the fenced block.
// (Part of interface Format)
func (d Discord) Postamble(w io.Writer) error {
	_, err := io.WriteString(w, fenceClose)
	return err
}

// Encode serializes a document into a single escape-coded fenced block.
// Blank-only text yields the empty string: there is nothing worth sending.
func Encode(doc ansifmt.Document) string {
	if strings.TrimSpace(doc.String()) == "" {
		return ""
	}
	var sb strings.Builder
	if err := Output(doc, &sb, Discord{}); err != nil {
		// string builders do not fail; a non-void document always encodes
		tracer().Errorf("discord encode: %v", err)
		return ""
	}
	return sb.String()
}

var _ Format = Discord{}
