/*
Package session wires the segment model to a presentation layer.

A Session is the explicit context object holding what the surrounding UI
would otherwise keep in scattered globals: the current document, the
ephemeral selection, and the style attributes the user has picked but not
yet applied. Every mutating call replaces the document wholesale
(copy-on-write) and broadcasts a change snapshot to subscribers, so a
status line or preview pane can follow along without polling.

A Session is owned by exactly one logical caller at a time; it performs no
locking of its own.
*/
package session

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/ansifmt/formatter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ansifmt'
func tracer() tracing.Trace {
	return tracing.Select("ansifmt")
}

// Change is the snapshot broadcast to subscribers after every mutating
// session call.
type Change struct {
	Document  ansifmt.Document
	Selection ansifmt.Selection
	Encoded   string
}

// Session holds the document, the current selection and the pending style
// picks of one editing surface.
type Session struct {
	doc  ansifmt.Document
	text string
	sel  ansifmt.Selection

	// style picks, collected until Apply
	foreground    ansifmt.Color
	hasForeground bool
	background    ansifmt.Color
	hasBackground bool
	attrs         ansifmt.Attr
	hasAttrs      bool

	cast *caster.Caster
}

// New creates an empty session.
func New() *Session {
	return &Session{
		cast: caster.New(nil), // we will broadcast change snapshots
	}
}

// Close shuts down the change broadcaster. The session itself stays usable,
// but no further snapshots are delivered.
func (s *Session) Close() {
	s.cast.Close()
}

// Subscribe returns a channel of Change snapshots. The ok return value is
// false when the session has been closed. Slow subscribers never block a
// mutating call; snapshots are published fire-and-forget.
func (s *Session) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return s.cast.Sub(ctx, 1)
}

// Document returns the current document.
func (s *Session) Document() ansifmt.Document {
	return s.doc
}

// Text returns the current full text.
func (s *Session) Text() string {
	return s.text
}

// Selection returns the current selection.
func (s *Session) Selection() ansifmt.Selection {
	return s.sel
}

// Encoded returns the escape-coded block for the current document.
func (s *Session) Encoded() string {
	return formatter.Encode(s.doc)
}

// SetText reconciles the session with the text after an edit. Edits are
// expected to grow or shrink the text at its end; see ansifmt.ReconcileEdit
// for the reconciliation policy.
func (s *Session) SetText(newtext string) {
	s.doc = ansifmt.ReconcileEdit(s.doc, newtext)
	s.text = newtext
	s.broadcast()
}

// Select sets the selection to the range between anchor and cursor.
func (s *Session) Select(anchor, cursor int) {
	s.sel = ansifmt.Selection{Anchor: anchor, Cursor: cursor}
}

// Deselect collapses the selection.
func (s *Session) Deselect() {
	s.sel.Clear()
}

// PickForeground records a foreground choice for the next Apply.
func (s *Session) PickForeground(c ansifmt.Color) {
	s.foreground = c
	s.hasForeground = true
}

// PickBackground records a background choice for the next Apply.
func (s *Session) PickBackground(c ansifmt.Color) {
	s.background = c
	s.hasBackground = true
}

// ToggleBold flips the bold flag of the pending attribute pick.
func (s *Session) ToggleBold() {
	s.toggle(ansifmt.AttrBold)
}

// ToggleUnderline flips the underline flag of the pending attribute pick.
func (s *Session) ToggleUnderline() {
	s.toggle(ansifmt.AttrUnderline)
}

func (s *Session) toggle(attr ansifmt.Attr) {
	if s.attrs.Contains(attr) {
		s.attrs = s.attrs.Minus(attr)
	} else {
		s.attrs = s.attrs.Add(attr)
	}
	// once the user touches the attribute picks, Apply overrides the
	// attribute set of the selected range, even back to plain
	s.hasAttrs = true
}

// Pending returns the style the collected picks would produce on an
// unstyled run. Useful for picker previews.
func (s *Session) Pending() ansifmt.Style {
	return s.patch().MergeInto(ansifmt.Style{})
}

func (s *Session) patch() ansifmt.StylePatch {
	p := ansifmt.Patch()
	if s.hasForeground {
		p = p.Foreground(s.foreground)
	}
	if s.hasBackground {
		p = p.Background(s.background)
	}
	if s.hasAttrs {
		p = p.Attrs(s.attrs)
	}
	return p
}

// Apply applies the pending style picks to the selected range. Without an
// active selection or without any picks this is a no-op. The selection and
// the picks are cleared afterwards.
func (s *Session) Apply() {
	patch := s.patch()
	if !s.sel.Active() || patch.IsEmpty() {
		tracer().Debugf("session: nothing to apply")
		return
	}
	s.doc = ansifmt.ApplyStyle(s.doc, s.sel, patch)
	s.sel.Clear()
	s.clearPicks()
	s.broadcast()
}

// Reset discards all styling, collapsing the document to a single unstyled
// segment over the current text. There is no undo.
func (s *Session) Reset() {
	s.doc = ansifmt.Clear(s.doc, s.text)
	s.clearPicks()
	s.broadcast()
}

func (s *Session) clearPicks() {
	s.foreground = ansifmt.NoColor
	s.hasForeground = false
	s.background = ansifmt.NoColor
	s.hasBackground = false
	s.attrs = ansifmt.AttrNone
	s.hasAttrs = false
}

func (s *Session) broadcast() {
	s.cast.TryPub(Change{
		Document:  s.doc,
		Selection: s.sel,
		Encoded:   s.Encoded(),
	})
}
