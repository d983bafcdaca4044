package session

import (
	"context"
	"testing"

	"github.com/go-test/deep"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSessionTypeAndStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	s.SetText("hello")
	s.Select(0, 5)
	s.PickForeground(31)
	s.Apply()
	expected := ansifmt.Document{{Text: "hello", Style: ansifmt.Style{Foreground: 31}}}
	if diff := deep.Equal(s.Document(), expected); diff != nil {
		t.Errorf("unexpected document after apply: %v", diff)
	}
	if s.Selection().Active() {
		t.Errorf("expected apply to clear the selection")
	}
	if enc := s.Encoded(); enc != "```ansi\n\x1b[31mhello\x1b[0m\n```" {
		t.Errorf("unexpected encoding: %q", enc)
	}
}

func TestSessionApplyWithoutSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	s.SetText("hello")
	s.PickBackground(45)
	s.Apply() // no selection, must be a no-op
	if !s.Document()[0].Style.IsZero() {
		t.Errorf("expected no styling without a selection, have %v", s.Document())
	}
}

func TestSessionToggles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	s.ToggleBold()
	s.ToggleUnderline()
	s.ToggleBold()
	pending := s.Pending()
	if pending.Attrs.Contains(ansifmt.AttrBold) {
		t.Errorf("expected double toggle to remove bold, have %v", pending.Attrs)
	}
	if !pending.Attrs.Contains(ansifmt.AttrUnderline) {
		t.Errorf("expected underline to stay picked, have %v", pending.Attrs)
	}
}

func TestSessionEditKeepsStyling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	s.SetText("hello")
	s.Select(0, 5)
	s.PickForeground(31)
	s.Apply()
	s.SetText("hello there")
	expected := ansifmt.Document{{Text: "hello there", Style: ansifmt.Style{Foreground: 31}}}
	if diff := deep.Equal(s.Document(), expected); diff != nil {
		t.Errorf("unexpected document after edit: %v", diff)
	}
}

func TestSessionReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	s.SetText("hello world")
	s.Select(0, 5)
	s.PickForeground(31)
	s.Apply()
	s.Reset()
	expected := ansifmt.Document{{Text: "hello world"}}
	if diff := deep.Equal(s.Document(), expected); diff != nil {
		t.Errorf("expected reset to drop all styling: %v", diff)
	}
}

func TestSessionBroadcast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	s := New()
	defer s.Close()
	ch, ok := s.Subscribe(context.Background())
	if !ok {
		t.Fatalf("expected subscription on open session")
	}
	s.SetText("hi")
	msg := <-ch
	change, ok := msg.(Change)
	if !ok {
		t.Fatalf("expected a Change snapshot, have %T", msg)
	}
	if change.Document.String() != "hi" {
		t.Errorf("unexpected change snapshot: %v", change)
	}
}
