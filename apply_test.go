package ansifmt

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestApplyWholeSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := DocumentFromString("hello")
	doc = ApplyStyle(doc, Selection{0, 5}, Patch().Foreground(31))
	expected := Document{{Text: "hello", Style: Style{Foreground: 31}}}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("expected exact-bounds selection to restyle without splitting: %v", diff)
	}
}

func TestApplyMidSection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := DocumentFromString("Hello World")
	doc = ApplyStyle(doc, Selection{6, 11}, Patch().Attrs(AttrBold))
	if doc.FragmentCount() != 2 {
		t.Errorf("expected styled text to have 2 segments, has %d", doc.FragmentCount())
	}
	doc = ApplyStyle(doc, Selection{0, 1}, Patch().Attrs(AttrBold))
	if doc.FragmentCount() != 3 {
		t.Errorf("expected styled text to have 3 segments, has %d", doc.FragmentCount())
	}
	if doc.String() != "Hello World" {
		t.Errorf("styling must not change the text, have '%s'", doc.String())
	}
}

func TestApplyTwoSelections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := DocumentFromString("hello world")
	doc = ApplyStyle(doc, Selection{0, 5}, Patch().Foreground(31).Attrs(AttrBold))
	doc = ApplyStyle(doc, Selection{6, 11}, Patch().Background(45))
	expected := Document{
		{Text: "hello", Style: Style{Foreground: 31, Attrs: AttrBold}},
		{Text: " "},
		{Text: "world", Style: Style{Background: 45}},
	}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("unexpected segments after two style applications: %v", diff)
	}
}

func TestApplyAcrossBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{
		{Text: "hello", Style: Style{Foreground: 31, Attrs: AttrBold}},
		{Text: " "},
		{Text: "world", Style: Style{Background: 45}},
	}
	doc = ApplyStyle(doc, Selection{3, 8}, Patch().Attrs(AttrUnderline))
	expected := Document{
		{Text: "hel", Style: Style{Foreground: 31, Attrs: AttrBold}},
		{Text: "lo", Style: Style{Foreground: 31, Attrs: AttrUnderline}},
		{Text: " ", Style: Style{Attrs: AttrUnderline}},
		{Text: "wo", Style: Style{Background: 45, Attrs: AttrUnderline}},
		{Text: "rld", Style: Style{Background: 45}},
	}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("unexpected segments after cross-boundary styling: %v", diff)
	}
}

func TestApplyKeepsOutsideUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{
		{Text: "abc", Style: Style{Foreground: 32}},
		{Text: "defg", Style: Style{Foreground: 33}},
	}
	before := doc.StyleRuns()
	styled := ApplyStyle(doc, Selection{3, 5}, Patch().Background(41))
	// characters outside [3,5) keep text and style
	for pos := 0; pos < styled.Len(); pos++ {
		if pos >= 3 && pos < 5 {
			continue
		}
		sty, err := styled.StyleAt(pos)
		if err != nil {
			t.Fatalf("style-at returned error: %v", err)
		}
		var prior Style
		for _, run := range before {
			if pos >= run.Position && pos < run.Position+run.Length {
				prior = run.Style
			}
		}
		if !sty.Equals(prior) {
			t.Errorf("style at position %d changed from %v to %v", pos, prior, sty)
		}
	}
	if styled.String() != doc.String() {
		t.Errorf("styling must not change the text, have '%s'", styled.String())
	}
}

func TestApplyPerAttributeOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{{Text: "hello", Style: Style{Foreground: 31}}}
	doc = ApplyStyle(doc, Selection{0, 5}, Patch().Background(45))
	if doc[0].Style.Foreground != 31 {
		t.Errorf("expected prior foreground 31 to survive, have %v", doc[0].Style.Foreground)
	}
	if doc[0].Style.Background != 45 {
		t.Errorf("expected new background 45, have %v", doc[0].Style.Background)
	}
}

func TestApplyIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := DocumentFromString("hello world")
	sel := Selection{2, 9}
	patch := Patch().Foreground(36).Attrs(AttrBold)
	once := ApplyStyle(doc, sel, patch)
	twice := ApplyStyle(once, sel, patch)
	if diff := deep.Equal(once, twice); diff != nil {
		t.Errorf("expected identical restyle to be idempotent: %v", diff)
	}
}

func TestApplyInactiveSelection(t *testing.T) {
	doc := DocumentFromString("hello")
	same := ApplyStyle(doc, Selection{3, 3}, Patch().Foreground(31))
	if diff := deep.Equal(same, doc); diff != nil {
		t.Errorf("expected zero-width selection to be a no-op: %v", diff)
	}
}

func TestApplyClampsSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := DocumentFromString("hello")
	doc = ApplyStyle(doc, Selection{Anchor: 99, Cursor: 3}, Patch().Attrs(AttrUnderline))
	expected := Document{
		{Text: "hel"},
		{Text: "lo", Style: Style{Attrs: AttrUnderline}},
	}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("expected out-of-bounds selection to be clamped: %v", diff)
	}
}
