package ansifmt

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReconcileFreshBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{}
	doc = ReconcileEdit(doc, "h")
	doc = ReconcileEdit(doc, "hi")
	if doc.FragmentCount() != 1 {
		t.Errorf("expected fresh typing to yield 1 segment, has %d", doc.FragmentCount())
	}
	if doc.String() != "hi" || !doc[0].Style.IsZero() {
		t.Errorf("expected single unstyled segment 'hi', have %v", doc)
	}
}

func TestReconcileGrowExtendsLastStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{{Text: "hello", Style: Style{Foreground: 31}}}
	doc = ReconcileEdit(doc, "hello there")
	expected := Document{{Text: "hello there", Style: Style{Foreground: 31}}}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("expected appended suffix to inherit last segment's style: %v", diff)
	}
}

func TestReconcileShrinkTruncatesTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{
		{Text: "hello", Style: Style{Foreground: 31, Attrs: AttrBold}},
		{Text: " "},
		{Text: "world", Style: Style{Background: 45}},
	}
	doc = ReconcileEdit(doc, "hello wor")
	expected := Document{
		{Text: "hello", Style: Style{Foreground: 31, Attrs: AttrBold}},
		{Text: " "},
		{Text: "wor", Style: Style{Background: 45}},
	}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("expected tail truncation to leave interior segments alone: %v", diff)
	}
}

func TestReconcileShrinkDropsSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{
		{Text: "abc", Style: Style{Foreground: 32}},
		{Text: "def", Style: Style{Foreground: 33}},
	}
	doc = ReconcileEdit(doc, "abc")
	if doc.FragmentCount() != 1 {
		t.Errorf("expected shrink to boundary to drop trailing segment, has %d", doc.FragmentCount())
	}
	doc = ReconcileEdit(doc, "")
	if !doc.IsVoid() {
		t.Errorf("expected shrink to empty text to yield the void document, have %v", doc)
	}
}

func TestReconcileEqualLengthIsNoop(t *testing.T) {
	doc := Document{{Text: "abc", Style: Style{Attrs: AttrUnderline}}}
	same := ReconcileEdit(doc, "xyz")
	if diff := deep.Equal(same, doc); diff != nil {
		t.Errorf("expected equal-length edit to be a no-op: %v", diff)
	}
}

func TestLengthConservation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	texts := []string{"", "a", "abcd", "abcdefgh", "abc", "", "typing again"}
	doc := Document{}
	for _, text := range texts {
		doc = ReconcileEdit(doc, text)
		if doc.Len() != len(text) {
			t.Errorf("segment lengths sum to %d, text has %d bytes", doc.Len(), len(text))
		}
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	doc := Document{
		{Text: "hello", Style: Style{Foreground: 31}},
		{Text: " world", Style: Style{Background: 45}},
	}
	doc = Clear(doc, "hello world")
	expected := Document{{Text: "hello world"}}
	if diff := deep.Equal(doc, expected); diff != nil {
		t.Errorf("expected clear to collapse to one unstyled segment: %v", diff)
	}
	if !Clear(doc, "").IsVoid() {
		t.Errorf("expected clearing empty text to yield the void document")
	}
}
