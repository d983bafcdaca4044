package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConsolePreview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()
	//
	doc := ansifmt.Document{
		{Text: "hello", Style: ansifmt.Style{Foreground: 31}},
		{Text: " world"},
	}
	fw := NewConsoleFixedWidth()
	var buf bytes.Buffer
	if err := Output(doc, &buf, fw); err != nil {
		t.Fatalf("console output returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.HasSuffix(out, " world") {
		t.Errorf("preview lost text: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected styled run to be colorized: %q", out)
	}
}

func TestConsoleColorCache(t *testing.T) {
	fw := NewConsoleFixedWidth()
	sty := ansifmt.Style{Foreground: 34, Attrs: ansifmt.AttrBold}
	first := fw.colorFor(sty)
	if fw.colorFor(sty) != first {
		t.Errorf("expected style colors to be cached")
	}
	if len(fw.colors) != 1 {
		t.Errorf("expected 1 cached color, have %d", len(fw.colors))
	}
}

func TestStringWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ansifmt")
	defer teardown()
	//
	if w := StringWidth("hello", nil); w != 5 {
		t.Errorf("expected width 5 for 'hello', have %d", w)
	}
	if w := StringWidth("", nil); w != 0 {
		t.Errorf("expected width 0 for empty string, have %d", w)
	}
}
