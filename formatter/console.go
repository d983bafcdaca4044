package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console preview
// output.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConsoleFixedWidth is a type for previewing a styled document on a console
// with a fixed width font. It renders each segment through the hosting
// terminal's own color handling rather than emitting a fenced block, so the
// user sees what the chat renderer will show.
type ConsoleFixedWidth struct {
	colors map[ansifmt.Style]*color.Color
}

// NewConsoleFixedWidth creates a new console preview formatter.
func NewConsoleFixedWidth() *ConsoleFixedWidth {
	return &ConsoleFixedWidth{
		colors: make(map[ansifmt.Style]*color.Color),
	}
}

// Print outputs a styled document preview to stdout, followed by a newline.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (fw *ConsoleFixedWidth) Print(doc ansifmt.Document, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if w := StringWidth(doc.String(), config.Context); w > config.LineWidth {
		tracer().Infof("preview is %d en wide, terminal offers %d", w, config.LineWidth)
	}
	if err := Output(doc, os.Stdout, fw); err != nil {
		return err
	}
	_, err := os.Stdout.WriteString("\n")
	return err
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text. It uses terminal colors to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, sty ansifmt.Style, w io.Writer) error {
	if sty.IsZero() {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := fw.colorFor(sty).Fprint(w, s)
	return err
}

// Preamble is a no-op for console preview.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) error {
	return nil
}

// Postamble is a no-op for console preview.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) error {
	return nil
}

// colorFor translates a segment style into a fatih/color value, caching the
// translation. SGR codes double as color attributes.
func (fw *ConsoleFixedWidth) colorFor(sty ansifmt.Style) *color.Color {
	if c, ok := fw.colors[sty]; ok {
		return c
	}
	attrs := make([]color.Attribute, 0, 4)
	if sty.Attrs.Contains(ansifmt.AttrBold) {
		attrs = append(attrs, color.Bold)
	}
	if sty.Attrs.Contains(ansifmt.AttrUnderline) {
		attrs = append(attrs, color.Underline)
	}
	if sty.Foreground.IsSet() {
		attrs = append(attrs, color.Attribute(sty.Foreground))
	}
	if sty.Background.IsSet() {
		attrs = append(attrs, color.Attribute(sty.Background))
	}
	c := color.New(attrs...)
	fw.colors[sty] = c
	return c
}

var _ Format = &ConsoleFixedWidth{}

// StringWidth measures the fixed-width display width of a string in “en”s,
// taking grapheme clusters and East Asian width into account. A nil context
// falls back to uax11.LatinContext.
func StringWidth(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a preview Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
