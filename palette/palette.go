package palette

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/fatih/color"
	"github.com/npillmayer/ansifmt"
)

// Entry binds an SGR color code to a display name and a preview swatch.
// The segment model consumes only the numeric code; name and swatch exist
// for pickers and terminal previews.
type Entry struct {
	Name   string
	Code   ansifmt.Color
	Swatch *color.Color
}

// The classic 8-color terminal vocabulary. Display names follow the ANSI
// palette most chat renderers document for fenced 'ansi' blocks.
var foregrounds = []Entry{
	{Name: "Gray", Code: 30},
	{Name: "Red", Code: 31},
	{Name: "Green", Code: 32},
	{Name: "Yellow", Code: 33},
	{Name: "Blue", Code: 34},
	{Name: "Pink", Code: 35},
	{Name: "Cyan", Code: 36},
	{Name: "White", Code: 37},
}

var backgrounds = []Entry{
	{Name: "Dark Blue", Code: 40},
	{Name: "Orange", Code: 41},
	{Name: "Blue Gray", Code: 42},
	{Name: "Light Gray", Code: 43},
	{Name: "Gray", Code: 44},
	{Name: "Indigo", Code: 45},
	{Name: "Silver", Code: 46},
	{Name: "White", Code: 47},
}

func init() {
	// SGR codes double as fatih/color attributes, so swatches can be
	// derived from the codes directly.
	for i := range foregrounds {
		foregrounds[i].Swatch = color.New(color.Attribute(foregrounds[i].Code))
	}
	for i := range backgrounds {
		backgrounds[i].Swatch = color.New(color.Attribute(backgrounds[i].Code))
	}
}

// Foregrounds returns the ordered table of foreground entries (codes 30–37).
func Foregrounds() []Entry {
	return foregrounds
}

// Backgrounds returns the ordered table of background entries (codes 40–47).
func Backgrounds() []Entry {
	return backgrounds
}

// ForegroundByName looks up a foreground entry by its display name.
func ForegroundByName(name string) (Entry, bool) {
	return byName(foregrounds, name)
}

// BackgroundByName looks up a background entry by its display name.
func BackgroundByName(name string) (Entry, bool) {
	return byName(backgrounds, name)
}

// ByCode looks up the entry for an SGR color code, foreground or background.
func ByCode(code ansifmt.Color) (Entry, bool) {
	for _, e := range foregrounds {
		if e.Code == code {
			return e, true
		}
	}
	for _, e := range backgrounds {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

func byName(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
