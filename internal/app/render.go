package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/ansifmt/palette"
)

const (
	rowTitle   = 0
	rowText    = 2
	rowPalette = 4
	rowPending = 6
	rowStatus  = 7
	rowHelp    = 8
)

func (app *Application) render() {
	app.screen.Clear()
	width, _ := app.screen.Size()
	app.drawString(0, rowTitle, "ansifmt – compose styled chat text", tcell.StyleDefault.Bold(true))
	app.drawText(width)
	app.drawPalette()
	app.drawString(0, rowPending, "pending: "+app.session.Pending().String(), tcell.StyleDefault)
	app.drawString(0, rowStatus, app.status, tcell.StyleDefault.Dim(true))
	app.drawString(0, rowHelp,
		"shift+arrows select | 1-8 fg  F1-F8 bg  b/u attrs | enter apply | ctrl-y copy | ctrl-l clear | ctrl-c quit",
		tcell.StyleDefault.Dim(true))
	app.screen.Show()
}

// drawText paints the document, one cell per rune, with the selection
// shown in reverse video.
func (app *Application) drawText(width int) {
	start, end := app.session.Selection().Ordered()
	selActive := app.session.Selection().Active()
	x := 0
	for seg, pos := range app.session.Document().RangeSegment() {
		style := styleToTcell(seg.Style)
		off := pos
		for _, r := range seg.Text {
			cell := style
			if selActive && off >= start && off < end {
				cell = cell.Reverse(true)
			}
			if x < width {
				app.screen.SetContent(x, rowText, r, nil, cell)
			}
			x += runewidth.RuneWidth(r)
			off += len(string(r))
		}
	}
	// block cursor at the end of the text
	if x < width {
		app.screen.SetContent(x, rowText, ' ', nil, tcell.StyleDefault.Reverse(true))
	}
}

// drawPalette paints the 8 foreground choices with their key bindings.
func (app *Application) drawPalette() {
	x := 0
	for i, entry := range palette.Foregrounds() {
		label := string(rune('1'+i)) + ":" + entry.Name + " "
		sty := styleToTcell(ansifmt.Style{Foreground: entry.Code})
		x = app.drawString(x, rowPalette, label, sty)
	}
}

func (app *Application) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		app.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// styleToTcell translates a segment style for on-screen display. SGR codes
// 30–37 and 40–47 map onto the terminal's base palette.
func styleToTcell(sty ansifmt.Style) tcell.Style {
	style := tcell.StyleDefault
	if sty.Foreground.IsSet() {
		style = style.Foreground(tcell.PaletteColor(int(sty.Foreground) - 30))
	}
	if sty.Background.IsSet() {
		style = style.Background(tcell.PaletteColor(int(sty.Background) - 40))
	}
	if sty.Attrs.Contains(ansifmt.AttrBold) {
		style = style.Bold(true)
	}
	if sty.Attrs.Contains(ansifmt.AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}
