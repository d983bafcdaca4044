package app

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/ansifmt/palette"
)

// Key bindings. Typing edits the text at its tail. While a selection is
// active, keys turn into style commands instead: digits pick a foreground,
// function keys F1–F8 a background, 'b'/'u' toggle attributes, Enter
// applies, Esc drops the selection.
func (app *Application) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		app.quit = true
	case tcell.KeyCtrlL:
		app.session.Reset()
		app.status = "styling cleared"
	case tcell.KeyCtrlY:
		app.copyEncoded()
	case tcell.KeyEscape:
		app.session.Deselect()
		app.status = "selection dropped"
	case tcell.KeyLeft:
		app.moveSelection(ev.Modifiers(), -1)
	case tcell.KeyRight:
		app.moveSelection(ev.Modifiers(), +1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		app.session.Deselect()
		app.session.SetText(trimLastRune(app.session.Text()))
	case tcell.KeyEnter:
		app.session.Apply()
		app.status = "style applied"
	case tcell.KeyRune:
		app.handleRune(ev.Rune())
	default:
		if code, ok := backgroundForKey(ev.Key()); ok && app.session.Selection().Active() {
			app.session.PickBackground(code)
			app.status = "background picked"
		}
	}
}

func (app *Application) handleRune(r rune) {
	if app.session.Selection().Active() {
		switch {
		case r >= '1' && r <= '8':
			code, _ := foregroundForDigit(r)
			app.session.PickForeground(code)
			app.status = "foreground picked"
		case r == 'b':
			app.session.ToggleBold()
			app.status = "bold toggled"
		case r == 'u':
			app.session.ToggleUnderline()
			app.status = "underline toggled"
		}
		return
	}
	app.session.SetText(app.session.Text() + string(r))
}

// moveSelection grows or shrinks the selection with shift+arrows. Arrow
// keys without shift drop the selection; the editing cursor itself always
// sits at the end of the text.
func (app *Application) moveSelection(mods tcell.ModMask, dir int) {
	text := app.session.Text()
	if mods&tcell.ModShift == 0 {
		app.session.Deselect()
		return
	}
	sel := app.session.Selection()
	if !sel.Active() && dir < 0 {
		// start selecting leftwards from the end of the text
		sel = ansifmt.Selection{Anchor: len(text), Cursor: len(text)}
	}
	sel.Cursor = stepRune(text, sel.Cursor, dir)
	app.session.Select(sel.Anchor, sel.Cursor)
}

// stepRune moves a byte offset by one rune in the given direction, clamped
// to the text bounds.
func stepRune(text string, pos, dir int) int {
	if dir < 0 {
		if pos <= 0 {
			return 0
		}
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		return pos - size
	}
	if pos >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return pos + size
}

// trimLastRune removes the final rune of a string.
func trimLastRune(text string) string {
	if text == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-size]
}

// foregroundForDigit maps digits 1–8 to the palette's foreground entries.
func foregroundForDigit(r rune) (ansifmt.Color, bool) {
	idx := int(r - '1')
	fgs := palette.Foregrounds()
	if idx < 0 || idx >= len(fgs) {
		return ansifmt.NoColor, false
	}
	return fgs[idx].Code, true
}

// backgroundForKey maps F1–F8 to the palette's background entries.
func backgroundForKey(key tcell.Key) (ansifmt.Color, bool) {
	idx := int(key - tcell.KeyF1)
	bgs := palette.Backgrounds()
	if idx < 0 || idx >= len(bgs) {
		return ansifmt.NoColor, false
	}
	return bgs[idx].Code, true
}
