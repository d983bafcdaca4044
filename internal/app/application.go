// Package app implements the interactive editing surface: a one-line text
// box, a selection, palette pickers and the copy action. All document logic
// lives in the ansifmt root package; app only translates key events into
// session calls and paints the result.
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/ansifmt/clipboard"
	"github.com/npillmayer/ansifmt/session"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ansifmt'
func tracer() tracing.Trace {
	return tracing.Select("ansifmt")
}

// Application runs the interactive editor on a tcell screen.
type Application struct {
	screen    tcell.Screen
	session   *session.Session
	clip      *clipboard.Writer
	clipAvail bool
	status    string
	quit      bool
}

// NewApplication initializes the terminal screen and an empty session.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	clip, clipAvail := clipboard.Detect()
	app := &Application{
		screen:    screen,
		session:   session.New(),
		clip:      clip,
		clipAvail: clipAvail,
		status:    "type text, shift+arrows to select",
	}
	if !clipAvail {
		tracer().Infof("no clipboard command found, will fall back to OSC 52")
	}
	return app, nil
}

// Run processes events until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()
	app.render()
	for !app.quit {
		ev := app.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			app.handleKey(ev)
		case *tcell.EventResize:
			app.screen.Sync()
		}
		app.render()
	}
}

// Close releases the session. The screen is finalized by Run.
func (app *Application) Close() {
	app.session.Close()
}

// Encoded returns the encoded block for the current document, for printing
// after the screen has been torn down.
func (app *Application) Encoded() string {
	return app.session.Encoded()
}

// copyEncoded hands the encoded string to the clipboard. Failure only
// surfaces in the status line; the copy is fire-and-forget.
func (app *Application) copyEncoded() {
	encoded := app.session.Encoded()
	if encoded == "" {
		app.status = "nothing to copy"
		return
	}
	if app.clipAvail {
		if err := app.clip.Write(encoded); err != nil {
			tracer().Errorf("clipboard: %v", err)
			app.status = "copy failed: " + err.Error()
			return
		}
		app.status = "copied to clipboard"
		return
	}
	// no clipboard command installed, ask the terminal itself (OSC 52)
	app.screen.SetClipboard([]byte(encoded))
	app.status = "copied via terminal"
}
