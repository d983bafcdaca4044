/*
Package clipboard hands encoded strings to the system clipboard.

The hand-off is a fire-and-forget side effect: callers report a failure to
the user but never retry, and clipboard availability is not part of any
core contract. Writing is done through an external clipboard command when
one is installed; terminals without one can be served through an OSC 52
escape sequence instead (useful over SSH).
*/
package clipboard

import (
	"encoding/base64"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer writes to trace with key 'ansifmt'
func tracer() tracing.Trace {
	return tracing.Select("ansifmt")
}

// Writer copies strings to the system clipboard through an external
// command.
type Writer struct {
	cmd []string
}

// Detect looks for a clipboard command on the current platform. The second
// return value is false when none is installed.
func Detect() (*Writer, bool) {
	cmd, ok := detect(runtime.GOOS, exec.LookPath)
	if !ok {
		return nil, false
	}
	return &Writer{cmd: cmd}, true
}

func detect(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	if strings.EqualFold(goos, "windows") {
		for _, candidate := range []string{"clip.exe", "clip"} {
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
		return nil, false
	}
	for _, candidate := range []string{"pbcopy", "xclip", "wl-copy", "xsel"} {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return []string{path}, true
		}
	}
	return nil, false
}

// Write pipes s into the clipboard command's stdin.
func (cw *Writer) Write(s string) error {
	if cw == nil || len(cw.cmd) == 0 {
		return errors.New("no clipboard command available")
	}
	cmd := exec.Command(cw.cmd[0], cw.cmd[1:]...)
	cmd.Stdin = strings.NewReader(s)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "clipboard command %s failed", cw.cmd[0])
	}
	tracer().Debugf("clipboard: copied %d bytes via %s", len(s), cw.cmd[0])
	return nil
}

// WriteOSC52 asks the hosting terminal to set the clipboard through an
// OSC 52 escape sequence. w should be the terminal's output stream.
func WriteOSC52(w io.Writer, s string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(s))
	_, err := io.WriteString(w, "\x1b]52;c;"+encoded+"\a")
	return errors.Wrap(err, "cannot write OSC 52 sequence")
}
