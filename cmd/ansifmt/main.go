package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/npillmayer/ansifmt/internal/app"

	"github.com/npillmayer/ansifmt"
	"github.com/npillmayer/ansifmt/clipboard"
	"github.com/npillmayer/ansifmt/formatter"
	"golang.org/x/term"
)

func printHelp() {
	fmt.Print(`ansifmt - compose styled text for terminal-aware chat clients

USAGE:
    ansifmt              Run the interactive editor
    ansifmt -e, --encode Read plain text from stdin and print the encoded block
    ansifmt -h, --help   Show this help message and exit

In the editor, select a range with shift+arrows, pick colors and attributes,
apply with enter and copy the result with ctrl-y.
`)
}

// encodeStdin wraps stdin verbatim into a fenced block, without styling.
func encodeStdin(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	encoded := formatter.Encode(ansifmt.DocumentFromString(string(raw)))
	if encoded == "" {
		return nil
	}
	_, err = fmt.Fprintln(out, encoded)
	return err
}

func main() {
	// UTF-8 fallback keeps non-Latin text intact on terminals with an
	// unknown encoding
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "-e", "--encode":
			if err := encodeStdin(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding input: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		default:
			printHelp()
			os.Exit(2)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run()

	// print the final encoding so it survives the screen teardown
	if encoded := app.Encoded(); encoded != "" {
		fmt.Println(encoded)
		if clip, ok := clipboard.Detect(); ok {
			_ = clip.Write(encoded) // fire and forget
		} else if term.IsTerminal(int(os.Stdout.Fd())) {
			_ = clipboard.WriteOSC52(os.Stdout, encoded)
		}
	}
}
