package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	defaultWrap = 80
)

// Display writes replies to the terminal, rendering markdown when attached to a TTY.
type Display struct {
	out      io.Writer
	color    bool
	renderer *glamour.TermRenderer
}

// NewDisplay detects whether stdout is a terminal and sizes the renderer to it.
func NewDisplay() *Display {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return NewPlainDisplay(os.Stdout)
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 20 {
		width = defaultWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		renderer = nil
	}

	return &Display{out: os.Stdout, color: true, renderer: renderer}
}

// NewPlainDisplay writes unstyled text to w.
func NewPlainDisplay(w io.Writer) *Display {
	return &Display{out: w}
}

func (d *Display) paint(color, s string) string {
	if !d.color {
		return s
	}
	return color + s + colorReset
}

func (d *Display) PrintWelcome(welcome string) {
	fmt.Fprintln(d.out, d.paint(colorCyan, welcome))
	fmt.Fprintln(d.out, d.paint(colorGray, "Commands: /lang <en|hi|es|fr> | /artwork | /about | /feedback <yes|no> [comment] | /reset | /exit"))
}

func (d *Display) PrintPrompt() {
	fmt.Fprint(d.out, d.paint(colorGreen, "\n> "))
}

// PrintMarkdown renders md through glamour, or prints it as is.
func (d *Display) PrintMarkdown(md string) {
	if d.renderer != nil {
		if out, err := d.renderer.Render(md); err == nil {
			fmt.Fprint(d.out, out)
			return
		}
	}
	fmt.Fprintln(d.out, md)
}

func (d *Display) PrintReply(text string) {
	fmt.Fprintln(d.out, d.paint(colorBlue, "Historian:"))
	d.PrintMarkdown(text)
}

func (d *Display) PrintArtwork(a Artwork) {
	d.PrintMarkdown(fmt.Sprintf("## %s\n*%s, %s*\n\n%s · %s\n\n%s\n\n%s",
		a.Title, a.Artist, a.Year, a.Period, a.Style, a.Description, a.ImageURL))
}

func (d *Display) PrintInfo(msg string) {
	fmt.Fprintln(d.out, d.paint(colorCyan, msg))
}

func (d *Display) PrintError(err error) {
	fmt.Fprintln(d.out, d.paint(colorRed, "Error: "+err.Error()))
}
