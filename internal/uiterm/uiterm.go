// Package uiterm provides small terminal presentation primitives shared
// by the executor's progress printer and the outcome package's final
// report: erasing the current line (for carriage-returned progress
// updates) and coloring tokens.
//
// Coloring is built on go-pretty/v6/text — the same colorizer the
// devdashboard example repo uses for its console report formatter —
// rather than hand-rolled ANSI escape sequences.
package uiterm

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Color names the palette a Token may be rendered in.
type Color int

const (
	Plain Color = iota
	Green
	Red
	Bold
)

func (c Color) textColors() text.Colors {
	switch c {
	case Green:
		return text.Colors{text.FgGreen}
	case Red:
		return text.Colors{text.FgRed}
	case Bold:
		return text.Colors{text.Bold}
	default:
		return nil
	}
}

// Token is one fragment of a progress or report line.
type Token struct {
	Text  string
	Color Color
}

// PlainToken wraps s as an uncolored Token.
func PlainToken(s string) Token { return Token{Text: s} }

// Colored wraps s as a Token rendered in the given Color.
func Colored(s string, c Color) Token { return Token{Text: s, Color: c} }

// Render joins tokens with a single space, applying color to any token
// that requests it. Empty tokens are skipped entirely so callers can
// build lines like {"ok", dest} without stray double spaces.
func Render(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		colors := tok.Color.textColors()
		if colors == nil {
			parts = append(parts, tok.Text)
			continue
		}
		parts = append(parts, colors.Sprint(tok.Text))
	}
	return strings.Join(parts, " ")
}

// eraseLine is the ANSI "erase entire line, then return cursor to column
// 0" sequence, grounded on tsrc's erase_last_line helper: the parallel
// executor uses it before each progress update so consecutive workers'
// carriage-returned lines never leave trailing characters from a longer
// previous line.
const eraseLine = "\x1b[2K\r"

// EraseLine writes the erase-line escape sequence to w.
func EraseLine(w io.Writer) {
	fmt.Fprint(w, eraseLine)
}

// WriteProgress erases the current line and writes tokens followed by a
// carriage return (no newline), so the next progress update overwrites
// this one in place.
func WriteProgress(w io.Writer, tokens []Token) {
	EraseLine(w)
	fmt.Fprint(w, Render(tokens)+"\r")
}

// Bullet formats a single failure line for the final report:
// "* <bold item> : <message>", with a green asterisk, matching
// tsrc.executor's handle_errors formatting.
func Bullet(item, message string) string {
	star := Colored("*", Green)
	boldItem := Colored(item, Bold)
	if message == "" {
		return Render([]Token{star, boldItem})
	}
	return Render([]Token{star, boldItem}) + " : " + message
}
