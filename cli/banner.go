// Package cli renders terminal output for multiview programs: boxed banners,
// dividers, and interactive prompts.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/amp-labs/multiview/envutil"
	"golang.org/x/term"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment of text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultTerminalWidth is used when stdout is not a terminal.
const DefaultTerminalWidth = 80

// MULTIVIEW_NO_BANNER=true turns every banner into its plain text.
var suppressBanner = sync.OnceValue(func() bool { //nolint:gochecknoglobals
	return envutil.Bool(context.Background(), "MULTIVIEW_NO_BANNER",
		envutil.Default(false)).
		ValueOrElse(false)
})

// TerminalWidth returns the width of the terminal attached to stdout, or
// DefaultTerminalWidth when there is none.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}

	return width
}

// DividerAutoWidth is Divider at the terminal's width.
func DividerAutoWidth() string {
	return Divider(TerminalWidth())
}

// BannerAutoWidth is Banner at the terminal's width.
func BannerAutoWidth(s string, a Alignment) string {
	return Banner(s, TerminalWidth(), a)
}

// Divider returns a horizontal rule of the given width, newline terminated.
func Divider(width int) string {
	if width < dividerPadding {
		return "\n"
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// Banner draws s, which may span several lines, inside a box of the given
// total width. Lines that don't fit are truncated with an ellipsis.
func Banner(s string, width int, alignment Alignment) string {
	if suppressBanner() {
		return s + "\n"
	}

	return drawBanner(s, width, alignment)
}

func drawBanner(s string, width int, alignment Alignment) string {
	if width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		var line string

		switch alignment {
		case AlignCenter:
			line = padCenter(l, inner)
		case AlignLeft:
			line = padLeft(l, inner)
		case AlignRight:
			line = padRight(l, inner)
		default:
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// fit truncates text to width graphic runes, reserving room for an ellipsis.
func fit(text string, width int) (string, int) {
	length := countGraphic(text)
	if length <= width {
		return text, length
	}

	var sb strings.Builder

	count := 0

	for _, r := range text {
		if unicode.IsGraphic(r) {
			if count == width-truncateReserve {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	sb.WriteString(ellipsis)

	return sb.String(), count + truncateReserve
}

func padCenter(text string, width int) string {
	str, length := fit(text, width)

	diff := width - length
	leftPad := diff / halfDivisor

	return strings.Repeat(" ", leftPad) + str + strings.Repeat(" ", diff-leftPad)
}

func padLeft(text string, width int) string {
	str, length := fit(text, width)

	return str + strings.Repeat(" ", width-length)
}

func padRight(text string, width int) string {
	str, length := fit(text, width)

	return strings.Repeat(" ", width-length) + str
}
