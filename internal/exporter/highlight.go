package exporter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// IllegalStyle is applied to every excluded character.
var IllegalStyle = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)

// Classifier tells whether a character is illegal.
type Classifier interface {
	Contains(c byte) bool
}

// HighlightBuffer lays a line out on a simulation screen, wrapping at width.
type HighlightBuffer struct {
	screen  tcell.SimulationScreen
	width   int
	height  int
	cursorX int
	cursorY int
	rowLen  []int
}

func NewHighlightBuffer(width, height int) (*HighlightBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", width, height)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}
	screen.SetSize(width, height)

	return &HighlightBuffer{
		screen: screen,
		width:  width,
		height: height,
		rowLen: make([]int, height),
	}, nil
}

func (hb *HighlightBuffer) Close() {
	hb.screen.Fini()
}

func (hb *HighlightBuffer) WriteLine(line string, set Classifier) {
	for _, r := range line {
		if hb.cursorX >= hb.width {
			hb.cursorX = 0
			hb.cursorY++
			if hb.cursorY >= hb.height {
				return
			}
		}

		style := tcell.StyleDefault
		if r < utf8.RuneSelf && set.Contains(byte(r)) {
			style = IllegalStyle
		}

		hb.screen.SetContent(hb.cursorX, hb.cursorY, r, nil, style)
		hb.cursorX++
		hb.rowLen[hb.cursorY] = hb.cursorX
	}
	hb.screen.Show()
}

// ExportANSI serialises the written cells back to text with SGR sequences.
// Every row ends with the default style restored.
func (hb *HighlightBuffer) ExportANSI() string {
	var rows []string

	for y := 0; y <= hb.cursorY && y < hb.height; y++ {
		var sb strings.Builder
		current := tcell.StyleDefault

		for x := 0; x < hb.rowLen[y]; x++ {
			mainc, _, style, _ := hb.screen.GetContent(x, y)
			if style != current {
				sb.WriteString(styleToSGR(style))
				current = style
			}
			sb.WriteRune(mainc)
		}

		if current != tcell.StyleDefault {
			sb.WriteString(styleToSGR(tcell.StyleDefault))
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "\n")
}

// ExportHighlight renders line with illegal characters highlighted. Bytes
// that are not valid UTF-8 are echoed as U+FFFD.
func ExportHighlight(line string, set Classifier, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("invalid width %d", width)
	}

	n := utf8.RuneCountInString(line)
	height := (n + width - 1) / width
	if height == 0 {
		height = 1
	}

	hb, err := NewHighlightBuffer(width, height)
	if err != nil {
		return "", fmt.Errorf("error creating buffer: %w", err)
	}
	defer hb.Close()

	hb.WriteLine(line, set)
	return hb.ExportANSI(), nil
}

func styleToSGR(style tcell.Style) string {
	fg, bg, attrs := style.Decompose()
	codes := []string{"0"}

	type attrInfo struct {
		mask tcell.AttrMask
		code string
	}

	for _, attr := range []attrInfo{
		{tcell.AttrBold, "1"},
		{tcell.AttrDim, "2"},
		{tcell.AttrItalic, "3"},
		{tcell.AttrUnderline, "4"},
		{tcell.AttrBlink, "5"},
		{tcell.AttrReverse, "7"},
	} {
		if attrs&attr.mask != 0 {
			codes = append(codes, attr.code)
		}
	}

	if fg != tcell.ColorDefault {
		codes = append(codes, colorToSGR(fg, 30, 90, 38))
	}
	if bg != tcell.ColorDefault {
		codes = append(codes, colorToSGR(bg, 40, 100, 48))
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// colorToSGR maps the 16 standard colors to their short codes and anything
// else to a true color sequence.
func colorToSGR(color tcell.Color, normal, bright, extended int) string {
	if color >= tcell.ColorBlack && color <= tcell.ColorWhite {
		index := int(color - tcell.ColorBlack)
		if index < 8 {
			return strconv.Itoa(normal + index)
		}
		return strconv.Itoa(bright + index - 8)
	}

	r, g, b := color.RGB()
	return fmt.Sprintf("%d;2;%d;%d;%d", extended, r, g, b)
}
