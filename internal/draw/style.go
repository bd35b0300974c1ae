package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// terminalColors maps palette entries to ANSI 256 colour codes.
var terminalColors = map[Color]lipgloss.Color{
	ColorGreen:  lipgloss.Color("2"),
	ColorRed:    lipgloss.Color("9"),
	ColorBlue:   lipgloss.Color("12"),
	ColorWhite:  lipgloss.Color("15"),
	ColorYellow: lipgloss.Color("11"),
}

type cellKey struct {
	ch     rune
	fg, bg Color
}

// Palette renders coloured cells and text for one terminal output.
// SSH sessions have no local TTY to probe, so the profile is fixed to ANSI256
// instead of being detected.
type Palette struct {
	renderer *lipgloss.Renderer
	cells    map[cellKey]string
}

// NewPalette creates a palette rendering for w.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return &Palette{
		renderer: r,
		cells:    make(map[cellKey]string),
	}
}

// Cell returns the styled string for a half-block cell. Results are cached;
// a frame only ever uses a handful of colour combinations.
func (p *Palette) Cell(ch rune, fg, bg Color) string {
	key := cellKey{ch: ch, fg: fg, bg: bg}
	if s, ok := p.cells[key]; ok {
		return s
	}
	style := p.renderer.NewStyle()
	if c, ok := terminalColors[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := terminalColors[bg]; ok {
		style = style.Background(c)
	}
	s := style.Render(string(ch))
	p.cells[key] = s
	return s
}

// Text renders s in colour c.
func (p *Palette) Text(s string, c Color) string {
	style := p.renderer.NewStyle()
	if col, ok := terminalColors[c]; ok {
		style = style.Foreground(col)
	}
	return style.Render(s)
}

// Title renders s in bold colour c.
func (p *Palette) Title(s string, c Color) string {
	style := p.renderer.NewStyle().Bold(true)
	if col, ok := terminalColors[c]; ok {
		style = style.Foreground(col)
	}
	return style.Render(s)
}
