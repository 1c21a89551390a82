// Package display renders boards, scores and results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/game"
	"github.com/muesli/termenv"
)

// Renderer formats game state with lipgloss styles
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer whose colour profile is detected from w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{styles: newStyles(lipgloss.NewRenderer(w))}
}

// NewRendererWithProfile creates a renderer with a fixed colour profile.
// termenv.Ascii produces plain text.
func NewRendererWithProfile(p termenv.Profile) *Renderer {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(p))
	r.SetColorProfile(p)
	return &Renderer{styles: newStyles(r)}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Glyph returns the styled symbol for a cell
func (r *Renderer) Glyph(c board.Cell) string {
	switch c {
	case board.BlackCell:
		return r.styles.Black.Render(BlackGlyph)
	case board.WhiteCell:
		return r.styles.White.Render(WhiteGlyph)
	default:
		return r.styles.Empty.Render(EmptyGlyph)
	}
}

// Board draws b with column letters and row numbers. Empty cells listed in
// hints are marked with HintGlyph.
func (r *Renderer) Board(b *board.Board, hints []board.Vec) string {
	marked := make(map[board.Vec]bool, len(hints))
	for _, h := range hints {
		marked[h] = true
	}

	var sb strings.Builder

	cols := make([]string, b.Width())
	for x := range cols {
		cols[x] = columnLabel(x)
	}
	sb.WriteString("   ")
	sb.WriteString(r.styles.Header.Render(strings.Join(cols, " ")))
	sb.WriteString("\n")

	for y := 0; y < b.Height(); y++ {
		sb.WriteString(r.styles.Header.Render(fmt.Sprintf("%2d", y+1)))
		for x := 0; x < b.Width(); x++ {
			p := board.Vec{X: x, Y: y}
			sb.WriteString(" ")
			cell := b.At(p)
			if cell == board.EmptyCell && marked[p] {
				sb.WriteString(r.styles.Hint.Render(HintGlyph))
				continue
			}
			sb.WriteString(r.Glyph(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Score shows the disc count of both sides
func (r *Renderer) Score(b *board.Board) string {
	return fmt.Sprintf("%s Black %d  %s White %d",
		r.Glyph(board.BlackCell), b.Count(board.Black),
		r.Glyph(board.WhiteCell), b.Count(board.White))
}

// Move describes a single turn
func (r *Renderer) Move(m game.Move) string {
	glyph := r.Glyph(m.Color.Cell())
	if m.Pass {
		return fmt.Sprintf("%s %s passes", glyph, m.Color.Title())
	}
	return fmt.Sprintf("%s %s plays %s, flipping %d", glyph, m.Color.Title(), m.Pos, m.Flipped)
}

// Result summarises a finished game
func (r *Renderer) Result(res *game.Result) string {
	score := fmt.Sprintf("%d-%d", res.Black, res.White)
	if res.Draw() {
		return r.styles.Draw.Render("Draw " + score)
	}
	winner, _ := res.Winner.Color()
	margin := res.Margin()
	if margin < 0 {
		margin = -margin
	}
	return r.styles.Win.Render(fmt.Sprintf("%s wins %s by %d", winner.Title(), score, margin))
}

// columnLabel returns the letter used for column x in board notation
func columnLabel(x int) string {
	if x < 26 {
		return string(rune('a' + x))
	}
	return "?"
}
