// Package tui provides the interactive move picker used by human players.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/display"
)

// ErrAborted is returned when the person quits instead of choosing a move
var ErrAborted = errors.New("aborted")

// Model is the Bubble Tea model for choosing one move
type Model struct {
	board    *board.Board
	color    board.Color
	moves    []board.Vec
	renderer *display.Renderer

	input   textinput.Model
	cursor  int // index into moves selected with tab, -1 when typing freely
	message string

	choice  board.Vec
	chosen  bool
	aborted bool
}

// NewModel creates a picker model for color c on b
func NewModel(b *board.Board, c board.Color, renderer *display.Renderer) *Model {
	ti := textinput.New()
	ti.Placeholder = "d3"
	ti.Prompt = "> "
	ti.CharLimit = 4
	ti.Width = 6
	ti.Focus()

	return &Model{
		board:    b,
		color:    c,
		moves:    b.LegalMoves(c),
		renderer: renderer,
		input:    ti,
		cursor:   -1,
		choice:   board.NoMove,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "tab":
			m.cycle(1)
			return m, nil
		case "shift+tab":
			m.cycle(-1)
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = -1
		m.message = ""
	}
	return m, cmd
}

func (m *Model) cycle(step int) {
	if len(m.moves) == 0 {
		return
	}
	if m.cursor < 0 && step < 0 {
		m.cursor = 0
	}
	m.cursor = (m.cursor + step + len(m.moves)) % len(m.moves)
	m.input.SetValue(m.moves[m.cursor].String())
	m.input.CursorEnd()
	m.message = ""
}

func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.message = "Type a move such as d3, or press tab to cycle through legal moves."
		return nil
	}

	p, err := board.ParseVec(text)
	if err != nil {
		m.message = fmt.Sprintf("%q is not a coordinate.", text)
		return nil
	}
	if !m.board.IsLegal(m.color, p) {
		m.message = fmt.Sprintf("%s is not a legal move.", p)
		return nil
	}

	m.choice = p
	m.chosen = true
	return tea.Quit
}

// View implements tea.Model
func (m *Model) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	styles := m.renderer.Styles()

	var sb strings.Builder
	sb.WriteString(m.renderer.Board(m.board, m.moves))
	sb.WriteString(m.renderer.Score(m.board))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s to move. Legal: %s\n",
		m.renderer.Glyph(m.color.Cell()), m.color.Title(), joinMoves(m.moves)))
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(styles.Hint.Render(m.message))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Info.Render("tab: next legal move  enter: play  esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Choice returns the accepted move, if any
func (m *Model) Choice() (board.Vec, bool) {
	return m.choice, m.chosen
}

// Aborted reports whether the person quit
func (m *Model) Aborted() bool {
	return m.aborted
}

func joinMoves(moves []board.Vec) string {
	names := make([]string, len(moves))
	for i, p := range moves {
		names[i] = p.String()
	}
	return strings.Join(names, " ")
}

// Picker runs a Model as a Bubble Tea program for each decision
type Picker struct {
	in       io.Reader
	out      io.Writer
	renderer *display.Renderer
}

// NewPicker creates a picker reading keys from in and drawing to out.
// Nil streams fall back to the terminal.
func NewPicker(in io.Reader, out io.Writer, renderer *display.Renderer) *Picker {
	if renderer == nil {
		var w io.Writer = os.Stdout
		if out != nil {
			w = out
		}
		renderer = display.NewRenderer(w)
	}
	return &Picker{in: in, out: out, renderer: renderer}
}

// Pick shows b and waits for a legal move for c
func (p *Picker) Pick(b *board.Board, c board.Color) (board.Vec, error) {
	var opts []tea.ProgramOption
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(NewModel(b, c, p.renderer), opts...).Run()
	if err != nil {
		return board.NoMove, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || m.Aborted() {
		return board.NoMove, ErrAborted
	}
	choice, ok := m.Choice()
	if !ok {
		return board.NoMove, ErrAborted
	}
	return choice, nil
}
