package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/display"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *Model {
	return NewModel(board.MustNew(8, 8), board.Black, display.NewRendererWithProfile(termenv.Ascii))
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestModelTabCyclesLegalMoves(t *testing.T) {
	m := newTestModel()

	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "d3", m.input.Value())
	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "c4", m.input.Value())
	send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "d3", m.input.Value())
	send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "e6", m.input.Value(), "wraps around")

	fresh := newTestModel()
	send(t, fresh, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "e6", fresh.input.Value())
}

func TestModelAcceptsLegalMove(t *testing.T) {
	m := newTestModel()
	typeText(t, m, "F5")

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, board.Vec{X: 5, Y: 4}, choice)
	assert.False(t, m.Aborted())
	assert.Empty(t, m.View())
}

func TestModelRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"illegal move", "a1", "a1 is not a legal move."},
		{"not a coordinate", "zz", `"zz" is not a coordinate.`},
		{"empty", "", "Type a move such as d3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			if tt.text != "" {
				typeText(t, m, tt.text)
			}

			cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Nil(t, cmd)

			_, ok := m.Choice()
			assert.False(t, ok)
			assert.Contains(t, m.message, tt.message)
			assert.Contains(t, m.View(), tt.message)
		})
	}
}

func TestModelTypingClearsMessage(t *testing.T) {
	m := newTestModel()
	typeText(t, m, "a1")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.message)

	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.message)
	assert.Equal(t, "a", m.input.Value())
}

func TestModelAbort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel()
		cmd := send(t, m, tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Aborted())

		_, ok := m.Choice()
		assert.False(t, ok)
	}
}

func TestModelView(t *testing.T) {
	view := newTestModel().View()

	assert.Contains(t, view, "   a b c d e f g h")
	assert.Contains(t, view, " 3 · · · * · · · ·")
	assert.Contains(t, view, "● Black 2  ○ White 2")
	assert.Contains(t, view, "● Black to move. Legal: d3 c4 f5 e6")
	assert.Contains(t, view, "esc: quit")
}
