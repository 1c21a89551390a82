package board

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of cells. Width and height never change after construction.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// New creates a width x height board with the four starting discs in the centre
func New(width, height int) (*Board, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: %dx%d (minimum 2x2)", ErrInvalidSize, width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	cx, cy := width/2, height/2
	b.set(Vec{X: cx - 1, Y: cy - 1}, WhiteCell)
	b.set(Vec{X: cx, Y: cy}, WhiteCell)
	b.set(Vec{X: cx, Y: cy - 1}, BlackCell)
	b.set(Vec{X: cx - 1, Y: cy}, BlackCell)

	return b, nil
}

// MustNew is like New but panics on an invalid size
func MustNew(width, height int) *Board {
	b, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRows builds a board from one string per row using '.', 'b' and 'w'
// (also accepting 'x' for black and 'o' for white, case-insensitive)
func FromRows(rows ...string) (*Board, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, got %d", ErrInvalidSize, len(rows))
	}
	width := len(rows[0])
	if width < 2 {
		return nil, fmt.Errorf("%w: need at least 2 columns, got %d", ErrInvalidSize, width)
	}

	b := &Board{
		width:  width,
		height: len(rows),
		cells:  make([]Cell, width*len(rows)),
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y+1, len(row), width)
		}
		for x, ch := range strings.ToLower(row) {
			var cell Cell
			switch ch {
			case '.', '-', '_':
				cell = EmptyCell
			case 'b', 'x':
				cell = BlackCell
			case 'w', 'o':
				cell = WhiteCell
			default:
				return nil, fmt.Errorf("unknown cell %q at %s", ch, Vec{X: x, Y: y})
			}
			b.set(Vec{X: x, Y: y}, cell)
		}
	}

	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// InBounds reports whether p lies on the grid
func (b *Board) InBounds(p Vec) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

// At returns the cell at p. Positions off the grid read as EmptyCell.
func (b *Board) At(p Vec) Cell {
	if !b.InBounds(p) {
		return EmptyCell
	}
	return b.at(p)
}

func (b *Board) at(p Vec) Cell {
	return b.cells[p.Y*b.width+p.X]
}

func (b *Board) set(p Vec, c Cell) {
	b.cells[p.Y*b.width+p.X] = c
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal reports whether both boards have the same size and contents
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Corners returns the four corner cells in the order top-left, top-right,
// bottom-left, bottom-right
func (b *Board) Corners() [4]Vec {
	return [4]Vec{
		{X: 0, Y: 0},
		{X: b.width - 1, Y: 0},
		{X: 0, Y: b.height - 1},
		{X: b.width - 1, Y: b.height - 1},
	}
}

// LegalDirections returns every direction in which placing c at p captures
// at least one opposing disc. It is empty when p is occupied or off the grid.
func (b *Board) LegalDirections(c Color, p Vec) []Vec {
	if !b.InBounds(p) || b.at(p) != EmptyCell {
		return nil
	}

	var dirs []Vec
	for _, d := range Directions {
		if b.captures(c, p, d) > 0 {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// captures walks the ray from p along d and returns how many opposing discs
// sit between p and the first disc of color c. Zero means no capture.
func (b *Board) captures(c Color, p, d Vec) int {
	own, opp := c.Cell(), c.Opponent().Cell()
	for s := 1; ; s++ {
		q := p.Add(d.Mul(s))
		if !b.InBounds(q) {
			return 0
		}
		switch b.at(q) {
		case opp:
			continue
		case own:
			return s - 1
		default:
			return 0
		}
	}
}

// IsLegal reports whether c may place a disc at p
func (b *Board) IsLegal(c Color, p Vec) bool {
	return b.InBounds(p) && len(b.LegalDirections(c, p)) > 0
}

// LegalMoves returns every legal position for c in row-major order
func (b *Board) LegalMoves(c Color) []Vec {
	var moves []Vec
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := Vec{X: x, Y: y}
			if b.IsLegal(c, p) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether c has at least one legal move. A side
// without one must pass.
func (b *Board) HasAnyLegalMove(c Color) bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.IsLegal(c, Vec{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether neither side can move
func (b *Board) IsTerminal() bool {
	return !b.HasAnyLegalMove(Black) && !b.HasAnyLegalMove(White)
}

// Place puts a disc of color c at p and flips every captured run. On error
// the board is left untouched.
func (b *Board) Place(c Color, p Vec) error {
	if !b.InBounds(p) {
		return &MoveError{Color: c, Pos: p, Err: ErrOutOfBounds}
	}

	dirs := b.LegalDirections(c, p)
	if len(dirs) == 0 {
		return &MoveError{Color: c, Pos: p, Err: ErrIllegalMove}
	}

	own := c.Cell()
	b.set(p, own)
	for _, d := range dirs {
		for q := p.Add(d); b.at(q) != own; q = q.Add(d) {
			b.set(q, own)
		}
	}

	return nil
}

// Count returns the number of discs of color c
func (b *Board) Count(c Color) int {
	own := c.Cell()
	n := 0
	for _, cell := range b.cells {
		if cell == own {
			n++
		}
	}
	return n
}

// Winner returns the cell of the side with more discs, or EmptyCell on a tie
func (b *Board) Winner() Cell {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return BlackCell
	case white > black:
		return WhiteCell
	default:
		return EmptyCell
	}
}

// Rows returns the board in FromRows notation
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.at(Vec{X: x, Y: y}).String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows joined by newlines
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
