package lc4

// Marker is the active cell of the grid. The value stored under it supplies
// the displacement of the next cipher step.
type Marker struct {
	Row int
	Col int
}

// Grid is an N×N permutation of the alphabet indices [0, N²), stored
// row-major.
type Grid struct {
	n     int
	cells []int
}

// newGrid builds the initial grid for key. A key of exactly N² symbols is
// laid out row by row; a shorter key is treated as a password and folded into
// the identity grid by row and column rotations. The key must already be
// valid for mode.
func newGrid(key string, mode Mode) *Grid {
	n := mode.Size()
	g := &Grid{n: n, cells: make([]int, n*n)}

	if len(key) == n*n {
		for k := 0; k < len(key); k++ {
			g.cells[k] = mode.Index(key[k])
		}
		return g
	}

	for k := range g.cells {
		g.cells[k] = k
	}
	for c := 0; c < len(key); c++ {
		v := mode.Index(key[c])
		line := c % n
		for i := 0; i < v%n; i++ {
			g.shiftRowRight(line, nil)
		}
		for i := 0; i < v/n; i++ {
			g.shiftColumnDown(line, nil)
		}
	}
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.n
}

// At returns the alphabet index stored at (row, col).
func (g *Grid) At(row, col int) int {
	return g.cells[row*g.n+col]
}

// Position returns the coordinates of alphabet index v.
func (g *Grid) Position(v int) (row, col int, ok bool) {
	for k, c := range g.cells {
		if c == v {
			return k / g.n, k % g.n, true
		}
	}
	return 0, 0, false
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for r := range rows {
		rows[r] = make([]int, g.n)
		copy(rows[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return rows
}

// Format renders the grid with the symbols of mode, one row per line.
func (g *Grid) Format(mode Mode) string {
	b := make([]byte, 0, g.n*(2*g.n))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if c > 0 {
				b = append(b, ' ')
			}
			b = append(b, mode.Symbol(g.At(r, c)))
		}
		b = append(b, '\n')
	}
	return string(b)
}

// IsPermutation reports whether every index in [0, N²) appears exactly once.
func (g *Grid) IsPermutation() bool {
	seen := make([]bool, len(g.cells))
	for _, c := range g.cells {
		if c < 0 || c >= len(g.cells) || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func (g *Grid) clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{n: g.n, cells: cells}
}

// shiftRowRight rotates row one position to the right. A marker on that row
// moves along with it.
func (g *Grid) shiftRowRight(row int, m *Marker) {
	line := g.cells[row*g.n : (row+1)*g.n]
	last := line[g.n-1]
	copy(line[1:], line[:g.n-1])
	line[0] = last

	if m != nil && m.Row == row {
		m.Col = (m.Col + 1) % g.n
	}
}

// shiftColumnDown rotates col one position downwards. A marker on that column
// moves along with it.
func (g *Grid) shiftColumnDown(col int, m *Marker) {
	last := g.cells[(g.n-1)*g.n+col]
	for r := g.n - 1; r > 0; r-- {
		g.cells[r*g.n+col] = g.cells[(r-1)*g.n+col]
	}
	g.cells[col] = last

	if m != nil && m.Col == col {
		m.Row = (m.Row + 1) % g.n
	}
}
