package lc4

import "fmt"

// State is the evolving cipher state of one session: the grid, the marker
// and the mode. A State is not safe for concurrent use.
type State struct {
	mode     Mode
	grid     *Grid
	marker   Marker
	observer Observer
}

// NewState builds a fresh state from key. The marker starts at (0, 0).
func NewState(key string, mode Mode) (*State, error) {
	if !mode.Valid() {
		return nil, &ValidationError{Field: "mode", Err: ErrInvalidMode}
	}
	if err := validateKey(key, mode); err != nil {
		return nil, err
	}
	return &State{mode: mode, grid: newGrid(key, mode)}, nil
}

// SetObserver attaches o to the state; it is called once per processed
// symbol. A nil observer disables tracing.
func (s *State) SetObserver(o Observer) {
	s.observer = o
}

// Mode returns the mode the state was built for.
func (s *State) Mode() Mode {
	return s.mode
}

// Grid returns a copy of the current grid.
func (s *State) Grid() *Grid {
	return s.grid.clone()
}

// Marker returns the current marker position.
func (s *State) Marker() Marker {
	return s.marker
}

// Encrypt encrypts text and advances the state.
func (s *State) Encrypt(text string) (string, error) {
	return s.run(PhaseMessage, Encrypting, text)
}

// Decrypt decrypts text and advances the state.
func (s *State) Decrypt(text string) (string, error) {
	return s.run(PhaseMessage, Decrypting, text)
}

func (s *State) run(phase Phase, dir Direction, text string) (string, error) {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		var (
			c   byte
			err error
		)
		if dir == Encrypting {
			c, err = s.encryptSymbol(phase, i, text[i])
		} else {
			c, err = s.decryptSymbol(phase, i, text[i])
		}
		if err != nil {
			return "", fmt.Errorf("%s at position %d: %w", phase, i, err)
		}
		out[i] = c
	}
	return string(out), nil
}

func (s *State) encryptSymbol(phase Phase, pos int, p byte) (byte, error) {
	n := s.grid.n
	v := s.mode.Index(p)
	if v == notFound {
		return 0, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, p)
	}
	before := s.snapshot()

	row, col, _ := s.grid.Position(v)
	d := s.grid.At(s.marker.Row, s.marker.Col)
	x := (row + d/n) % n
	y := (col + d%n) % n
	out := s.grid.At(x, y)

	row, y = s.mutate(row, col, x, y)
	s.advance(out)

	c := s.mode.Symbol(out)
	s.notify(Step{
		Direction: Encrypting,
		Phase:     phase,
		Position:  pos,
		Input:     p,
		Output:    c,
		Row:       row,
		Col:       y,
		Before:    before,
	})
	return c, nil
}

func (s *State) decryptSymbol(phase Phase, pos int, c byte) (byte, error) {
	n := s.grid.n
	v := s.mode.Index(c)
	if v == notFound {
		return 0, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, c)
	}
	before := s.snapshot()

	x, y, _ := s.grid.Position(v)
	d := s.grid.At(s.marker.Row, s.marker.Col)
	row := ((x-d/n)%n + n) % n
	col := ((y-d%n)%n + n) % n
	out := s.grid.At(row, col)

	row, y = s.mutate(row, col, x, y)
	s.advance(v)

	p := s.mode.Symbol(out)
	s.notify(Step{
		Direction: Decrypting,
		Phase:     phase,
		Position:  pos,
		Input:     c,
		Output:    p,
		Row:       row,
		Col:       y,
		Before:    before,
	})
	return p, nil
}

// mutate rotates the plaintext row right and the ciphertext column down.
// (row, col) locate the plaintext symbol and (x, y) the ciphertext symbol
// before the rotations. It returns the rotated row and column.
func (s *State) mutate(row, col, x, y int) (int, int) {
	n := s.grid.n

	s.grid.shiftRowRight(row, &s.marker)
	if x == row {
		y = (y + 1) % n
	}

	s.grid.shiftColumnDown(y, &s.marker)
	if y == col {
		row = (row + 1) % n
	}
	return row, y
}

// advance moves the marker by the displacement encoded in the ciphertext
// symbol index v.
func (s *State) advance(v int) {
	n := s.grid.n
	s.marker.Row = (s.marker.Row + v/n) % n
	s.marker.Col = (s.marker.Col + v%n) % n
}

func (s *State) snapshot() *Grid {
	if s.observer == nil {
		return nil
	}
	return s.grid.clone()
}

func (s *State) notify(step Step) {
	if s.observer == nil {
		return
	}
	step.Mode = s.mode
	step.After = s.grid.clone()
	step.Marker = s.marker
	s.observer(step)
}
