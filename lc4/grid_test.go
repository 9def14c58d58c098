package lc4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGrid_ExplicitKey(t *testing.T) {
	t.Parallel()

	key := "xv7ydq#opaj_39rzut8b45wcsgehmiknf26l"
	g := newGrid(key, Primary)

	require.Equal(t, 6, g.Size())
	require.True(t, g.IsPermutation())
	require.Equal(t, Primary.Index('x'), g.At(0, 0))
	require.Equal(t, Primary.Index('#'), g.At(1, 0))
	require.Equal(t, Primary.Index('l'), g.At(5, 5))
	require.Equal(t,
		"x v 7 y d q\n# o p a j _\n3 9 r z u t\n8 b 4 5 w c\ns g e h m i\nk n f 2 6 l\n",
		g.Format(Primary))

	row, col, ok := g.Position(Primary.Index('w'))
	require.True(t, ok)
	require.Equal(t, [2]int{3, 4}, [2]int{row, col})

	_, _, ok = g.Position(99)
	require.False(t, ok)
}

func TestNewGrid_Password(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{Primary, Extended} {
		for _, pw := range []string{"a", "hello_world", "__", mode.Alphabet()[:len(mode.Alphabet())-1]} {
			g := newGrid(pw, mode)
			require.True(t, g.IsPermutation(), "%s %q", mode, pw)
		}
	}

	// '#' has index 0 and leaves the identity grid untouched.
	g := newGrid("##", Primary)
	for k := 0; k < 36; k++ {
		require.Equal(t, k, g.At(k/6, k%6))
	}

	// '2' has index 2: the first row rotates right twice.
	g = newGrid("2", Primary)
	require.Equal(t, []int{4, 5, 0, 1, 2, 3}, g.Rows()[0])
	require.Equal(t, []int{6, 7, 8, 9, 10, 11}, g.Rows()[1])

	// '3' has index 3: the first row rotates right three times.
	g = newGrid("3", Primary)
	require.Equal(t, []int{3, 4, 5, 0, 1, 2}, g.Rows()[0])
	require.Equal(t, []int{6, 7, 8, 9, 10, 11}, g.Rows()[1])

	// 'a' has index 10: row 0 rotates four times, column 0 moves down once.
	g = newGrid("a", Primary)
	require.Equal(t, []int{30, 3, 4, 5, 0, 1}, g.Rows()[0])
	require.Equal(t, 2, g.At(1, 0))
	require.True(t, g.IsPermutation())
}

func TestGrid_ShiftsCarryMarker(t *testing.T) {
	t.Parallel()

	g := newGrid("##", Primary)

	m := &Marker{Row: 2, Col: 5}
	g.shiftRowRight(2, m)
	require.Equal(t, Marker{Row: 2, Col: 0}, *m)
	require.Equal(t, []int{17, 12, 13, 14, 15, 16}, g.Rows()[2])

	g.shiftRowRight(3, m)
	require.Equal(t, Marker{Row: 2, Col: 0}, *m)

	g.shiftColumnDown(0, m)
	require.Equal(t, Marker{Row: 3, Col: 0}, *m)
	require.Equal(t, 30, g.At(0, 0))
	require.Equal(t, 0, g.At(1, 0))

	g.shiftColumnDown(4, m)
	require.Equal(t, Marker{Row: 3, Col: 0}, *m)
	require.True(t, g.IsPermutation())
}

func TestState_InvariantsHoldAcrossSteps(t *testing.T) {
	t.Parallel()

	st, err := NewState("hello_world", Extended)
	require.NoError(t, err)

	text := EscapeString("The quick brown fox jumps over the lazy dog, 0123456789 times!", Extended)
	for i := 0; i < 20; i++ {
		ct, err := st.Encrypt(text)
		require.NoError(t, err)
		require.Len(t, ct, len(text))
		require.True(t, st.grid.IsPermutation())

		m := st.Marker()
		require.GreaterOrEqual(t, m.Row, 0)
		require.Less(t, m.Row, 7)
		require.GreaterOrEqual(t, m.Col, 0)
		require.Less(t, m.Col, 7)
	}
}

func TestState_SymbolOutsideAlphabet(t *testing.T) {
	t.Parallel()

	st, err := NewState(AlphabetPrimary, Primary)
	require.NoError(t, err)

	_, err = st.Encrypt("ab!")
	require.ErrorIs(t, err, ErrSymbolNotInAlphabet)
	require.Contains(t, err.Error(), "position 2")

	_, err = st.Decrypt("A")
	require.ErrorIs(t, err, ErrSymbolNotInAlphabet)
}

func TestState_GridIsCopy(t *testing.T) {
	t.Parallel()

	st, err := NewState(AlphabetPrimary, Primary)
	require.NoError(t, err)

	g := st.Grid()
	g.shiftRowRight(0, nil)
	require.Equal(t, 0, st.Grid().At(0, 0))
}
