package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowAt_EveryRow(t *testing.T) {
	m := MustFromValues(t, 3, 2, 1, 2, 3, 4, 5, 6)
	for i := 0; i < m.Rows(); i++ {
		t.Run(fmt.Sprintf("row=%d", i), func(t *testing.T) {
			row, err := m.RowAt(i)
			require.NoError(t, err)
			r, c := row.Shape()
			assert.Equal(t, 1, r)
			assert.Equal(t, 2, c)
			for j := 0; j < 2; j++ {
				assert.Equal(t, MustAt(t, m, i, j), MustAt(t, row, 0, j))
			}

			slow, err := matrix.RowAt(hide{m}, i)
			require.NoError(t, err)
			assert.True(t, row.Equal(slow))
		})
	}
}

func TestRowAt_OutOfRange(t *testing.T) {
	m := MustZeros(t, 3, 2)
	for _, i := range []int{-1, 3, 10} {
		_, err := m.RowAt(i)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "RowAt(%d)", i)
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	}
}

func TestRowAt_ResultIsIndependent(t *testing.T) {
	m := MustFromValues(t, 2, 2, 1, 2, 3, 4)
	row, err := m.RowAt(1)
	require.NoError(t, err)
	require.NoError(t, row.Set(0, 0, 100))
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))
}

func TestSliceRows(t *testing.T) {
	m := MustFromValues(t, 4, 2, 1, 2, 3, 4, 5, 6, 7, 8)

	mid, err := m.SliceRows(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 6}, mid.Values())

	all, err := m.SliceRows(0, 4)
	require.NoError(t, err)
	assert.True(t, m.Equal(all))

	empty, err := m.SliceRows(2, 2)
	require.NoError(t, err)
	r, c := empty.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)

	for _, rg := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		_, err = m.SliceRows(rg[0], rg[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "SliceRows(%d,%d)", rg[0], rg[1])
	}
}

func TestSliceCols(t *testing.T) {
	m := MustFromValues(t, 2, 4, 1, 2, 3, 4, 5, 6, 7, 8)

	mid, err := m.SliceCols(1, 3)
	require.NoError(t, err)
	r, c := mid.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{2, 3, 6, 7}, mid.Values())

	slow, err := matrix.SliceCols(hide{m}, 1, 3)
	require.NoError(t, err)
	assert.True(t, mid.Equal(slow))

	for _, rg := range [][2]int{{-1, 1}, {0, 5}, {2, 1}} {
		_, err = m.SliceCols(rg[0], rg[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "SliceCols(%d,%d)", rg[0], rg[1])
	}
}
