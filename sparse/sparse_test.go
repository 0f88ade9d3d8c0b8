package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixNull(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	assert.Equal(t, int32(-1), M.Value(9, 9))
	a, b := M.Values(0, 0)
	assert.Equal(t, int32(-1), a)
	assert.Equal(t, int32(-1), b)
	assert.Equal(t, 0, M.ValueCount())
	assert.Equal(t, 10, M.M())
	assert.Equal(t, 10, M.N())
}

func TestMatrixSetAndAdd(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	assert.Equal(t, int32(4711), M.Value(2, 3))
	M.Add(2, 3, 123)
	assert.Equal(t, 1, M.ValueCount())
	a, b := M.Values(2, 3)
	assert.Equal(t, int32(4711), a)
	assert.Equal(t, int32(123), b)
	M.Set(2, 3, 5)
	a, b = M.Values(2, 3)
	assert.Equal(t, int32(5), a)
	assert.Equal(t, M.NullValue(), b)
}

func TestMatrixAddSameValue(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Add(1, 1, 7).Add(1, 1, 7)
	a, b := M.Values(1, 1)
	assert.Equal(t, int32(7), a)
	assert.Equal(t, M.NullValue(), b)
}

func TestMatrixOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(4, 0, 40)
	M.Set(0, 4, 4)
	M.Set(2, 2, 22)
	M.Set(2, 0, 20)
	M.Set(2, 4, 24)
	assert.Equal(t, 5, M.ValueCount())
	assert.Equal(t, int32(20), M.Value(2, 0))
	assert.Equal(t, int32(22), M.Value(2, 2))
	assert.Equal(t, int32(24), M.Value(2, 4))
	assert.Equal(t, int32(-1), M.Value(2, 3))
	var cols []int
	M.EachRow(2, func(j int, a, b int32) {
		cols = append(cols, j)
	})
	assert.Equal(t, []int{0, 2, 4}, cols)
	cols = cols[:0]
	M.EachRow(3, func(j int, a, b int32) {
		cols = append(cols, j)
	})
	assert.Empty(t, cols)
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	assert.Panics(t, func() { M.Set(2, 0, 1) })
	assert.Panics(t, func() { M.Value(0, -1) })
}
