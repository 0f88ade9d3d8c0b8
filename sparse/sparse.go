/*
Package sparse implements a simple type for sparse integer matrices.
It backs the parser tables of package automaton (GOTO-table and ACTION-table).
Every entry in the table is either a single int32 or a pair (int32,int32),
the latter capturing the two actions of a shift/reduce or reduce/reduce
collision.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order and located by binary search.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Indices outside of m x n are a programming error and cause a panic.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    intPair
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is
// a null-value, indicating empty entries (use DefaultNullValue if you
// haven't any specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	m.check(i, j)
	if k, found := m.find(i, j); found {
		return m.values[k].value.a, m.values[k].value.b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), replacing existing values.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j). If the position already holds
// two values, the second one is overwritten. Adding a value equal to the
// primary one is a no-op.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

// EachRow calls f for every non-null position of row i, in column order.
func (m *IntMatrix) EachRow(i int, f func(j int, a, b int32)) {
	k := sort.Search(len(m.values), func(k int) bool {
		return m.values[k].row >= i
	})
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		t := m.values[k]
		f(t.col, t.value.a, t.value.b)
	}
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, doAdd bool) *IntMatrix {
	m.check(i, j)
	k, found := m.find(i, j)
	if found {
		if doAdd {
			m.values[k].value = m.values[k].value.add(value, m.nullval)
		} else {
			m.values[k].value = intPair{value, m.nullval}
		}
		return m
	}
	m.values = append(m.values, triplet{})
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = triplet{row: i, col: j, value: intPair{value, m.nullval}}
	return m
}

// find returns the index of (i,j), or the index where it would be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(k int) bool {
		t := m.values[k]
		return t.row > i || t.row == i && t.col >= j
	})
	return k, k < len(m.values) && m.values[k].row == i && m.values[k].col == j
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) add(n int32, nullval int32) intPair {
	if pr.a == nullval {
		pr.a = n
	} else if pr.a != n {
		pr.b = n // overwrites a second value, if present
	}
	return pr
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}
