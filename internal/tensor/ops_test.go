package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomTensor(r *rand.Rand, rows, cols int) *Tensor {
	t := New(rows, cols)
	for i := range t.data {
		t.data[i] = r.Float64()*2 - 1
	}
	return t
}

func TestDot(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := Dot(a, b)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestDot_ShapeProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		m, k, n := 1+r.IntN(5), 1+r.IntN(5), 1+r.IntN(5)
		a := randomTensor(r, m, k)
		b := randomTensor(r, k, n)

		c, err := a.Dot(b)
		require.NoError(t, err)
		assert.Equal(t, m, c.Rows())
		assert.Equal(t, n, c.Cols())

		// Reference inner product.
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var want float64
				for x := 0; x < k; x++ {
					want += a.At(i, x) * b.At(x, j)
				}
				assert.InDelta(t, want, c.At(i, j), 1e-12)
			}
		}
	}
}

func TestDot_Incompatible(t *testing.T) {
	_, err := Dot(New(2, 3), New(2, 3))
	require.ErrorIs(t, err, ErrShape)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "dot", shapeErr.Op)
	assert.Equal(t, Shape{2, 3}, shapeErr.Left)
	assert.Equal(t, Shape{2, 3}, shapeErr.Right)
}

func TestDot_ZeroInnerDimension(t *testing.T) {
	c, err := Dot(New(2, 0), New(0, 3))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, c.Shape())
	assert.Equal(t, 0.0, c.Sum())
}

func TestDot_DoesNotAliasOperands(t *testing.T) {
	a := MustFromRows([][]float64{{1, 0}, {0, 1}})
	c, err := Dot(a, a)
	require.NoError(t, err)

	c.Set(0, 0, 5)
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestTranspose(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	at := a.Transpose()

	assert.Equal(t, Shape{3, 2}, at.Shape())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())

	at.Set(0, 0, 42)
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestTranspose_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for range 10 {
		m := randomTensor(r, 1+r.IntN(6), 1+r.IntN(6))
		assert.Equal(t, m.ToRows(), m.Transpose().Transpose().ToRows())
	}

	empty := New(0, 0)
	assert.Equal(t, Shape{0, 0}, empty.Transpose().Transpose().Shape())
}

func TestElementwise_SameShape(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := MustFromRows([][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40, 90, 160}, prod.Data())
}

func TestElementwise_RowBroadcast(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	row := MustFromRows([][]float64{{10, 100}})

	sum, err := a.Add(row)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 102}, {13, 104}, {15, 106}}, sum.ToRows())

	diff, err := a.Sub(row)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-9, -98}, {-7, -96}, {-5, -94}}, diff.ToRows())

	prod, err := a.Mul(row)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 200}, {30, 400}, {50, 600}}, prod.ToRows())
}

func TestElementwise_ShapeErrors(t *testing.T) {
	a := New(3, 2)

	tests := []struct {
		name  string
		other *Tensor
	}{
		{"column count differs", New(3, 3)},
		{"row count differs", New(2, 2)},
		{"column vector", New(3, 1)},
		{"broadcast on left only", New(1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Add(tt.other)
			assert.ErrorIs(t, err, ErrShape)
			_, err = a.Sub(tt.other)
			assert.ErrorIs(t, err, ErrShape)
			_, err = a.Mul(tt.other)
			assert.ErrorIs(t, err, ErrShape)
		})
	}

	// The broadcast row must be the right operand.
	_, err := New(1, 2).Add(New(3, 2))
	assert.ErrorIs(t, err, ErrShape)
}

func TestScale(t *testing.T) {
	a := MustFromRows([][]float64{{1, -2}, {3, 0}})
	s := a.Scale(-0.5)

	assert.Equal(t, []float64{-0.5, 1, -1.5, 0}, s.Data())
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestColumnSum(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s := a.ColumnSum()

	assert.Equal(t, Shape{1, 3}, s.Shape())
	assert.Equal(t, []float64{12, 15, 18}, s.Data())

	empty := New(0, 4).ColumnSum()
	assert.Equal(t, Shape{1, 4}, empty.Shape())
	assert.Equal(t, 0.0, empty.Sum())
}

func TestSumAndMap(t *testing.T) {
	a := MustFromRows([][]float64{{1, -2}, {3, -4}})

	assert.Equal(t, -2.0, a.Sum())

	sq := a.Map(func(v float64) float64 { return v * v })
	assert.Equal(t, []float64{1, 4, 9, 16}, sq.Data())
	assert.Equal(t, -2.0, a.At(0, 1))
}
