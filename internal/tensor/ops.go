package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dot returns the matrix product a·b.
//
// Requires a.Cols() == b.Rows(); otherwise it fails with a ShapeError.
// The result has shape (a.Rows(), b.Cols()).
func Dot(a, b *Tensor) (*Tensor, error) {
	if a.cols != b.rows {
		return nil, shapeError("dot", a.Shape(), b.Shape())
	}

	result := New(a.rows, b.cols)
	// gonum rejects zero-length dimensions; the product is all zeros anyway.
	if a.rows == 0 || a.cols == 0 || b.cols == 0 {
		return result, nil
	}

	out := mat.NewDense(result.rows, result.cols, result.data)
	out.Mul(a.dense(), b.dense())
	return result, nil
}

// Dot returns the matrix product t·other. See Dot.
func (t *Tensor) Dot(other *Tensor) (*Tensor, error) {
	return Dot(t, other)
}

// Transpose returns a new tensor with rows and columns swapped.
func (t *Tensor) Transpose() *Tensor {
	result := New(t.cols, t.rows)
	if t.IsEmpty() {
		return result
	}

	out := mat.NewDense(result.rows, result.cols, result.data)
	out.Copy(t.dense().T())
	return result
}

// Add performs element-wise addition.
//
// Shapes must match exactly, or other must be a single row (1, cols) which is
// broadcast across every row of t.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.elementwise("add", other, floats.AddTo)
}

// Sub performs element-wise subtraction with row broadcasting. See Add.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.elementwise("subtract", other, floats.SubTo)
}

// Mul performs element-wise (Hadamard) multiplication with row broadcasting.
// See Add.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.elementwise("multiply", other, floats.MulTo)
}

func (t *Tensor) elementwise(op string, other *Tensor, kernel func(dst, s, u []float64) []float64) (*Tensor, error) {
	same, ok := t.Shape().broadcastsRow(other.Shape())
	if !ok {
		return nil, shapeError(op, t.Shape(), other.Shape())
	}

	result := New(t.rows, t.cols)
	if same {
		kernel(result.data, t.data, other.data)
		return result, nil
	}

	for i := 0; i < t.rows; i++ {
		lo, hi := i*t.cols, (i+1)*t.cols
		kernel(result.data[lo:hi], t.data[lo:hi], other.data)
	}
	return result, nil
}

// Scale returns a new tensor with every entry multiplied by s.
func (t *Tensor) Scale(s float64) *Tensor {
	result := New(t.rows, t.cols)
	floats.ScaleTo(result.data, s, t.data)
	return result
}

// ColumnSum reduces over rows, returning a (1, cols) tensor whose entry j is
// the sum of column j.
func (t *Tensor) ColumnSum() *Tensor {
	result := New(1, t.cols)
	for i := 0; i < t.rows; i++ {
		floats.Add(result.data, t.Row(i))
	}
	return result
}

// Sum returns the sum of all entries.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.data)
}

// Map returns a new tensor with fn applied to every entry.
func (t *Tensor) Map(fn func(float64) float64) *Tensor {
	result := New(t.rows, t.cols)
	for i, v := range t.data {
		result.data[i] = fn(v)
	}
	return result
}

// dense wraps the tensor's buffer as a gonum matrix without copying.
// Callers must not write through the returned matrix.
func (t *Tensor) dense() *mat.Dense {
	return mat.NewDense(t.rows, t.cols, t.data)
}
