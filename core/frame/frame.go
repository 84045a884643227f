// Package frame provides Table, an immutable set of named float64 columns
// aligned by row index.
//
// Every constructor copies its input and every operation returns a new
// Table, so a Table never aliases the slices it was built from or the
// slices it hands out.
package frame

import (
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Table is an ordered collection of equally long named numeric columns.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}

// New builds a Table from column names and column data. Names must be unique
// and non-empty, and all columns must have the same length.
func New(names []string, columns [][]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, errors.NewDimensionError("frame.New", len(names), len(columns), 1)
	}
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	t := &Table{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]float64, len(columns)),
		rows:  rows,
	}
	for i, name := range names {
		if name == "" {
			return nil, errors.NewValidationError("names", "column name must not be empty", i)
		}
		if _, dup := t.index[name]; dup {
			return nil, errors.NewValidationError("names", "duplicate column name", name)
		}
		if len(columns[i]) != rows {
			return nil, errors.NewDimensionError("frame.New", rows, len(columns[i]), 0)
		}
		t.names[i] = name
		t.index[name] = i
		t.cols[i] = append([]float64(nil), columns[i]...)
	}
	return t, nil
}

// MustNew is like New but panics on error. It is intended for literals in
// tests and examples.
func MustNew(names []string, columns [][]float64) *Table {
	t, err := New(names, columns)
	if err != nil {
		panic(err)
	}
	return t
}

// NewEmpty returns a Table with no columns that still reports rows rows, so
// it can be concatenated with other tables of that height.
func NewEmpty(rows int) *Table {
	return &Table{index: map[string]int{}, rows: rows}
}

// FromDense builds a Table from the columns of m.
func FromDense(names []string, m mat.Matrix) (*Table, error) {
	r, c := m.Dims()
	if len(names) != c {
		return nil, errors.NewDimensionError("frame.FromDense", c, len(names), 1)
	}
	cols := make([][]float64, c)
	for j := 0; j < c; j++ {
		cols[j] = mat.Col(nil, j, m)
	}
	t, err := New(names, cols)
	if err != nil {
		return nil, err
	}
	t.rows = r
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.names) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether a column called name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Index returns the position of name, or -1.
func (t *Table) Index(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "%q", name)
	}
	return t.ColumnAt(i), nil
}

// ColumnAt returns a copy of the i-th column.
func (t *Table) ColumnAt(i int) []float64 {
	return append([]float64(nil), t.cols[i]...)
}

// Select returns a Table holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([][]float64, len(names))
	for k, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "%q", name)
		}
		cols[k] = t.cols[i]
	}
	out, err := New(names, cols)
	if err != nil {
		return nil, err
	}
	out.rows = t.rows
	return out, nil
}

// Drop returns a Table without the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	out := NewEmpty(t.rows)
	for i, name := range t.names {
		if skip[name] {
			continue
		}
		out.index[name] = len(out.names)
		out.names = append(out.names, name)
		out.cols = append(out.cols, append([]float64(nil), t.cols[i]...))
	}
	return out
}

// Concat appends the columns of others to the right of t. All tables must
// have the same number of rows and column names must stay unique.
func (t *Table) Concat(others ...*Table) (*Table, error) {
	names := t.Names()
	cols := append([][]float64(nil), t.cols...)
	for _, o := range others {
		if o.rows != t.rows {
			return nil, errors.NewDimensionError("frame.Concat", t.rows, o.rows, 0)
		}
		names = append(names, o.names...)
		cols = append(cols, o.cols...)
	}
	out, err := New(names, cols)
	if err != nil {
		return nil, err
	}
	out.rows = t.rows
	return out, nil
}

// Dense returns the table as a rows × width gonum matrix. It returns nil for
// a table without rows or columns, which mat.Dense cannot represent.
func (t *Table) Dense() *mat.Dense {
	if t.rows == 0 || len(t.cols) == 0 {
		return nil
	}
	m := mat.NewDense(t.rows, len(t.cols), nil)
	for j, col := range t.cols {
		m.SetCol(j, col)
	}
	return m
}
