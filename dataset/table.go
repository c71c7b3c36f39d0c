package dataset

import (
	"math"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/kinrow"
)

// Table is a column-ordered, in-memory feature frame. Columns appear in the
// order their labels were first seen; every column always holds one cell per
// row, with NaN marking features a row did not provide.
//
// The zero value is not usable; build tables with NewTable or Concat.
type Table struct {
	labels  []string
	columns map[string][]float64
	rows    int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{columns: make(map[string][]float64)}
}

// Rows returns the number of appended rows.
func (t *Table) Rows() int { return t.rows }

// Labels returns the column labels in first-seen order. The slice is a copy.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Append adds one feature row. Labels the table has not seen become new
// columns, back-filled with NaN for the rows already present; columns the row
// does not mention receive NaN in the new cell.
func (t *Table) Append(row *kinrow.Row) error {
	if row == nil {
		return ErrNilRow
	}

	for _, label := range row.Labels() {
		if _, seen := t.columns[label]; !seen {
			col := make([]float64, t.rows, t.rows+1)
			for i := range col {
				col[i] = math.NaN()
			}
			t.labels = append(t.labels, label)
			t.columns[label] = col
		}
	}

	for _, label := range t.labels {
		v, ok := row.Value(label)
		if !ok {
			v = math.NaN()
		}
		t.columns[label] = append(t.columns[label], v)
	}
	t.rows++

	return nil
}

// Column returns a copy of the cells stored under label, one per row.
//
// Errors:
//   - ErrUnknownColumn — label was never seen by this table.
func (t *Table) Column(label string) ([]float64, error) {
	col, ok := t.columns[label]
	if !ok {
		return nil, ErrUnknownColumn
	}

	out := make([]float64, len(col))
	copy(out, col)

	return out, nil
}

// appendTable splices every row of src onto t, aligning columns by label the
// same way Append does.
func (t *Table) appendTable(src *Table) {
	for _, label := range src.labels {
		if _, seen := t.columns[label]; !seen {
			col := make([]float64, t.rows, t.rows+src.rows)
			for i := range col {
				col[i] = math.NaN()
			}
			t.labels = append(t.labels, label)
			t.columns[label] = col
		}
	}

	for _, label := range t.labels {
		cells, ok := src.columns[label]
		if ok {
			t.columns[label] = append(t.columns[label], cells...)
			continue
		}
		col := t.columns[label]
		for i := 0; i < src.rows; i++ {
			col = append(col, math.NaN())
		}
		t.columns[label] = col
	}
	t.rows += src.rows
}

// Concat merges tables row-wise in argument order into a fresh table. Columns
// are aligned by label; a column missing from some operand contributes NaN
// for that operand's rows. Nil operands are skipped.
func Concat(tables ...*Table) *Table {
	out := NewTable()
	for _, t := range tables {
		if t == nil {
			continue
		}
		out.appendTable(t)
	}

	return out
}
