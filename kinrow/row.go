package kinrow

// Row is an insertion-ordered mapping from feature label to scalar value.
// The zero value is not usable; build rows with NewRow or Kinematics.
type Row struct {
	labels []string
	values map[string]float64
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]float64)}
}

// Set stores value under label. A new label is appended to the order; an
// existing label keeps its position and only the value changes.
func (r *Row) Set(label string, value float64) {
	if _, seen := r.values[label]; !seen {
		r.labels = append(r.labels, label)
	}
	r.values[label] = value
}

// Value returns the scalar stored under label and whether it exists.
func (r *Row) Value(label string) (float64, bool) {
	v, ok := r.values[label]

	return v, ok
}

// Labels returns the labels in insertion order. The slice is a copy.
func (r *Row) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Len returns the number of features in the row.
func (r *Row) Len() int { return len(r.labels) }
