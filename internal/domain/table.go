package domain

// Row is one label/value line of a display table
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table keeps rows in insertion order, which is the order they
// are rendered in
type Table []Row

func (t *Table) Add(label, value string) {
	*t = append(*t, Row{Label: label, Value: value})
}

func (t Table) Get(label string) (string, bool) {
	for _, r := range t {
		if r.Label == label {
			return r.Value, true
		}
	}
	return "", false
}
