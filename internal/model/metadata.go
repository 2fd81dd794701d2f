package model

// Metadata is an ordered key/value mapping collected from the rows that
// precede the header row. A repeated key keeps its first position and takes
// the latest value.
type Metadata struct {
	keys   []string
	values map[string]string
}

// DefaultTitle is used when the record carries no audit_title.
const DefaultTitle = "Audit Report"

func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (m Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m Metadata) Len() int { return len(m.keys) }

// Title returns audit_title, or DefaultTitle when it is absent or empty.
func (m Metadata) Title() string {
	if v, ok := m.values["audit_title"]; ok && v != "" {
		return v
	}
	return DefaultTitle
}

// Pair is one metadata entry, used for serialisation.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Pairs returns the entries in order.
func (m Metadata) Pairs() []Pair {
	out := make([]Pair, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Pair{Key: k, Value: m.values[k]})
	}
	return out
}
