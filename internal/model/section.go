package model

// Section is a named group of items, delimited in the source by
// section-typed rows. Items keep source order.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

func (s Section) Anchor() string { return Anchor(s.ID) }
