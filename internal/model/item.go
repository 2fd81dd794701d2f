package model

import "strings"

// Item types with special meaning. Every other Type value is a regular,
// answerable item.
const (
	TypeSection  = "section"
	TypeCategory = "category"
)

// Item is one data row of an audit record, aligned to the header columns.
type Item struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Note      string `json:"note,omitempty"`
	Media     string `json:"media,omitempty"`
}

func (it Item) IsSection() bool { return it.Type == TypeSection }
func (it Item) IsCategory() bool { return it.Type == TypeCategory }

// Anchor returns the HTML id used for the item: ID with '-' replaced by '_'.
func (it Item) Anchor() string { return Anchor(it.ID) }

// MediaIDs splits Media on ';' and returns the trimmed, non-empty image ids.
func (it Item) MediaIDs() []string {
	if it.Media == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(it.Media, ";") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Anchor sanitises a record ID for use as an element id.
func Anchor(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}
