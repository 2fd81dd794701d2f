// Package section groups a flat item list into sections.
package section

import "audit-report/internal/model"

// Organize starts a new section at every section-typed item and assigns the
// following items to it until the next one. Items before the first section
// are dropped. Category items stay in place; the renderer skips them.
// Sections without items are still returned.
func Organize(items []model.Item) []model.Section {
	var (
		out     []model.Section
		current *model.Section
	)
	for _, it := range items {
		if it.IsSection() {
			if current != nil {
				out = append(out, *current)
			}
			current = &model.Section{ID: it.ID, Label: it.Label}
			continue
		}
		if current != nil {
			current.Items = append(current.Items, it)
		}
	}
	if current != nil {
		out = append(out, *current)
	}
	return out
}
