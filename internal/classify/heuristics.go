package classify

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"audit-report/internal/model"
)

func normLabel(label string) string {
	return strings.ToLower(norm.NFC.String(label))
}

// IsLocation matches labels of GPS/location fields.
func IsLocation(label string) bool {
	l := normLabel(label)
	return strings.Contains(l, "location") || strings.Contains(l, "地点")
}

// IsTitlePage matches the label of the title page section.
func IsTitlePage(label string) bool {
	l := normLabel(label)
	return strings.Contains(l, "title") || strings.Contains(l, "标题页")
}

// IsMachineDesignation matches the label of the machine designation field.
func IsMachineDesignation(label string) bool {
	l := normLabel(label)
	return strings.Contains(l, "machine designation") || strings.Contains(l, "机器名称")
}

// DisplayOrder returns the section's items in rendering order. On a title
// page, machine designation items move to the front; all other items keep
// their relative order.
func DisplayOrder(s model.Section) []model.Item {
	if !IsTitlePage(s.Label) {
		return s.Items
	}
	front := make([]model.Item, 0, len(s.Items))
	var rest []model.Item
	for _, it := range s.Items {
		if IsMachineDesignation(it.Label) {
			front = append(front, it)
		} else {
			rest = append(rest, it)
		}
	}
	return append(front, rest...)
}

// Truncate shortens s to n characters and appends "..." when it was longer.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
