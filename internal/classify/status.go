// Package classify derives display state from audit items: status, answered
// state, formatted values and the label heuristics the renderer relies on.
// Everything here is a pure function of its arguments.
package classify

import (
	"strings"

	"audit-report/internal/model"
)

// SplitPrimary splits a Primary value of the form "<option_id>|<display>" on
// the first '|'. Without a separator the whole value is the display text.
func SplitPrimary(primary string) (optionID, display string) {
	if i := strings.IndexByte(primary, '|'); i >= 0 {
		return primary[:i], primary[i+1:]
	}
	return "", primary
}

// Classify maps display text to a status by ordered substring checks. The
// first match wins: ok, noncompliant, info, na, then other. The tokens are
// matched verbatim because existing exports depend on them.
func Classify(display string) model.Status {
	switch {
	case strings.Contains(display, "OK"):
		return model.StatusOK
	case strings.Contains(display, "Non-compliant"), strings.Contains(display, "不合格"):
		return model.StatusNonCompliant
	case strings.Contains(display, "Info"), strings.Contains(display, "说明"):
		return model.StatusInfo
	case strings.Contains(display, "n. a."), strings.Contains(display, "n.a."):
		return model.StatusNA
	}
	return model.StatusOther
}

// ItemStatus classifies the display half of an item's Primary value. Items
// without a Primary value are other.
func ItemStatus(it model.Item) model.Status {
	if it.Primary == "" {
		return model.StatusOther
	}
	_, display := SplitPrimary(it.Primary)
	return Classify(display)
}

// ColorClass is the CSS class for a value with the given status. Other has
// no styling.
func ColorClass(s model.Status) string {
	if s == model.StatusOther {
		return ""
	}
	return "status-" + string(s)
}

// Answered reports whether any of the item's answer channels is non-empty.
func Answered(it model.Item) bool {
	return it.Primary != "" || it.Secondary != "" || it.Note != "" || it.Media != ""
}

// Emitted reports whether an item takes part in the report at all: answered
// and not a category marker.
func Emitted(it model.Item) bool {
	return !it.IsCategory() && Answered(it)
}

// Visible reports whether an emitted item is rendered in the body and the
// navigation panel. Location items are suppressed unless showLocations is set.
// Earlier reports still listed location items in the table of contents; they
// are now left out of both, so every navigation link has a target.
func Visible(it model.Item, showLocations bool) bool {
	return Emitted(it) && (showLocations || !IsLocation(it.Label))
}

// SectionEmitted reports whether a section has at least one emitted item.
func SectionEmitted(s model.Section) bool {
	for _, it := range s.Items {
		if Emitted(it) {
			return true
		}
	}
	return false
}
