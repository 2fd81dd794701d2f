package analyze

import (
	"audit-report/internal/classify"
	"audit-report/internal/model"
)

// Tally counts the items a report shows, per status, overall and per emitted
// section. Sections without emitted items are left out.
func Tally(sections []model.Section, showLocations bool) (model.StatusCounts, []model.SectionTally) {
	var total model.StatusCounts
	tallies := []model.SectionTally{}
	for _, s := range sections {
		if !classify.SectionEmitted(s) {
			continue
		}
		st := model.SectionTally{ID: s.ID, Label: s.Label}
		for _, it := range s.Items {
			if !classify.Visible(it, showLocations) {
				continue
			}
			status := classify.ItemStatus(it)
			st.Counts.Add(status)
			total.Add(status)
		}
		tallies = append(tallies, st)
	}
	return total, tallies
}

// Trend compares the non-compliant count of two runs of the same source.
// previous < 0 means there is no earlier run.
func Trend(previous, current int) (label string, delta int) {
	if previous < 0 {
		return "FIRST_RUN", 0
	}
	delta = current - previous
	switch {
	case delta < 0:
		return "IMPROVING", delta
	case delta > 0:
		return "DECLINING", delta
	}
	return "SAME", 0
}
