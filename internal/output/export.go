package output

import (
	"time"

	"audit-report/internal/analyze"
	"audit-report/internal/classify"
	"audit-report/internal/model"
)

// ExportItem is one emitted item in the CSV and JSON exports. Location
// items are included with their coordinates stripped.
type ExportItem struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Status   model.Status `json:"status"`
	Value    string       `json:"value,omitempty"`
	Notes    string       `json:"notes,omitempty"`
	Photos   int          `json:"photos"`
	Location bool         `json:"location,omitempty"`
}

type ExportSection struct {
	ID     string             `json:"id"`
	Label  string             `json:"label"`
	Counts model.StatusCounts `json:"counts"`
	Items  []ExportItem       `json:"items"`
}

type Export struct {
	Source   string             `json:"source"`
	Title    string             `json:"title"`
	Metadata []model.Pair       `json:"metadata"`
	Counts   model.StatusCounts `json:"counts"`
	Sections []ExportSection    `json:"sections"`
}

// BuildExport flattens the emitted part of a report into export rows, in
// display order.
func BuildExport(rep *model.Report, loc *time.Location) Export {
	// Location rows are exported, so they are counted too.
	counts, tallies := analyze.Tally(rep.Sections, true)
	ex := Export{
		Source:   rep.Source,
		Title:    rep.Metadata.Title(),
		Metadata: rep.Metadata.Pairs(),
		Counts:   counts,
		Sections: []ExportSection{},
	}
	i := 0
	for _, s := range rep.Sections {
		if !classify.SectionEmitted(s) {
			continue
		}
		es := ExportSection{ID: s.ID, Label: s.Label, Counts: tallies[i].Counts, Items: []ExportItem{}}
		i++
		for _, it := range classify.DisplayOrder(s) {
			if !classify.Emitted(it) {
				continue
			}
			isLoc := classify.IsLocation(it.Label)
			row := ExportItem{
				ID:       it.ID,
				Label:    it.Label,
				Status:   classify.ItemStatus(it),
				Photos:   len(it.MediaIDs()),
				Location: isLoc,
			}
			if it.Primary != "" {
				_, display := classify.SplitPrimary(it.Primary)
				row.Value = classify.FormatValue(display, it.Label, loc)
			}
			if notes, ok := Notes(it); ok {
				if isLoc {
					notes = classify.StripCoordinates(notes)
				}
				row.Notes = notes
			}
			es.Items = append(es.Items, row)
		}
		ex.Sections = append(ex.Sections, es)
	}
	return ex
}
