package model

// Report is the in-memory graph for one generation: built once, rendered,
// then discarded.
type Report struct {
	// Source names the record the report was built from (file name or upload name).
	Source   string    `json:"source"`
	Metadata Metadata  `json:"-"`
	Sections []Section `json:"sections"`

	// Logo is an optional data URI shown in the header.
	Logo string `json:"-"`
}

// SectionTally is the status breakdown of one emitted section.
type SectionTally struct {
	ID     string       `json:"id"`
	Label  string       `json:"label"`
	Counts StatusCounts `json:"counts"`
}

// RunSummary is the machine-readable summary printed after a generation.
type RunSummary struct {
	RunID        string         `json:"runId"`
	TimestampUtc string         `json:"timestampUtc"`
	Source       string         `json:"source"`
	Output       string         `json:"output"`
	Bytes        int64          `json:"bytes"`
	Counts       StatusCounts   `json:"counts"`
	Sections     []SectionTally `json:"sections"`
	Trend        string         `json:"trend,omitempty"`
	Delta        int            `json:"delta"`
}
