package model

// Status is the derived classification of an item's primary value.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNonCompliant Status = "noncompliant"
	StatusInfo         Status = "info"
	StatusNA           Status = "na"
	StatusOther        Status = "other"
)

// FilterStatuses are the statuses that have a toggle in the report's filter
// panel. StatusOther has none and is always shown.
var FilterStatuses = []Status{StatusOK, StatusNonCompliant, StatusInfo, StatusNA}

// Badge is the short label shown next to an item in the navigation panel.
func (s Status) Badge() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNonCompliant:
		return "NC"
	case StatusInfo:
		return "Info"
	case StatusNA:
		return "n.a."
	}
	return "—"
}

// StatusCounts tallies emitted items per status.
type StatusCounts struct {
	OK           int `json:"ok"`
	NonCompliant int `json:"noncompliant"`
	Info         int `json:"info"`
	NA           int `json:"na"`
	Other        int `json:"other"`
	Total        int `json:"total"`
}

func (c *StatusCounts) Add(s Status) {
	switch s {
	case StatusOK:
		c.OK++
	case StatusNonCompliant:
		c.NonCompliant++
	case StatusInfo:
		c.Info++
	case StatusNA:
		c.NA++
	default:
		c.Other++
	}
	c.Total++
}
