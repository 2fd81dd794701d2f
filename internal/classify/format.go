package classify

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout renders epoch values as DD.MM.YYYY HH:MM.
const TimestampLayout = "02.01.2006 15:04"

// FormatTimestamp renders a display value that is exactly ten ASCII digits
// (after trimming) as a date in loc. Anything else, or a value that fails to
// parse, is returned unchanged.
func FormatTimestamp(value string, loc *time.Location) string {
	v := strings.TrimSpace(value)
	if len(v) != 10 || !allDigits(v) {
		return value
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return value
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(TimestampLayout)
}

// FormatValue formats the display half of a Primary value for an item with
// the given label: epoch timestamps are rendered as dates and location
// fields lose their coordinates.
func FormatValue(display, label string, loc *time.Location) string {
	v := FormatTimestamp(display, loc)
	if IsLocation(label) {
		v = StripCoordinates(v)
	}
	return v
}

var (
	coordinateLine = regexp.MustCompile(`^\s*\([\d.,\s-]+\)\s*$`)
	coordinateTail = regexp.MustCompile(`\s*\([\d.,\s-]+\)\s*$`)
	coordinateJunk = strings.NewReplacer(";", "", ".", "", "-", "", " ", "")
)

// StripCoordinates removes GPS data from location text, line by line. Lines
// made only of ';'-separated numbers and lines that are a bare parenthesised
// number group are dropped; a trailing parenthesised number group is cut
// off. Blank lines are omitted from the result.
func StripCoordinates(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, ";") && allDigits(coordinateJunk.Replace(line)) {
			continue
		}
		if coordinateLine.MatchString(line) {
			continue
		}
		line = coordinateTail.ReplaceAllString(line, "")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// allDigits is false for the empty string.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Run is a slice of text; Emphasis marks CJK runs the renderer highlights.
type Run struct {
	Text     string
	Emphasis bool
}

var (
	cjkRun       = regexp.MustCompile(`[\x{4e00}-\x{9fff}\p{Nd}，。、：；！？（）【】《》"・\s\x{3000}\x{00a0}]+`)
	cjkIdeograph = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
)

// HighlightRuns splits text into maximal runs of CJK ideographs, digits,
// full-width punctuation and whitespace, and the text between them. A run is
// emphasised only if it holds at least one ideograph.
func HighlightRuns(text string) []Run {
	var runs []Run
	last := 0
	for _, loc := range cjkRun.FindAllStringIndex(text, -1) {
		seg := text[loc[0]:loc[1]]
		if !cjkIdeograph.MatchString(seg) {
			continue
		}
		if loc[0] > last {
			runs = append(runs, Run{Text: text[last:loc[0]]})
		}
		runs = append(runs, Run{Text: seg, Emphasis: true})
		last = loc[1]
	}
	if last < len(text) {
		runs = append(runs, Run{Text: text[last:]})
	}
	return runs
}
