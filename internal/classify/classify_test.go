package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"audit-report/internal/model"
)

func TestSplitPrimary(t *testing.T) {
	id, display := SplitPrimary("opt1|OK")
	assert.Equal(t, "opt1", id)
	assert.Equal(t, "OK", display)

	id, display = SplitPrimary("a|b|c")
	assert.Equal(t, "a", id)
	assert.Equal(t, "b|c", display)

	id, display = SplitPrimary("plain text")
	assert.Equal(t, "", id)
	assert.Equal(t, "plain text", display)

	id, display = SplitPrimary("|30.989;121.216")
	assert.Equal(t, "", id)
	assert.Equal(t, "30.989;121.216", display)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		display string
		want    model.Status
	}{
		{"OK", model.StatusOK},
		{"Non-compliant", model.StatusNonCompliant},
		{"不合格 / Non-compliant", model.StatusNonCompliant},
		{"Info", model.StatusInfo},
		{"说明", model.StatusInfo},
		{"n. a.", model.StatusNA},
		{"n.a.", model.StatusNA},
		{"ok", model.StatusOther},
		{"", model.StatusOther},
		{"Yes", model.StatusOther},
		// priority order when several markers occur
		{"OK but Non-compliant", model.StatusOK},
		{"Info: Non-compliant", model.StatusNonCompliant},
		{"n.a. Info", model.StatusInfo},
	}
	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.display))
		})
	}
}

func TestItemStatus(t *testing.T) {
	assert.Equal(t, model.StatusOther, ItemStatus(model.Item{Note: "OK"}))
	assert.Equal(t, model.StatusOK, ItemStatus(model.Item{Primary: "opt1|OK"}))
	// the option id is not classified
	assert.Equal(t, model.StatusOther, ItemStatus(model.Item{Primary: "OK|fine"}))
}

func TestColorClass(t *testing.T) {
	assert.Equal(t, "status-ok", ColorClass(model.StatusOK))
	assert.Equal(t, "status-noncompliant", ColorClass(model.StatusNonCompliant))
	assert.Equal(t, "", ColorClass(model.StatusOther))
}

func TestAnsweredAndEmitted(t *testing.T) {
	assert.False(t, Answered(model.Item{ID: "x", Label: "Question"}))
	assert.True(t, Answered(model.Item{Primary: "a"}))
	assert.True(t, Answered(model.Item{Secondary: "a"}))
	assert.True(t, Answered(model.Item{Note: "a"}))
	assert.True(t, Answered(model.Item{Media: "img"}))

	assert.False(t, Emitted(model.Item{Type: "category", Primary: "x"}))
	assert.True(t, Emitted(model.Item{Type: "item", Primary: "x"}))

	loc := model.Item{Type: "item", Label: "Location", Primary: "|30.989;121.216"}
	assert.True(t, Emitted(loc))
	assert.False(t, Visible(loc, false))
	assert.True(t, Visible(loc, true))
}

func TestSectionEmitted(t *testing.T) {
	assert.False(t, SectionEmitted(model.Section{}))
	assert.False(t, SectionEmitted(model.Section{Items: []model.Item{
		{Type: "category", Label: "Sub", Primary: "x"},
		{Type: "item", Label: "Unanswered"},
	}}))
	assert.True(t, SectionEmitted(model.Section{Items: []model.Item{
		{Type: "item", Label: "Location", Primary: "|1;2"},
	}}))
}

func TestHeuristics(t *testing.T) {
	assert.True(t, IsLocation("GPS Location"))
	assert.True(t, IsLocation("LOCATION"))
	assert.True(t, IsLocation("检查地点"))
	assert.False(t, IsLocation("Locale"))

	assert.True(t, IsTitlePage("Title Page"))
	assert.True(t, IsTitlePage("标题页"))
	assert.False(t, IsTitlePage("Electrics"))

	assert.True(t, IsMachineDesignation("Machine designation"))
	assert.True(t, IsMachineDesignation("机器名称 / Machine Designation"))
	assert.False(t, IsMachineDesignation("Machine type"))
}

func TestDisplayOrder(t *testing.T) {
	items := []model.Item{
		{ID: "a", Label: "Inspector"},
		{ID: "b", Label: "Date"},
		{ID: "m", Label: "Machine designation"},
		{ID: "c", Label: "Site"},
	}
	got := DisplayOrder(model.Section{Label: "Title Page", Items: items})
	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"m", "a", "b", "c"}, ids)

	// other sections keep source order
	assert.Equal(t, items, DisplayOrder(model.Section{Label: "Hydraulics", Items: items}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "机器名...", Truncate("机器名称", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "14.11.2023 22:13", FormatTimestamp("1700000000", time.UTC))
	assert.Equal(t, "14.11.2023 22:13", FormatTimestamp(" 1700000000 ", time.UTC))
	assert.Equal(t, "170000000", FormatTimestamp("170000000", time.UTC))
	assert.Equal(t, "17000000000", FormatTimestamp("17000000000", time.UTC))
	assert.Equal(t, "17000000a0", FormatTimestamp("17000000a0", time.UTC))
	assert.Equal(t, "", FormatTimestamp("", time.UTC))

	berlin := time.FixedZone("CET", 3600)
	assert.Equal(t, "14.11.2023 23:13", FormatTimestamp("1700000000", berlin))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "14.11.2023 22:13", FormatValue("1700000000", "Inspection date", time.UTC))
	assert.Equal(t, "Hall 3", FormatValue("Hall 3\n30.989;121.216", "Location", time.UTC))
}

func TestStripCoordinates(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"pair line", "30.989;121.216", ""},
		{"negative pair", "-33.86; 151.20", ""},
		{"paren line", "(30.989, 121.216)", ""},
		{"paren tail", "Shanghai Plant 2 (30.989, 121.216)", "Shanghai Plant 2"},
		{"mixed", "Plant 2\n30.989;121.216\n\n  Gate B (1.5,2.5)  ", "Plant 2\nGate B"},
		{"plain text kept", "Hall 3; Bay 4", "Hall 3; Bay 4"},
		{"numbers without separator kept", "12345", "12345"},
		{"address paren kept", "Main St (north entrance)", "Main St (north entrance)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCoordinates(tt.in))
		})
	}
}

func TestHighlightRuns(t *testing.T) {
	assert.Equal(t, []Run{{Text: "Check valve"}, {Text: " 漏油，需要更换 2 个", Emphasis: true}, {Text: "seals"}},
		HighlightRuns("Check valve 漏油，需要更换 2 个seals"))

	// digits and spaces alone are not emphasised
	assert.Equal(t, []Run{{Text: "Torque 25 Nm, 3 bolts"}}, HighlightRuns("Torque 25 Nm, 3 bolts"))

	assert.Equal(t, []Run{{Text: "说明", Emphasis: true}}, HighlightRuns("说明"))
	assert.Nil(t, HighlightRuns(""))
	assert.Equal(t, []Run{{Text: "阀门", Emphasis: true}, {Text: "'s seal"}}, HighlightRuns("阀门's seal"),
		"ASCII apostrophe does not extend a CJK run")
	assert.Equal(t, []Run{{Text: "阀门\"", Emphasis: true}, {Text: "ok"}}, HighlightRuns("阀门\"ok"))
}

func TestNextBreak(t *testing.T) {
	photos := []int{0, 1, 5, 2, 0, 0, 7, 3}
	want := []Break{BreakNone, BreakAfterSmall, BreakAfter, BreakNone, BreakAfterSmall, BreakNone, BreakAfter, BreakNone}

	small := 0
	var got []Break
	for _, p := range photos {
		var b Break
		b, small = NextBreak(small, p)
		got = append(got, b)
	}
	assert.Equal(t, want, got)
}
