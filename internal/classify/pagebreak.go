package classify

// Break is a print pagination hint attached to a rendered item.
type Break string

const (
	BreakNone       Break = ""
	BreakAfter      Break = "page-break-after"
	BreakAfterSmall Break = "page-break-after-small"
)

// ManyPhotos is the photo count from which an item gets its own page break.
const ManyPhotos = 5

// NextBreak folds one rendered item into the running count of consecutive
// small items (fewer than ManyPhotos photos) and returns the item's hint and
// the new count. An item with many photos breaks after itself and resets the
// count; every second small item breaks after itself and resets it too. The
// count starts at zero for each section.
func NextBreak(small, photos int) (Break, int) {
	if photos >= ManyPhotos {
		return BreakAfter, 0
	}
	small++
	if small >= 2 {
		return BreakAfterSmall, 0
	}
	return BreakNone, small
}
