package browse

// PageEntry is one element of the pagination display: either a concrete
// page number or an ellipsis standing in for a skipped range.
type PageEntry struct {
	Page     int
	Ellipsis bool
}

// fullRunThreshold is the page count at or below which every page number
// is emitted with no ellipses.
const fullRunThreshold = 5

// PageNumbers returns the entries to display for the given current page
// and page count: anchors at page 1 and the last page, a window of up to
// three pages around the current page, and an ellipsis for each gap
// between the window and an anchor. At most seven entries are produced
// regardless of the page count. A zero or negative total yields an empty
// list; the caller is expected not to render pagination at all in that
// case.
func PageNumbers(current, total int) []PageEntry {
	var entries []PageEntry

	if total <= fullRunThreshold {
		for i := 1; i <= total; i++ {
			entries = append(entries, PageEntry{Page: i})
		}
		return entries
	}

	entries = append(entries, PageEntry{Page: 1})

	start := max(2, current-1)
	end := min(total-1, current+1)

	if start > 2 {
		entries = append(entries, PageEntry{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		if i == 1 || i == total {
			continue
		}
		entries = append(entries, PageEntry{Page: i})
	}
	if end < total-1 {
		entries = append(entries, PageEntry{Ellipsis: true})
	}

	entries = append(entries, PageEntry{Page: total})
	return entries
}
