package layout

import "github.com/tsawler/folio/page"

// PageSetRun is one run in the run-length encoded page-set partition:
// Count consecutive page sets of Length pages each. Run-length encoding
// keeps the partition small for layouts with many pages.
type PageSetRun struct {
	Count  int
	Length int
}

// pagesPerSet returns the regular page-set length, preferring the
// positioner's own sizes when it has them
func (l *Layout) pagesPerSet() int {
	if s, ok := l.positioner.(pageSetter); ok {
		_, per := s.pageSetSizes()
		return per
	}
	return l.PagesPerSet
}

// pagesFirstSet returns the length of the distinct first page set, or 0
// when disabled
func (l *Layout) pagesFirstSet() int {
	if s, ok := l.positioner.(pageSetter); ok {
		first, _ := s.pageSetSizes()
		return first
	}
	return l.PagesFirstSet
}

// PageSets returns the partition of the page sequence into page sets,
// run-length encoded as at most three runs: the distinct first set if
// one is configured, the regular sets, and a shorter trailing set for
// the remainder. A trailing set of the same length as the run before it
// merges into that run. The sum over all runs of Count*Length equals
// the page count; an empty layout yields an empty result.
func (l *Layout) PageSets() []PageSetRun {
	left := l.Count()
	if left == 0 {
		return nil
	}

	perSet := l.pagesPerSet()
	if perSet < 1 {
		perSet = 1
	}

	var result []PageSetRun
	if first := l.pagesFirstSet(); first > 0 && first != perSet {
		length := first
		if left < length {
			length = left
		}
		result = append(result, PageSetRun{Count: 1, Length: length})
		left -= length
	}
	if left > 0 {
		if count := left / perSet; count > 0 {
			result = append(result, PageSetRun{Count: count, Length: perSet})
		}
		if rest := left % perSet; rest > 0 {
			if n := len(result); n > 0 && result[n-1].Length == rest {
				result[n-1].Count++
			} else {
				result = append(result, PageSetRun{Count: 1, Length: rest})
			}
		}
	}
	return result
}

// PageSetCount returns the number of page sets
func (l *Layout) PageSetCount() int {
	var count int
	for _, run := range l.PageSets() {
		count += run.Count
	}
	return count
}

// PageSet returns the index of the page set containing the page at the
// given index. Out-of-range indexes on a non-empty layout fall back to
// the first page set.
func (l *Layout) PageSet(index int) int {
	pagesBefore := 0
	setsBefore := 0
	for _, run := range l.PageSets() {
		span := run.Count * run.Length
		if pagesBefore+span < index {
			pagesBefore += span
			setsBefore += run.Count
			continue
		}
		return setsBefore + (index-pagesBefore)/run.Length
	}
	return 0
}

// DisplayPages returns the pages to display: all pages in continuous
// mode, otherwise the pages of the current page set. A current set
// index beyond the last set is clamped to the last set.
func (l *Layout) DisplayPages() []page.Page {
	if l.ContinuousMode {
		return l.pages
	}
	num := l.CurrentPageSet
	if num < 0 {
		num = 0
	}
	if count := l.PageSetCount(); num > 0 && num >= count {
		num = count - 1
		l.CurrentPageSet = num
	}

	setsBefore := 0
	start := 0
	for _, run := range l.PageSets() {
		if setsBefore+run.Count <= num {
			setsBefore += run.Count
			start += run.Count * run.Length
			continue
		}
		start += (num - setsBefore) * run.Length
		end := start + run.Length
		if end > len(l.pages) {
			end = len(l.pages)
		}
		return l.pages[start:end]
	}
	return l.pages
}
