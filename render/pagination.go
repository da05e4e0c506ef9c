package render

import "strconv"

const (
	firstLabel   = "◀"
	lastLabel    = "▶"
	windowRadius = 4
)

// A Page links to one page of results.
type Page struct {
	Label   string
	Start   int
	Current bool
}

// Pagination links to pages of results near the current one,
// and to the first and last pages when those are out of reach.
type Pagination struct {
	ItemsPerPage int
	HasPages     bool
	Pages        []Page
}

// BuildPagination paginates count results, pageLength per page,
// with the page holding the result at offset start as the current one.
// An offset past the last result is treated as being on the last page.
//
// At most 9 numbered pages are generated, centered on the current one.
//
// BuildPagination panics if pageLength is not positive.
func BuildPagination(pageLength, count, start int) Pagination {
	if pageLength <= 0 {
		panic("render: BuildPagination called with non-positive page length " + strconv.Itoa(pageLength))
	}

	p := Pagination{ItemsPerPage: pageLength, Pages: make([]Page, 0)}
	if count <= 0 {
		return p
	}

	last := (count - 1) / pageLength
	current := min(max(start, 0)/pageLength, last)
	firstGenerated := max(current-windowRadius, 0)
	lastGenerated := min(current+windowRadius, last)

	if last != 0 {
		if firstGenerated != 0 {
			p.Pages = append(p.Pages, Page{Label: firstLabel, Start: 0})
		}

		for i := firstGenerated; i <= lastGenerated; i++ {
			p.Pages = append(p.Pages, Page{
				Label:   strconv.Itoa(i + 1),
				Start:   i * pageLength,
				Current: i == current,
			})
		}

		if lastGenerated != last {
			p.Pages = append(p.Pages, Page{Label: lastLabel, Start: last * pageLength})
		}
	}

	p.HasPages = firstGenerated < lastGenerated

	return p
}
