package render

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
	"github.com/xy-planning-network/folio/catalog"
	tmpl "github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
)

// SearchTemplate names the template search results render with.
const SearchTemplate = "search_result.html"

// A SearchResult is one row of search results.
type SearchResult struct {
	Title string
	URL   string

	// Snippet is sanitized HTML in which only emphasis survives.
	Snippet template.HTML

	// ResultContentID is the public name of the book the result is in,
	// or empty if it cannot be found.
	ResultContentID string

	// BookTitle is empty without a Library.
	BookTitle string

	// WordCount is empty when unknown.
	WordCount string
}

// SearchData is what SearchTemplate renders.
type SearchData struct {
	Results    []SearchResult
	HasResults bool
	Count      string

	// SearchPattern is escaped for display,
	// SearchPatternEncoded for use in a query string.
	SearchPattern        template.HTML
	SearchPatternEncoded template.URL

	ResultStart int
	ResultEnd   int

	ProtocolPrefix       template.URL
	SearchProtocolPrefix template.URL

	ContentID  string
	Pagination Pagination
}

// A SearchRenderer renders pages of search results.
type SearchRenderer struct {
	config

	mapper   catalog.NameMapper
	policy   *bluemonday.Policy
	renderer tmpl.Renderer
}

// NewSearchRenderer constructs a *SearchRenderer naming the book of each result with mapper.
func NewSearchRenderer(r tmpl.Renderer, mapper catalog.NameMapper, opts ...OptFn) *SearchRenderer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "em", "mark", "strong")

	return &SearchRenderer{
		config:   newConfig(opts),
		mapper:   mapper,
		policy:   policy,
		renderer: r,
	}
}

// PageLength returns the number of results per page.
func (sr *SearchRenderer) PageLength() int { return sr.pageLength }

// Data prepares res, the results of searching for pattern, for rendering.
// contentID names the book searched, if only one was.
//
// A result whose book cannot be named is kept, without a content id.
func (sr *SearchRenderer) Data(ctx context.Context, res catalog.Results, pattern, contentID string) SearchData {
	p := printer(ctx)

	rows := make([]SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		row := SearchResult{
			Title:   hit.Title,
			URL:     hit.Path,
			Snippet: template.HTML(sr.policy.Sanitize(hit.Snippet)),
		}

		name, err := sr.mapper.NameForID(hit.BookID)
		if err != nil {
			sr.logger.Debug("search result without content id", &logger.LogContext{
				Error: err,
				Data:  map[string]any{"bookID": hit.BookID, "path": hit.Path},
			})
		}
		row.ResultContentID = name

		if sr.library != nil {
			if book, err := sr.library.BookByID(ctx, hit.BookID); err == nil {
				row.BookTitle = book.Title
			}
		}

		if hit.WordCount >= 0 {
			row.WordCount = p.Sprintf("%d", hit.WordCount)
		}

		rows = append(rows, row)
	}

	start := max(res.Start, 0)

	return SearchData{
		Results:              rows,
		HasResults:           res.Estimated != 0,
		Count:                p.Sprintf("%d", res.Estimated),
		SearchPattern:        template.HTML(html.EscapeString(pattern)),
		SearchPatternEncoded: template.URL(url.QueryEscape(pattern)),
		ResultStart:          start + 1,
		ResultEnd:            min(start+sr.pageLength, res.Estimated),
		ProtocolPrefix:       template.URL(sr.protocolPrefix),
		SearchProtocolPrefix: template.URL(sr.searchProtocolPrefix),
		ContentID:            contentID,
		Pagination:           BuildPagination(sr.pageLength, res.Estimated, start),
	}
}

// Render renders res, the results of searching for pattern, as HTML.
//
// Render returns ErrRender, and no HTML, if the template fails.
func (sr *SearchRenderer) Render(ctx context.Context, res catalog.Results, pattern, contentID string) ([]byte, error) {
	b, err := sr.renderer.Render(SearchTemplate, sr.Data(ctx, res, pattern, contentID))
	if err != nil {
		return nil, fmt.Errorf("%w: search results: %s", ErrRender, err)
	}

	return b, nil
}
