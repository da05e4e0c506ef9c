package render

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xy-planning-network/folio/catalog"
	tmpl "github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
)

// ListingTemplate names the template the catalog listing renders with.
const ListingTemplate = "no_js_library_page.html"

// A ListingRow is one book of the catalog listing.
type ListingRow struct {
	// ID is the escaped public name of the book, or empty if it cannot be found.
	ID string

	Title             string
	Description       string
	LangCode          string
	IconURL           string
	Tags              []string
	DownloadAvailable bool
}

// A LanguageFacet filters the listing by language.
type LanguageFacet struct {
	Code     string
	Name     string
	Selected bool
}

// A CategoryFacet filters the listing by category.
type CategoryFacet struct {
	Name     string
	HFName   string
	Selected bool
}

// ListingData is what ListingTemplate renders.
type ListingData struct {
	Root         string
	Books        []ListingRow
	SearchQuery  string
	Languages    []LanguageFacet
	Categories   []CategoryFacet
	Translations Translations
}

// A ListingRenderer renders the catalog listing.
type ListingRenderer struct {
	config

	library  catalog.Library
	mapper   catalog.NameMapper
	renderer tmpl.Renderer
}

// NewListingRenderer constructs a *ListingRenderer listing the books of lib,
// naming each with mapper.
func NewListingRenderer(r tmpl.Renderer, lib catalog.Library, mapper catalog.NameMapper, opts ...OptFn) *ListingRenderer {
	return &ListingRenderer{
		config:   newConfig(opts),
		library:  lib,
		mapper:   mapper,
		renderer: r,
	}
}

// Data prepares the listing of books matching f.
//
// A book that cannot be named is kept, without an id.
// Failing to read the library returns ErrCatalog.
func (lr *ListingRenderer) Data(ctx context.Context, f catalog.Filter) (ListingData, error) {
	ids, err := lr.library.Filter(ctx, f)
	if err != nil {
		return ListingData{}, fmt.Errorf("%w: %s", ErrCatalog, err)
	}

	langs, err := lr.library.Languages(ctx)
	if err != nil {
		return ListingData{}, fmt.Errorf("%w: %s", ErrCatalog, err)
	}

	cats, err := lr.library.Categories(ctx)
	if err != nil {
		return ListingData{}, fmt.Errorf("%w: %s", ErrCatalog, err)
	}

	data := ListingData{
		Root:         lr.root,
		Books:        make([]ListingRow, 0, len(ids)),
		SearchQuery:  f.Query,
		Languages:    make([]LanguageFacet, 0, len(langs)),
		Categories:   make([]CategoryFacet, 0, len(cats)),
		Translations: translations(printer(ctx), len(ids)),
	}

	for _, code := range langs {
		data.Languages = append(data.Languages, LanguageFacet{
			Code:     code,
			Name:     LanguageName(code),
			Selected: code == f.Lang,
		})
	}

	for _, cat := range cats {
		data.Categories = append(data.Categories, CategoryFacet{
			Name:     cat,
			HFName:   HumanizeCategory(cat),
			Selected: cat == f.Category,
		})
	}

	for _, id := range ids {
		book, err := lr.library.BookByID(ctx, id)
		if err != nil {
			return ListingData{}, fmt.Errorf("%w: %s", ErrCatalog, err)
		}

		row := ListingRow{
			Title:             book.Title,
			Description:       book.Description,
			LangCode:          strings.Join(book.Languages, ","),
			Tags:              VisibleTags(book.Tags),
			DownloadAvailable: book.URL != "",
		}

		if book.Illustration != "" {
			row.IconURL = lr.root + IllustrationPath(id) + "?size=48"
		}

		if name, err := lr.mapper.NameForID(id); err == nil {
			row.ID = url.PathEscape(name)
		} else {
			lr.logger.Debug("listed book without content id", &logger.LogContext{
				Error: err,
				Data:  map[string]any{"bookID": id},
			})
		}

		data.Books = append(data.Books, row)
	}

	return data, nil
}

// Render renders the listing of books matching f as HTML.
func (lr *ListingRenderer) Render(ctx context.Context, f catalog.Filter) ([]byte, error) {
	data, err := lr.Data(ctx, f)
	if err != nil {
		return nil, err
	}

	b, err := lr.renderer.Render(ListingTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("%w: listing: %s", ErrRender, err)
	}

	return b, nil
}

// IllustrationPath is the path, under the server root, serving the icon of the book identified by id.
func IllustrationPath(id string) string {
	return "/catalog/v2/illustration/" + url.PathEscape(id) + "/"
}

// VisibleTags splits semicolon separated tags,
// dropping empty ones and internal ones, which start with an underscore.
func VisibleTags(tags string) []string {
	visible := make([]string, 0)
	for _, tag := range strings.Split(tags, ";") {
		if tag == "" || strings.HasPrefix(tag, "_") {
			continue
		}
		visible = append(visible, tag)
	}

	return visible
}

// HumanizeCategory replaces underscores with spaces and uppercases the first character only,
// e.g., "animals_and_plants" becomes "Animals and plants".
func HumanizeCategory(cat string) string {
	if cat == "" {
		return ""
	}

	s := strings.ReplaceAll(cat, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
