package librarian

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/catalog"
	"github.com/xy-planning-network/folio/http/resp"
	"github.com/xy-planning-network/folio/render"
)

const externalTmpl = "external_blocker.html"

// bookFor finds the book called name, stashing name in the context of the request returned.
func (l *Librarian) bookFor(r *http.Request, name string) (*http.Request, catalog.Book, error) {
	r = r.WithContext(context.WithValue(r.Context(), folio.BookKey, name))

	id, err := l.catalog.IDForName(name)
	if err != nil {
		return r, catalog.Book{}, fmt.Errorf("%w: %s", resp.ErrNoSuchBook, err)
	}

	book, err := l.catalog.BookByID(r.Context(), id)
	if err != nil {
		return r, catalog.Book{}, fmt.Errorf("%w: %s", resp.ErrNoSuchBook, err)
	}

	return r, book, nil
}

// contentPath is the escaped path serving p in the book called name.
func (l *Librarian) contentPath(name, p string) string {
	u := url.URL{Path: l.cfg.RootPath + "/content/" + name + "/" + p}
	return u.EscapedPath()
}

// notFound marks err as a missing resource if the catalog reported it missing.
func notFound(err error) error {
	if errors.Is(err, folio.ErrNotExist) {
		return fmt.Errorf("%w: %s", resp.ErrNotFound, err)
	}

	return err
}

type (
	// bookParams name the book a request addresses.
	bookParams struct {
		Content string `schema:"content"`
	}

	externalParams struct {
		Source string `schema:"source"`
	}

	listingParams struct {
		Query    string `schema:"q" validate:"max=256"`
		Lang     string `schema:"lang" validate:"omitempty,langcode"`
		Category string `schema:"category"`
	}

	searchParams struct {
		Pattern    string `schema:"pattern" validate:"max=1024"`
		Content    string `schema:"content"`
		Start      int    `schema:"start" validate:"gte=0"`
		PageLength int    `schema:"pageLength" validate:"gte=0"`
	}
)

// params decodes the query parameters of r into structPtr.
func (l *Librarian) params(w http.ResponseWriter, r *http.Request, structPtr any) bool {
	if err := l.parser.ParseQueryParams(r.URL.Query(), structPtr); err != nil {
		l.responder.Err(w, r, err)
		return false
	}

	return true
}

func (l *Librarian) send(w http.ResponseWriter, r *http.Request, rr *resp.Response, err error) {
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	_ = rr.Send(w, r)
}

// handleBook sends requests for a book to its main page.
func (l *Librarian) handleBook(w http.ResponseWriter, r *http.Request) {
	r, book, err := l.bookFor(r, mux.Vars(r)["book"])
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	rr, err := l.responder.Redirect(l.contentPath(book.Name, ""))
	l.send(w, r, rr, err)
}

// handleContent serves an entry of a book,
// or 304 Not Modified if the client already has it.
func (l *Librarian) handleContent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	r, book, err := l.bookFor(r, vars["book"])
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	entry, err := l.catalog.Entry(r.Context(), book.ID, vars["path"])
	if err != nil {
		l.responder.Err(w, r, notFound(err))
		return
	}

	rr, err := l.responder.Entry(r, entry.Content, entry.MimeType, resp.Book(book.Name, book.Title))
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	if notModified, err := l.responder.Build304(r, rr); err == nil {
		rr = notModified
	}

	l.send(w, r, rr, nil)
}

// handleIllustration serves the icon of the book identified by bookID,
// or 304 Not Modified if the client already has it.
func (l *Librarian) handleIllustration(w http.ResponseWriter, r *http.Request) {
	book, err := l.catalog.BookByID(r.Context(), mux.Vars(r)["bookID"])
	if err != nil {
		l.responder.Err(w, r, fmt.Errorf("%w: %s", resp.ErrNoSuchBook, err))
		return
	}

	if book.Illustration == "" {
		l.responder.Err(w, r, fmt.Errorf("%w: %s has no illustration", resp.ErrNotFound, book.ID))
		return
	}

	entry, err := l.catalog.Entry(r.Context(), book.ID, book.Illustration)
	if err != nil {
		l.responder.Err(w, r, notFound(err))
		return
	}

	rr, err := l.responder.Entry(r, entry.Content, entry.MimeType)
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	if notModified, err := l.responder.Build304(r, rr); err == nil {
		rr = notModified
	}

	l.send(w, r, rr, nil)
}

// handleDownload sends the client to where the book can be downloaded.
func (l *Librarian) handleDownload(w http.ResponseWriter, r *http.Request) {
	r, book, err := l.bookFor(r, mux.Vars(r)["book"])
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	if book.URL == "" {
		l.responder.Err(w, r, fmt.Errorf("%w: %s cannot be downloaded", resp.ErrNotFound, book.Name))
		return
	}

	rr, err := l.responder.Redirect(book.URL)
	l.send(w, r, rr, err)
}

// handleExternal asks for confirmation before following a link out of the library.
func (l *Librarian) handleExternal(w http.ResponseWriter, r *http.Request) {
	var p externalParams
	if !l.params(w, r, &p) {
		return
	}
	source := p.Source

	u, err := url.Parse(source)
	if err != nil || u.Host == "" || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
		l.responder.Err(w, r, fmt.Errorf("%w: no external link in %q", resp.ErrNotFound, source))
		return
	}

	rr, err := l.responder.Template(
		externalTmpl,
		struct{ Root, Source string }{l.cfg.RootPath, source},
		resp.BlockExternalLinks(false),
		resp.Cacheable(false),
	)
	l.send(w, r, rr, err)
}

// handleHome sends the client to the catalog listing.
func (l *Librarian) handleHome(w http.ResponseWriter, r *http.Request) {
	rr, err := l.responder.Redirect(l.cfg.RootPath + "/nojs")
	l.send(w, r, rr, err)
}

// handleListing lists the books of the catalog matching the query.
func (l *Librarian) handleListing(w http.ResponseWriter, r *http.Request) {
	var p listingParams
	if !l.params(w, r, &p) {
		return
	}

	f := catalog.Filter{
		Query:    strings.TrimSpace(p.Query),
		Lang:     p.Lang,
		Category: p.Category,
	}

	data, err := l.listing.Data(r.Context(), f)
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	rr, err := l.responder.Template(render.ListingTemplate, data, resp.Cacheable(false))
	l.send(w, r, rr, err)
}

func (l *Librarian) handleNotFound(w http.ResponseWriter, r *http.Request) {
	l.responder.Err(w, r, fmt.Errorf("%w: %s", resp.ErrNotFound, r.URL.Path))
}

// handleRandom sends the client to a random page of a book.
func (l *Librarian) handleRandom(w http.ResponseWriter, r *http.Request) {
	var p bookParams
	if !l.params(w, r, &p) {
		return
	}

	r, book, err := l.bookFor(r, p.Content)
	if err != nil {
		l.responder.Err(w, r, err)
		return
	}

	entry, err := l.catalog.RandomEntry(r.Context(), book.ID)
	if err != nil {
		l.responder.Err(w, r, notFound(err))
		return
	}

	rr, err := l.responder.Redirect(l.contentPath(book.Name, entry.Path))
	l.send(w, r, rr, err)
}

// handleSearch searches one book, if content names one, or all of them.
func (l *Librarian) handleSearch(w http.ResponseWriter, r *http.Request) {
	var p searchParams
	if !l.params(w, r, &p) {
		return
	}
	pattern := strings.TrimSpace(p.Pattern)
	content := p.Content

	var (
		ids  []string
		opts []resp.Fn
		err  error
	)
	if content != "" {
		var book catalog.Book
		r, book, err = l.bookFor(r, content)
		if err != nil {
			l.responder.Err(w, r, err)
			return
		}

		ids = []string{book.ID}
		opts = append(opts, resp.Book(book.Name, book.Title))
	} else {
		ids, err = l.catalog.Filter(r.Context(), catalog.Filter{})
		if err != nil {
			l.responder.Err(w, r, err)
			return
		}
	}

	pageLength := p.PageLength
	if pageLength == 0 {
		pageLength = l.cfg.SearchPageLength
	}
	pageLength = min(pageLength, maxSearchPageLength)

	res, err := l.catalog.Search(r.Context(), ids, pattern, p.Start, pageLength)
	if err != nil {
		l.responder.Err(w, r, notFound(err))
		return
	}

	sr := render.NewSearchRenderer(
		l.registry,
		l.catalog,
		append(slices.Clip(l.search), render.WithPageLength(pageLength))...,
	)

	rr, err := l.responder.Template(render.SearchTemplate, sr.Data(r.Context(), res, pattern, content), append(opts, resp.Cacheable(false))...)
	l.send(w, r, rr, err)
}
