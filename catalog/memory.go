package catalog

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"math/rand/v2"
	"mime"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/xy-planning-network/folio"
	"gopkg.in/yaml.v3"
)

const (
	defaultMainPage = "index.html"
	defaultMime     = "application/octet-stream"
	snippetRadius   = 80
)

// Memory implements Library, NameMapper, Archive and Searcher
// over books whose entries are held in an fs.FS each.
//
// A Memory is read-only after construction.
type Memory struct {
	books  []Book
	byID   map[string]int
	byName map[string]string
	files  map[string]fs.FS
	docs   map[string][]doc
}

var (
	_ Library    = (*Memory)(nil)
	_ NameMapper = (*Memory)(nil)
	_ Archive    = (*Memory)(nil)
	_ Searcher   = (*Memory)(nil)
)

// doc is the searchable text of one HTML entry.
type doc struct {
	path  string
	title string
	text  string
	words int
}

type libraryFile struct {
	Books []Book `yaml:"books"`
}

// Load reads the YAML library file at fp.
// A book's relative Path is resolved against the directory holding fp.
func Load(fp string) (*Memory, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read library %s: %s", folio.ErrBadConfig, fp, err)
	}

	var lf libraryFile
	if err := yaml.Unmarshal(b, &lf); err != nil {
		return nil, fmt.Errorf("%w: cannot parse library %s: %s", folio.ErrBadConfig, fp, err)
	}

	dir := filepath.Dir(fp)
	files := make(map[string]fs.FS, len(lf.Books))
	for _, book := range lf.Books {
		if book.Path == "" {
			continue
		}

		p := book.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		files[book.ID] = os.DirFS(p)
	}

	return NewMemory(lf.Books, files)
}

// NewMemory constructs a *Memory serving books, reading the entries of each
// from the fs.FS files holds under its ID.
// HTML entries are indexed for searching.
//
// Every book needs an ID and a Name, neither shared with another book.
func NewMemory(books []Book, files map[string]fs.FS) (*Memory, error) {
	m := &Memory{
		books:  make([]Book, 0, len(books)),
		byID:   make(map[string]int, len(books)),
		byName: make(map[string]string, len(books)),
		files:  make(map[string]fs.FS, len(files)),
		docs:   make(map[string][]doc, len(books)),
	}

	for _, book := range books {
		if book.ID == "" || book.Name == "" {
			return nil, fmt.Errorf("%w: book %q needs an id and a name", folio.ErrBadConfig, book.Title)
		}

		if _, ok := m.byID[book.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate book id %q", folio.ErrBadConfig, book.ID)
		}

		if _, ok := m.byName[book.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate book name %q", folio.ErrBadConfig, book.Name)
		}

		if book.MainPage == "" {
			book.MainPage = defaultMainPage
		}

		m.byID[book.ID] = len(m.books)
		m.byName[book.Name] = book.ID
		m.books = append(m.books, book)

		fsys, ok := files[book.ID]
		if !ok {
			continue
		}
		m.files[book.ID] = fsys

		docs, err := index(fsys)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot index book %q: %s", folio.ErrBadConfig, book.ID, err)
		}
		m.docs[book.ID] = docs
	}

	return m, nil
}

// BookByID returns the book identified by id, or folio.ErrNotExist.
func (m *Memory) BookByID(_ context.Context, id string) (Book, error) {
	i, ok := m.byID[id]
	if !ok {
		return Book{}, fmt.Errorf("%w: book %q", folio.ErrNotExist, id)
	}

	return m.books[i], nil
}

func (m *Memory) Categories(_ context.Context) ([]string, error) {
	cats := make([]string, 0)
	for _, book := range m.books {
		if book.Category != "" {
			cats = append(cats, book.Category)
		}
	}
	slices.Sort(cats)

	return slices.Compact(cats), nil
}

// Filter matches Query against titles and descriptions, ignoring case.
func (m *Memory) Filter(ctx context.Context, f Filter) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	ids := make([]string, 0)
	for _, book := range m.books {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if f.Category != "" && book.Category != f.Category {
			continue
		}

		if f.Lang != "" && !slices.Contains(book.Languages, f.Lang) {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(book.Title), q) &&
			!strings.Contains(strings.ToLower(book.Description), q) {
			continue
		}

		ids = append(ids, book.ID)
	}

	return ids, nil
}

func (m *Memory) Languages(_ context.Context) ([]string, error) {
	langs := make([]string, 0)
	for _, book := range m.books {
		langs = append(langs, book.Languages...)
	}
	slices.Sort(langs)

	return slices.Compact(langs), nil
}

func (m *Memory) IDForName(name string) (string, error) {
	id, ok := m.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: book named %q", folio.ErrNotExist, name)
	}

	return id, nil
}

func (m *Memory) NameForID(id string) (string, error) {
	i, ok := m.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: book %q", folio.ErrNotExist, id)
	}

	return m.books[i].Name, nil
}

// Entry reads the entry at p in the book identified by bookID.
// A directory reads its index.html.
//
// Entry returns folio.ErrNotExist if either the book or the entry does not exist.
func (m *Memory) Entry(ctx context.Context, bookID, p string) (Entry, error) {
	book, err := m.BookByID(ctx, bookID)
	if err != nil {
		return Entry{}, err
	}

	fsys, ok := m.files[bookID]
	if !ok {
		return Entry{}, fmt.Errorf("%w: book %q has no entries", folio.ErrNotExist, bookID)
	}

	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		p = book.MainPage
	}

	if info, err := fs.Stat(fsys, p); err == nil && info.IsDir() {
		p = path.Join(p, defaultMainPage)
	}

	b, err := fs.ReadFile(fsys, p)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return Entry{}, fmt.Errorf("%w: entry %q in book %q", folio.ErrNotExist, p, bookID)
	}
	if err != nil {
		return Entry{}, err
	}

	mt := mime.TypeByExtension(path.Ext(p))
	if mt == "" {
		mt = defaultMime
	}

	return Entry{Path: p, MimeType: mt, Content: b}, nil
}

// RandomEntry picks one of the HTML entries of the book identified by bookID.
func (m *Memory) RandomEntry(ctx context.Context, bookID string) (Entry, error) {
	if _, err := m.BookByID(ctx, bookID); err != nil {
		return Entry{}, err
	}

	docs := m.docs[bookID]
	if len(docs) == 0 {
		return Entry{}, fmt.Errorf("%w: book %q has no pages", folio.ErrNotExist, bookID)
	}

	return m.Entry(ctx, bookID, docs[rand.IntN(len(docs))].path)
}

// Search finds the HTML entries containing every word of pattern, ignoring case,
// in the order of bookIDs and then of entry paths.
// Snippets are HTML with the first matched word in bold.
func (m *Memory) Search(ctx context.Context, bookIDs []string, pattern string, start, count int) (Results, error) {
	if start < 0 || count <= 0 {
		return Results{}, fmt.Errorf("%w: start %d, count %d", folio.ErrNotValid, start, count)
	}

	terms := make([]*regexp.Regexp, 0)
	for _, word := range strings.Fields(pattern) {
		terms = append(terms, regexp.MustCompile("(?i)"+regexp.QuoteMeta(word)))
	}

	res := Results{Hits: make([]Hit, 0), Start: start}
	if len(terms) == 0 {
		return res, nil
	}

	for _, id := range bookIDs {
		if _, ok := m.byID[id]; !ok {
			return Results{}, fmt.Errorf("%w: book %q", folio.ErrNotExist, id)
		}

		for _, d := range m.docs[id] {
			if err := ctx.Err(); err != nil {
				return Results{}, err
			}

			loc, ok := d.match(terms)
			if !ok {
				continue
			}

			if res.Estimated >= start && len(res.Hits) < count {
				res.Hits = append(res.Hits, Hit{
					Title:     d.title,
					Path:      d.path,
					Snippet:   d.snippet(loc),
					BookID:    id,
					WordCount: d.words,
				})
			}
			res.Estimated++
		}
	}

	return res, nil
}

// match reports whether every term is in d,
// returning where in the text the first term is, if it is there.
func (d doc) match(terms []*regexp.Regexp) ([]int, bool) {
	var loc []int
	for i, term := range terms {
		inText := term.FindStringIndex(d.text)
		if inText == nil && !term.MatchString(d.title) {
			return nil, false
		}

		if i == 0 {
			loc = inText
		}
	}

	return loc, true
}

// snippet excerpts the text of d around loc.
func (d doc) snippet(loc []int) string {
	if loc == nil {
		end := min(len(d.text), 2*snippetRadius)
		for end < len(d.text) && !utf8.RuneStart(d.text[end]) {
			end++
		}
		return html.EscapeString(d.text[:end])
	}

	from := max(0, loc[0]-snippetRadius)
	for from > 0 && !utf8.RuneStart(d.text[from]) {
		from--
	}

	to := min(len(d.text), loc[1]+snippetRadius)
	for to < len(d.text) && !utf8.RuneStart(d.text[to]) {
		to++
	}

	return html.EscapeString(d.text[from:loc[0]]) +
		"<b>" + html.EscapeString(d.text[loc[0]:loc[1]]) + "</b>" +
		html.EscapeString(d.text[loc[1]:to])
}
