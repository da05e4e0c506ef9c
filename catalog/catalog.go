package catalog

//go:generate mockgen -source=catalog.go -destination=catalogmock/catalogmock.go -package=catalogmock

import "context"

// A Book is an archive of entries and the metadata the library lists it with.
type Book struct {
	// ID identifies the book; it never changes.
	ID string `yaml:"id"`

	// Name is the public, human-readable id used in URLs.
	Name string `yaml:"name"`

	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Languages   []string `yaml:"languages"`
	Category    string   `yaml:"category"`

	// Tags are separated by semicolons; tags starting with an underscore are internal.
	Tags string `yaml:"tags"`

	// URL is where the whole book can be downloaded, if anywhere.
	URL string `yaml:"url"`

	// Path is the directory holding the book's entries.
	Path string `yaml:"path"`

	// MainPage is the entry served for the book's root; defaults to index.html.
	MainPage string `yaml:"mainPage"`

	// Illustration is the entry holding the book's icon, if it has one.
	Illustration string `yaml:"illustration"`
}

// A Filter selects books from a Library.
// Zero-value fields match every book.
type Filter struct {
	Query    string
	Lang     string
	Category string
}

// An Entry is one resource of a book.
type Entry struct {
	Path     string
	MimeType string
	Content  []byte
}

// A Hit is one entry matching a search.
type Hit struct {
	Title   string
	Path    string
	Snippet string

	// BookID identifies the book the entry is in.
	BookID string

	// WordCount is negative when unknown.
	WordCount int
}

// Results are one page of Hits for a search.
type Results struct {
	Hits []Hit

	// Start is the offset of the first of Hits among all hits.
	Start int

	// Estimated counts all hits.
	Estimated int
}

// A Library lists books.
type Library interface {
	// BookByID returns the book identified by id.
	BookByID(ctx context.Context, id string) (Book, error)

	// Categories lists the categories of every book, sorted.
	Categories(ctx context.Context) ([]string, error)

	// Filter lists the ids of books matching f, in library order.
	Filter(ctx context.Context, f Filter) ([]string, error)

	// Languages lists the language codes of every book, sorted.
	Languages(ctx context.Context) ([]string, error)
}

// A NameMapper translates between book ids and public book names.
type NameMapper interface {
	IDForName(name string) (string, error)
	NameForID(id string) (string, error)
}

// An Archive reads entries from books.
type Archive interface {
	// Entry reads the entry at path in the book identified by bookID.
	// An empty path reads the book's main page.
	Entry(ctx context.Context, bookID, path string) (Entry, error)

	// RandomEntry picks an HTML entry of the book identified by bookID.
	RandomEntry(ctx context.Context, bookID string) (Entry, error)
}

// A Searcher finds entries matching a pattern.
type Searcher interface {
	// Search returns at most count hits for pattern across the books identified by bookIDs,
	// skipping the first start hits.
	Search(ctx context.Context, bookIDs []string, pattern string, start, count int) (Results, error)
}
