package librarian_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/catalog"
	"github.com/xy-planning-network/folio/http/middleware"
	"github.com/xy-planning-network/folio/librarian"
	"github.com/xy-planning-network/folio/logger"
)

const (
	favicon = "\x89PNG\r\n\x1a\nicon"
	logo    = "plain text logo 0123456789"
)

var books = []catalog.Book{
	{
		ID:           "8f1a",
		Name:         "wikipedia_en",
		Title:        "Wikipedia",
		Description:  "The free encyclopedia",
		Languages:    []string{"eng"},
		Category:     "wikipedia",
		Tags:         "_ftindex;wikipedia",
		URL:          "https://download.example.org/wikipedia_en.zim",
		Illustration: "I/favicon.png",
	},
	{
		ID:        "c07e",
		Name:      "gutenberg_fr",
		Title:     "Gutenberg",
		Languages: []string{"fra"},
		Category:  "gutenberg",
	},
}

func testConfig() librarian.Config {
	return librarian.Config{
		Env:              folio.Testing,
		Host:             "localhost",
		Port:             "0",
		Taskbar:          true,
		LibraryButton:    true,
		Compress:         true,
		SearchPageLength: 25,
		LogLevel:         "INFO",
		RateLimit:        1000,
		RateBurst:        1000,
	}
}

func newLibrarian(t *testing.T, cfg librarian.Config) *librarian.Librarian {
	t.Helper()

	files := map[string]fs.FS{
		"8f1a": fstest.MapFS{
			"index.html":    {Data: []byte(`<html><head><title>Main</title></head><body><h1>Welcome</h1><a href="https://example.org/out">out</a></body></html>`)},
			"A/Paris.html":  {Data: []byte(`<html><head><title>Paris</title></head><body><p>Paris is the capital of France.</p></body></html>`)},
			"I/favicon.png": {Data: []byte(favicon)},
			"I/logo.txt":    {Data: []byte(logo)},
		},
	}

	mem, err := catalog.NewMemory(books, files)
	require.Nil(t, err)

	l, err := librarian.New(cfg, librarian.WithCatalog(mem), librarian.WithLogger(logger.NewDiscard()))
	require.Nil(t, err)

	return l
}

func serve(l *librarian.Librarian, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, target, nil)
	for key, vals := range header {
		r.Header[key] = vals
	}

	l.Handler().ServeHTTP(w, r)

	return w
}

func TestNew(t *testing.T) {
	t.Run("Bad-Config", func(t *testing.T) {
		// Arrange
		cfg := testConfig()
		cfg.SearchPageLength = 0

		// Act
		_, err := librarian.New(cfg)

		// Assert
		require.ErrorIs(t, err, folio.ErrBadConfig)
	})

	t.Run("Missing-Library", func(t *testing.T) {
		// Arrange
		cfg := testConfig()
		cfg.LibraryFile = t.TempDir() + "/library.yaml"

		// Act
		_, err := librarian.New(cfg, librarian.WithLogger(logger.NewDiscard()))

		// Assert
		require.ErrorIs(t, err, folio.ErrBadConfig)
	})
}

func TestContent(t *testing.T) {
	l := newLibrarian(t, testConfig())

	tcs := []struct {
		name   string
		method string
		target string
		header http.Header
		assert func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "Main-Page",
			method: http.MethodGet,
			target: "/content/wikipedia_en/",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), "<h1>Welcome</h1>")
				require.Contains(t, w.Body.String(), "data-folio-taskbar")
				require.Contains(t, w.Body.String(), `href="/content/wikipedia_en/"`)
				require.Contains(t, w.Body.String(), `href="https://example.org/out"`)
				require.NotEmpty(t, w.Header().Get("ETag"))
				require.Equal(t, "bytes", w.Header().Get("Accept-Ranges"))
				require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
			},
		},
		{
			name:   "Entry",
			method: http.MethodGet,
			target: "/content/wikipedia_en/A/Paris.html",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), "Paris is the capital of France.")
			},
		},
		{
			name:   "Head",
			method: http.MethodHead,
			target: "/content/wikipedia_en/I/logo.txt",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Equal(t, "26", w.Header().Get("Content-Length"))
				require.Empty(t, w.Body.String())
			},
		},
		{
			name:   "Not-Decorated",
			method: http.MethodGet,
			target: "/content/wikipedia_en/I/logo.txt",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Equal(t, logo, w.Body.String())
			},
		},
		{
			name:   "Range",
			method: http.MethodGet,
			target: "/content/wikipedia_en/I/logo.txt",
			header: http.Header{"Range": {"bytes=0-4"}},
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusPartialContent, w.Code)
				require.Equal(t, "bytes 0-4/26", w.Header().Get("Content-Range"))
				require.Equal(t, "plain", w.Body.String())
			},
		},
		{
			name:   "Range-Not-Satisfiable",
			method: http.MethodGet,
			target: "/content/wikipedia_en/I/logo.txt",
			header: http.Header{"Range": {"bytes=100-200"}},
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
				require.Equal(t, "bytes */26", w.Header().Get("Content-Range"))
			},
		},
		{
			name:   "No-Such-Book",
			method: http.MethodGet,
			target: "/content/nope/A/Paris.html",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, w.Code)
				require.Contains(t, w.Body.String(), "No such book: nope")
			},
		},
		{
			name:   "No-Such-Entry",
			method: http.MethodGet,
			target: "/content/wikipedia_en/A/Lyon.html",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, w.Code)
				require.NotContains(t, w.Body.String(), "data-folio-taskbar")
			},
		},
		{
			name:   "Book-Without-Entries",
			method: http.MethodGet,
			target: "/content/gutenberg_fr/",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, w.Code)
			},
		},
		{
			name:   "Book",
			method: http.MethodGet,
			target: "/content/wikipedia_en",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusFound, w.Code)
				require.Equal(t, "/content/wikipedia_en/", w.Header().Get("Location"))
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, tc.method, tc.target, tc.header)

			// Assert
			tc.assert(t, w)
		})
	}
}

func TestContentNotModified(t *testing.T) {
	// Arrange
	l := newLibrarian(t, testConfig())
	fresh := serve(l, http.MethodGet, "/content/wikipedia_en/A/Paris.html", nil)
	require.Equal(t, http.StatusOK, fresh.Code)

	// Act
	w := serve(l, http.MethodGet, "/content/wikipedia_en/A/Paris.html", http.Header{
		"If-None-Match": {fresh.Header().Get("ETag")},
	})

	// Assert
	require.Equal(t, http.StatusNotModified, w.Code)
	require.Empty(t, w.Body.String())

	// Act
	w = serve(l, http.MethodGet, "/content/wikipedia_en/A/Paris.html", http.Header{
		"If-None-Match": {`"someone-else/c"`},
	})

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}

func TestContentDecoration(t *testing.T) {
	t.Run("Block-External-Links", func(t *testing.T) {
		// Arrange
		cfg := testConfig()
		cfg.BlockExternalLinks = true
		l := newLibrarian(t, cfg)

		// Act
		w := serve(l, http.MethodGet, "/content/wikipedia_en/", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "/catch/external?source=https%3A%2F%2Fexample.org%2Fout")
		require.Contains(t, w.Body.String(), "data-folio-external")
	})

	t.Run("No-Taskbar", func(t *testing.T) {
		// Arrange
		cfg := testConfig()
		cfg.Taskbar = false
		l := newLibrarian(t, cfg)

		// Act
		w := serve(l, http.MethodGet, "/content/wikipedia_en/", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "data-folio-taskbar")
	})

	t.Run("Root-Path", func(t *testing.T) {
		// Arrange
		cfg := testConfig()
		cfg.RootPath = "/library"
		l := newLibrarian(t, cfg)

		// Act
		w := serve(l, http.MethodGet, "/library/content/wikipedia_en/", nil)
		outside := serve(l, http.MethodGet, "/content/wikipedia_en/", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `href="/library/content/wikipedia_en/"`)
		require.Equal(t, http.StatusNotFound, outside.Code)
	})
}

func TestSearch(t *testing.T) {
	l := newLibrarian(t, testConfig())

	tcs := []struct {
		name   string
		target string
		assert func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "All-Books",
			target: "/search?pattern=capital",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), `Results <b>1-1</b> of <b>1</b> for <b>"capital"</b>`)
				require.Contains(t, w.Body.String(), `href="/content/wikipedia_en/A/Paris.html"`)
				require.Contains(t, w.Body.String(), "<b>capital</b>")
				require.NotContains(t, w.Body.String(), "data-folio-taskbar")
			},
		},
		{
			name:   "One-Book",
			target: "/search?content=wikipedia_en&pattern=capital",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), "data-folio-taskbar")
			},
		},
		{
			name:   "No-Results",
			target: "/search?pattern=zeppelin",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), `No results were found for <b>"zeppelin"</b>`)
			},
		},
		{
			name:   "Negative-Start",
			target: "/search?pattern=capital&start=-1",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, w.Code)
				require.Contains(t, w.Body.String(), "gte=0; int")
			},
		},
		{
			name:   "Start-Not-A-Number",
			target: "/search?pattern=capital&start=ten",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, w.Code)
				require.Contains(t, w.Body.String(), "must be int")
			},
		},
		{
			name:   "Page-Length-Capped",
			target: "/search?pattern=capital&pageLength=1000",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), `Results <b>1-1</b> of <b>1</b>`)
			},
		},
		{
			name:   "No-Such-Book",
			target: "/search?content=nope&pattern=capital",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, w.Code)
				require.Contains(t, w.Body.String(), "No such book: nope")
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, http.MethodGet, tc.target, nil)

			// Assert
			tc.assert(t, w)
		})
	}
}

func TestListing(t *testing.T) {
	l := newLibrarian(t, testConfig())

	tcs := []struct {
		name   string
		target string
		header http.Header
		assert func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "Everything",
			target: "/nojs",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), `<h3 class="count">2 books</h3>`)
				require.Contains(t, w.Body.String(), `<h3 class="book__title">Gutenberg</h3>`)
				require.NotContains(t, w.Body.String(), "data-folio-taskbar")
			},
		},
		{
			name:   "By-Category",
			target: "/nojs?category=wikipedia",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), `<h3 class="book__title">Wikipedia</h3>`)
				require.NotContains(t, w.Body.String(), `<h3 class="book__title">Gutenberg</h3>`)
				require.Contains(t, w.Body.String(), `href="/nojs/download/wikipedia_en"`)
			},
		},
		{
			name:   "French",
			target: "/nojs?q=nothing-matches",
			header: http.Header{"Accept-Language": {"fr-FR,fr;q=0.9"}},
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, w.Body.String(), "Bienvenue dans la bibliothèque")
				require.Contains(t, w.Body.String(), "Aucun livre ne correspond")
			},
		},
		{
			name:   "Bad-Language",
			target: "/nojs?lang=not+a+language",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, w.Code)
				require.Contains(t, w.Body.String(), "langcode")
			},
		},
		{
			name:   "Home",
			target: "/",
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusFound, w.Code)
				require.Equal(t, "/nojs", w.Header().Get("Location"))
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, http.MethodGet, tc.target, tc.header)

			// Assert
			tc.assert(t, w)
		})
	}
}

func TestIllustration(t *testing.T) {
	l := newLibrarian(t, testConfig())

	t.Run("Listed-Icon", func(t *testing.T) {
		// Arrange
		listing := serve(l, http.MethodGet, "/nojs", nil)
		require.Equal(t, http.StatusOK, listing.Code)
		iconURL := "/catalog/v2/illustration/8f1a/?size=48"
		require.Contains(t, listing.Body.String(), "url("+iconURL+")")

		// Act
		w := serve(l, http.MethodGet, iconURL, nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "image/png", w.Header().Get("Content-Type"))
		require.Equal(t, favicon, w.Body.String())
		require.NotEmpty(t, w.Header().Get("ETag"))
	})

	t.Run("Not-Modified", func(t *testing.T) {
		// Arrange
		first := serve(l, http.MethodGet, "/catalog/v2/illustration/8f1a/", nil)
		require.Equal(t, http.StatusOK, first.Code)

		// Act
		w := serve(l, http.MethodGet, "/catalog/v2/illustration/8f1a/", http.Header{"If-None-Match": {first.Header().Get("ETag")}})

		// Assert
		require.Equal(t, http.StatusNotModified, w.Code)
		require.Empty(t, w.Body.String())
	})

	tcs := []struct {
		name   string
		target string
	}{
		{"No-Illustration", "/catalog/v2/illustration/c07e/"},
		{"No-Such-Book", "/catalog/v2/illustration/beef/"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, http.MethodGet, tc.target, nil)

			// Assert
			require.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	t.Run("Unillustrated-Row", func(t *testing.T) {
		// Act
		w := serve(l, http.MethodGet, "/nojs?category=gutenberg", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "/catalog/v2/illustration/")
	})
}

func TestRedirects(t *testing.T) {
	l := newLibrarian(t, testConfig())

	tcs := []struct {
		name     string
		target   string
		code     int
		location []string
	}{
		{name: "Download", target: "/nojs/download/wikipedia_en", code: http.StatusFound, location: []string{"https://download.example.org/wikipedia_en.zim"}},
		{name: "Download-Unavailable", target: "/nojs/download/gutenberg_fr", code: http.StatusNotFound},
		{name: "Download-No-Such-Book", target: "/nojs/download/nope", code: http.StatusNotFound},
		{name: "Random", target: "/random?content=wikipedia_en", code: http.StatusFound, location: []string{"/content/wikipedia_en/index.html", "/content/wikipedia_en/A/Paris.html"}},
		{name: "Random-No-Pages", target: "/random?content=gutenberg_fr", code: http.StatusNotFound},
		{name: "Random-No-Book", target: "/random", code: http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, http.MethodGet, tc.target, nil)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.location != nil {
				require.Contains(t, tc.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestExternal(t *testing.T) {
	cfg := testConfig()
	cfg.BlockExternalLinks = true
	l := newLibrarian(t, cfg)

	tcs := []struct {
		name   string
		target string
		code   int
	}{
		{name: "External", target: "/catch/external?source=https%3A%2F%2Fexample.org%2Fout", code: http.StatusOK},
		{name: "Scheme-Relative", target: "/catch/external?source=%2F%2Fexample.org%2Fout", code: http.StatusOK},
		{name: "Missing", target: "/catch/external", code: http.StatusNotFound},
		{name: "Relative", target: "/catch/external?source=A%2FParis.html", code: http.StatusNotFound},
		{name: "Javascript", target: "/catch/external?source=javascript%3Aalert(1)", code: http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(l, http.MethodGet, tc.target, nil)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				require.Contains(t, w.Body.String(), "You are leaving the library")
				require.Contains(t, w.Body.String(), "example.org/out")
				require.NotContains(t, w.Body.String(), "data-folio-external")
			}
		})
	}
}

func TestNotFoundAndMetrics(t *testing.T) {
	// Arrange
	l := newLibrarian(t, testConfig())

	// Act
	missing := serve(l, http.MethodGet, "/nowhere", nil)
	listing := serve(l, http.MethodGet, "/nojs", nil)
	scraped := serve(l, http.MethodGet, "/metrics", nil)

	// Assert
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Contains(t, missing.Body.String(), "/nowhere")
	require.Equal(t, http.StatusOK, listing.Code)
	require.Equal(t, http.StatusOK, scraped.Code)
	require.Contains(t, scraped.Body.String(), `folio_http_requests_total{method="GET",route="/nojs",status="200"} 1`)
	require.Contains(t, scraped.Body.String(), `folio_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func TestRateLimit(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	l := newLibrarian(t, cfg)

	// Act
	first := serve(l, http.MethodGet, "/nojs", nil)
	second := serve(l, http.MethodGet, "/nojs", nil)

	// Assert
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
}
