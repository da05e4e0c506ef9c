/*
Package librarian configures and runs a folio server.

A [Librarian] wires a catalog of books to the response layer of package resp
and the renderers of package render, serving:

  - GET /content/{book}/{path}: an entry of a book, honoring If-None-Match and Range
  - GET /search?pattern=&content=&start=&pageLength=: full-text search results
  - GET /nojs?q=&lang=&category=: the catalog listing, for clients without javascript
  - GET /nojs/download/{book}: a redirect to where the book can be downloaded
  - GET /random?content=: a redirect to a random page of a book
  - GET /catch/external?source=: a confirmation page before leaving the library
  - GET /catalog/v2/illustration/{bookID}/: the icon a book is listed with
  - GET /metrics: prometheus metrics

Query parameters that cannot be read, such as a negative start, get 400 Bad Request.

# Configuration

A [Config] is read from environment variables by [LoadConfig],
after any ".env" file found in the working directory is loaded.

  - ENVIRONMENT: the environment the server is running in; default: DEVELOPMENT; cf. [folio.Environment]
  - HOST: the host the server listens on; default: localhost
  - PORT: the port the server listens on; default: 3000
  - ROOT_PATH: the path prefix the server is mounted under, e.g., /library
  - LIBRARY_FILE: the YAML file describing the books to serve; default: library.yaml
  - VERBOSE: whether error pages show the underlying error; default: false
  - TASKBAR: whether HTML entries get a taskbar; default: true
  - LIBRARY_BUTTON: whether the taskbar links back to the catalog listing; default: true
  - BLOCK_EXTERNAL_LINKS: whether links leaving the library go through a confirmation page; default: false
  - COMPRESS: whether compressible responses are gzipped for clients accepting it; default: true
  - SEARCH_PAGE_LENGTH: the default number of search results per page; default: 25
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - SENTRY_DSN: where to report errors and panics; reporting is off when unset
  - SERVER_READ_TIMEOUT: the timeout, as understood by [time.ParseDuration], for reading requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing responses; default: 30s
  - SERVER_IDLE_TIMEOUT: the timeout for idling between requests when using keep-alives; default: 120s
  - RATE_LIMIT: the number of requests every second a client may make; default: 5
  - RATE_BURST: the number of requests a client may burst to; default: 20
  - CORS_ORIGIN: the origin allowed to read responses cross-origin; CORS is off when unset
*/
package librarian
