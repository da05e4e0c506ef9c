/*
The resp package builds and sends the HTTP responses folio serves.

A Responder holds the server-wide settings: the root path, verbosity,
and whether HTML gets a taskbar, external-link blocking or compression.
Its factories build an immutable *Response for one request:

  - Build: raw content seeded from the Responder's settings
  - Content and Template: verbatim bytes, or a rendered template
  - Entry: a resource from a book, honoring the Range header
  - Redirect: a 3xx with a Location header
  - Build304, Build400, Build404, Build416, Build500: conditional and error responses

Per-response settings are passed as Fn options at build time;
nothing about a *Response changes after it is built.
Send writes it to an http.ResponseWriter.

HTML is decorated while building, before any ETag is computed,
so a tag always validates the bytes served before compression.
*/
package resp
