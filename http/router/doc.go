/*
Package router routes requests to the handlers of a folio server.

[*Router] is a thin wrapper around [mux.Router].
A [Route] pairs a path and an HTTP method with the [http.HandlerFunc] answering it.
Before a request gets to a handler,
any middlewares added to the Route are called in the order they appear,
after the middlewares every request goes through.

Every GET route also answers HEAD requests,
since responses to them are built the same way and only sent without a body.
*/
package router
