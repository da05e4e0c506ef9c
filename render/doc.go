/*
Package render prepares the dynamic HTML pages folio serves:
search results with their pagination, and the catalog listing for browsers without JavaScript.

A SearchRenderer and a ListingRenderer each produce the data of one page
and render it through a template.Renderer.
*/
package render
