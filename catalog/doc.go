/*
Package catalog describes the books folio serves and how to reach their entries.

The interfaces Library, NameMapper, Archive and Searcher are the contracts
the rest of folio reads through; every method must be safe for concurrent use.
Memory implements all four over books listed in a YAML file,
each book being a directory of entries.
*/
package catalog
