// Package docsearch provides search over many documentation sets ("docsets"),
// each backed by a different search provider: a hosted full-text search API
// queried live, or a locally cached index rebuilt in the background from a
// static search index published by the documentation site.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., algolia/, mkdocs/, fs/, lru/).
package docsearch
