// Package catalog embeds the built-in docset catalog shipped with docsearch.
package catalog

import _ "embed"

// Builtin is the built-in docset catalog: a JSON object keyed by docset key.
//
//go:embed docsets.json
var Builtin []byte
