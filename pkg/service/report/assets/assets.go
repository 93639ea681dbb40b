// Package assets carries the style sheet and client script that get inlined
// into every generated report, so the artifact stays a single self-contained
// file.
package assets

import _ "embed"

// StyleCSS is inlined into the document head
//
//go:embed style.css
var StyleCSS string

// ScriptJS is the client script template. The renderer substitutes the
// __ARGUS_LANG__ and __ARGUS_SHOW_ALL__ identifiers with JSON string
// literals before inlining it.
//
//go:embed script.js
var ScriptJS string
